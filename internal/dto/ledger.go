package dto

import (
	"github.com/SscSPs/bizledger/internal/core/domain"
)

// OverviewParams optionally overrides the reporting period of the overview.
// Without it the current calendar month is used.
type OverviewParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// CounterpartyParams defines query parameters for the client/supplier rollup.
type CounterpartyParams struct {
	Query string `form:"q" binding:"max=255"`
}

// OverviewResponse is the full derived state of a company. Money amounts are
// rounded to the minor unit of CurrencyCode.
type OverviewResponse struct {
	CurrencyCode       string                       `json:"currencyCode"`
	Summary            domain.FinancialSummary      `json:"financialSummary"`
	Period             domain.PeriodTotals          `json:"period"`
	CashFlowTrend      []domain.PeriodTotals        `json:"cashFlowTrend"`
	ExpensesByCategory []domain.CategoryTotal       `json:"expensesByCategory"`
	Portfolio          domain.PortfolioSummary      `json:"portfolio"`
	Investments        []InvestmentResponse         `json:"investments"`
	Debts              []DebtResponse               `json:"debts"`
	Clients            []domain.CounterpartySummary `json:"clients"`
	Achievements       []domain.Achievement         `json:"achievements"`
	AccountTotals      domain.AccountTotals         `json:"accountTotals"`
	UpcomingAccounts   []AccountResponse            `json:"upcomingAccounts"`
}

// ToOverviewResponse converts a domain.DerivedState to OverviewResponse DTO
func ToOverviewResponse(state *domain.DerivedState, currencyCode string) OverviewResponse {
	debts := make([]DebtResponse, len(state.Debts))
	for i := range state.Debts {
		debts[i] = ToDebtResponse(&state.Debts[i])
	}
	return OverviewResponse{
		CurrencyCode:       currencyCode,
		Summary:            state.Summary,
		Period:             state.Period,
		CashFlowTrend:      state.CashFlowTrend,
		ExpensesByCategory: state.ExpensesByCategory,
		Portfolio:          state.Portfolio,
		Investments:        ToInvestmentResponses(state.Investments),
		Debts:              debts,
		Clients:            state.Counterparties,
		Achievements:       state.Achievements,
		AccountTotals:      state.AccountTotals,
		UpcomingAccounts:   ToAccountResponses(state.UpcomingAccounts),
	}
}

// ListCounterpartiesResponse wraps the client/supplier rollup.
type ListCounterpartiesResponse struct {
	Clients []domain.CounterpartySummary `json:"clients"`
}

// ListAchievementsResponse wraps the evaluated achievement catalog.
type ListAchievementsResponse struct {
	Achievements []domain.Achievement `json:"achievements"`
	Unlocked     int                  `json:"unlocked"`
}

// CatalogResponse lists the recommended labels accepted by the API.
type CatalogResponse struct {
	ExpenseCategories []string `json:"expenseCategories"`
	IncomeCategories  []string `json:"incomeCategories"`
	PaymentMethods    []string `json:"paymentMethods"`
	Recurrences       []string `json:"recurrences"`
	InvestmentTypes   []string `json:"investmentTypes"`
	DebtTypes         []string `json:"debtTypes"`
	Currencies        []string `json:"currencies"`
}
