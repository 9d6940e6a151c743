package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a half-open time range [Start, End).
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// PeriodTotals holds revenue and expense restricted to a period.
type PeriodTotals struct {
	Period  Period          `json:"period"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// FinancialSummary is the net worth composition of a company.
type FinancialSummary struct {
	CashBalance             decimal.Decimal `json:"cashBalance"`
	TotalInvested           decimal.Decimal `json:"totalInvested"`
	InvestmentsCurrentValue decimal.Decimal `json:"investmentsCurrentValue"`
	TotalAssets             decimal.Decimal `json:"totalAssets"`
	TotalDebtAmount         decimal.Decimal `json:"totalDebtAmount"`
	RemainingDebt           decimal.Decimal `json:"remainingDebt"`
	NetWorth                decimal.Decimal `json:"netWorth"`
}

// CounterpartySummary is the per-client/supplier rollup. Never persisted.
type CounterpartySummary struct {
	Name             string          `json:"name"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	TransactionCount int             `json:"transactionCount"`
}

// Volume is the total money moved with the counterparty in both directions.
func (c CounterpartySummary) Volume() decimal.Decimal {
	return c.TotalRevenue.Add(c.TotalExpense)
}

// CategoryTotal is the summed expense of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Achievement is a milestone with its unlocked state for the current data.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// Snapshot is an immutable copy of the four raw collections of one company,
// together with the currency configured when it was read. CurrencyCode is
// empty when the company has no profile.
type Snapshot struct {
	CurrencyCode string
	Transactions []Transaction
	Accounts     []PayableReceivable
	Investments  []Investment
	Debts        []Debt
}

// DerivedState holds every aggregate recomputed from one Snapshot.
type DerivedState struct {
	Summary            FinancialSummary      `json:"financialSummary"`
	Period             PeriodTotals          `json:"period"`
	CashFlowTrend      []PeriodTotals        `json:"cashFlowTrend"` // Oldest month first
	ExpensesByCategory []CategoryTotal       `json:"expensesByCategory"`
	Portfolio          PortfolioSummary      `json:"portfolio"`
	Investments        []ValuedInvestment    `json:"investments"`
	Debts              []AmortizedDebt       `json:"debts"`
	Counterparties     []CounterpartySummary `json:"clients"`
	Achievements       []Achievement         `json:"achievements"`
	AccountTotals      AccountTotals         `json:"accountTotals"`
	UpcomingAccounts   []PayableReceivable   `json:"upcomingAccounts"`
}
