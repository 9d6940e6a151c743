package accounting

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

const defaultFraction = 2

// CurrencyFraction returns the number of minor-unit digits for a currency code.
// Unknown codes fall back to two digits.
func CurrencyFraction(code string) int32 {
	c := money.GetCurrency(strings.ToUpper(code))
	if c == nil {
		return defaultFraction
	}
	return int32(c.Fraction)
}

// RoundToCurrency rounds amount to the minor unit of the currency. Used for
// presentation only; sums are always computed on unrounded values.
func RoundToCurrency(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Round(CurrencyFraction(code))
}

// RoundFinancialSummary returns a copy of s with every field rounded to the currency.
func RoundFinancialSummary(s domain.FinancialSummary, code string) domain.FinancialSummary {
	places := CurrencyFraction(code)
	return domain.FinancialSummary{
		CashBalance:             s.CashBalance.Round(places),
		TotalInvested:           s.TotalInvested.Round(places),
		InvestmentsCurrentValue: s.InvestmentsCurrentValue.Round(places),
		TotalAssets:             s.TotalAssets.Round(places),
		TotalDebtAmount:         s.TotalDebtAmount.Round(places),
		RemainingDebt:           s.RemainingDebt.Round(places),
		NetWorth:                s.NetWorth.Round(places),
	}
}

// RoundPeriodTotals returns a copy of p with its amounts rounded to the currency.
func RoundPeriodTotals(p domain.PeriodTotals, code string) domain.PeriodTotals {
	places := CurrencyFraction(code)
	p.Revenue = p.Revenue.Round(places)
	p.Expense = p.Expense.Round(places)
	p.Profit = p.Profit.Round(places)
	return p
}

// RoundDerivedState returns a copy of state with every money amount rounded to
// the minor unit of the currency. Percentages and flags are left untouched,
// since they were computed from the exact values.
func RoundDerivedState(state domain.DerivedState, code string) domain.DerivedState {
	places := CurrencyFraction(code)
	round := func(d decimal.Decimal) decimal.Decimal { return d.Round(places) }

	out := state
	out.Summary = RoundFinancialSummary(state.Summary, code)
	out.Period = RoundPeriodTotals(state.Period, code)

	out.CashFlowTrend = make([]domain.PeriodTotals, len(state.CashFlowTrend))
	for i, p := range state.CashFlowTrend {
		out.CashFlowTrend[i] = RoundPeriodTotals(p, code)
	}

	out.ExpensesByCategory = make([]domain.CategoryTotal, len(state.ExpensesByCategory))
	for i, c := range state.ExpensesByCategory {
		out.ExpensesByCategory[i] = domain.CategoryTotal{Category: c.Category, Total: round(c.Total)}
	}

	out.Portfolio.TotalInvested = round(state.Portfolio.TotalInvested)
	out.Portfolio.TotalCurrentValue = round(state.Portfolio.TotalCurrentValue)

	out.Investments = make([]domain.ValuedInvestment, len(state.Investments))
	for i, v := range state.Investments {
		v.PurchaseValue = round(v.PurchaseValue)
		v.CurrentValue = round(v.CurrentValue)
		out.Investments[i] = v
	}

	out.Debts = make([]domain.AmortizedDebt, len(state.Debts))
	for i, d := range state.Debts {
		d.PaidAmount = round(d.PaidAmount)
		d.RemainingAmount = round(d.RemainingAmount)
		out.Debts[i] = d
	}

	out.Counterparties = make([]domain.CounterpartySummary, len(state.Counterparties))
	for i, c := range state.Counterparties {
		c.TotalRevenue = round(c.TotalRevenue)
		c.TotalExpense = round(c.TotalExpense)
		out.Counterparties[i] = c
	}

	out.AccountTotals = domain.AccountTotals{
		PendingPayable:    round(state.AccountTotals.PendingPayable),
		PendingReceivable: round(state.AccountTotals.PendingReceivable),
	}
	return out
}
