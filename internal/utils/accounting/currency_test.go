package accounting_test

import (
	"testing"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyFraction(t *testing.T) {
	assert.Equal(t, int32(2), accounting.CurrencyFraction("BRL"))
	assert.Equal(t, int32(2), accounting.CurrencyFraction("usd"))
	assert.Equal(t, int32(0), accounting.CurrencyFraction("JPY"))
	assert.Equal(t, int32(2), accounting.CurrencyFraction("NOT-A-CODE"))
}

func TestRoundToCurrency(t *testing.T) {
	assertDecimal(t, "10.46", accounting.RoundToCurrency(dec("10.456"), "BRL"))
	assertDecimal(t, "10", accounting.RoundToCurrency(dec("10.456"), "JPY"))
}

func TestRoundFinancialSummary(t *testing.T) {
	s := domain.FinancialSummary{
		CashBalance:             dec("1.005"),
		TotalInvested:           dec("2.3333"),
		InvestmentsCurrentValue: dec("3.1"),
		TotalAssets:             dec("4.105"),
		TotalDebtAmount:         dec("5"),
		RemainingDebt:           dec("0.004"),
		NetWorth:                dec("4.101"),
	}

	r := accounting.RoundFinancialSummary(s, "EUR")

	assertDecimal(t, "1.01", r.CashBalance)
	assertDecimal(t, "2.33", r.TotalInvested)
	assertDecimal(t, "3.1", r.InvestmentsCurrentValue)
	assertDecimal(t, "0", r.RemainingDebt)
	assertDecimal(t, "4.1", r.NetWorth)
	assertDecimal(t, "1.005", s.CashBalance)
}

func TestRoundDerivedState(t *testing.T) {
	state := domain.DerivedState{
		Summary:            domain.FinancialSummary{CashBalance: dec("10.005")},
		Period:             domain.PeriodTotals{Revenue: dec("1.114"), Expense: dec("0.001"), Profit: dec("1.113")},
		CashFlowTrend:      []domain.PeriodTotals{{Revenue: dec("2.226"), Expense: dec("0"), Profit: dec("2.226")}},
		ExpensesByCategory: []domain.CategoryTotal{{Category: "Rent", Total: dec("99.999")}},
		Portfolio:          domain.PortfolioSummary{TotalInvested: dec("33.333"), TotalCurrentValue: dec("44.444"), Performance: dec("33.3343334")},
		Investments: []domain.ValuedInvestment{{
			PurchaseValue: dec("33.333"), CurrentValue: dec("44.444"), Performance: dec("33.3343334"),
		}},
		Debts: []domain.AmortizedDebt{{
			PaidAmount: dec("0.333"), RemainingAmount: dec("-0.004"), Progress: dec("100"), Overpaid: true,
		}},
		Counterparties: []domain.CounterpartySummary{{Name: "Acme", TotalRevenue: dec("5.555"), TotalExpense: dec("0.001"), TransactionCount: 2}},
		AccountTotals:  domain.AccountTotals{PendingPayable: dec("7.777"), PendingReceivable: dec("0")},
	}

	r := accounting.RoundDerivedState(state, "USD")

	assertDecimal(t, "10.01", r.Summary.CashBalance)
	assertDecimal(t, "1.11", r.Period.Revenue)
	assertDecimal(t, "0", r.Period.Expense)
	assertDecimal(t, "2.23", r.CashFlowTrend[0].Revenue)
	assertDecimal(t, "100", r.ExpensesByCategory[0].Total)
	assertDecimal(t, "33.33", r.Portfolio.TotalInvested)
	assertDecimal(t, "44.44", r.Portfolio.TotalCurrentValue)
	assertDecimal(t, "33.3343334", r.Portfolio.Performance)
	assertDecimal(t, "44.44", r.Investments[0].CurrentValue)
	assertDecimal(t, "33.3343334", r.Investments[0].Performance)
	assertDecimal(t, "0.33", r.Debts[0].PaidAmount)
	assertDecimal(t, "0", r.Debts[0].RemainingAmount)
	assert.True(t, r.Debts[0].Overpaid)
	assertDecimal(t, "5.56", r.Counterparties[0].TotalRevenue)
	assert.Equal(t, 2, r.Counterparties[0].TransactionCount)
	assertDecimal(t, "7.78", r.AccountTotals.PendingPayable)

	// The input is not modified.
	assertDecimal(t, "44.444", state.Investments[0].CurrentValue)
	assertDecimal(t, "0.333", state.Debts[0].PaidAmount)
}
