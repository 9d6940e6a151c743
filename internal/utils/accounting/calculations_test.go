package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestCashBalance(t *testing.T) {
	tests := []struct {
		name string
		txs  []domain.Transaction
		want string
	}{
		{name: "empty ledger", txs: nil, want: "0"},
		{
			name: "revenue minus expenses",
			txs: []domain.Transaction{
				revenue("7500", day(2024, time.January, 5), "Acme"),
				expense("1200", day(2024, time.January, 6), "Landlord"),
				expense("350", day(2024, time.January, 7), "Power Co"),
			},
			want: "5950",
		},
		{
			name: "deficit is allowed",
			txs: []domain.Transaction{
				revenue("100.10", day(2024, time.January, 5), ""),
				expense("200.20", day(2024, time.January, 6), ""),
			},
			want: "-100.10",
		},
		{
			name: "debt payments reduce cash like any expense",
			txs: []domain.Transaction{
				revenue("5000", day(2024, time.January, 5), ""),
				debtPayment("1500", "debt-1"),
			},
			want: "3500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, accounting.CashBalance(tt.txs))
		})
	}
}

func TestSignedAmount_UnknownDirectionCountsAsExpense(t *testing.T) {
	txn := domain.Transaction{Amount: dec("42"), Direction: "refund"}
	assertDecimal(t, "-42", accounting.SignedAmount(txn))
}

func TestCashBalance_OrderIndependent(t *testing.T) {
	txs := []domain.Transaction{
		revenue("10.01", day(2024, time.January, 1), ""),
		expense("3.33", day(2024, time.January, 2), ""),
		revenue("0.07", day(2024, time.January, 3), ""),
		expense("99.99", day(2024, time.January, 4), ""),
	}
	reversed := []domain.Transaction{txs[3], txs[2], txs[1], txs[0]}

	assert.True(t, accounting.CashBalance(txs).Equal(accounting.CashBalance(reversed)))
}

func TestCashBalance_AdditiveOverSplits(t *testing.T) {
	txs := []domain.Transaction{
		revenue("7500", day(2024, time.January, 5), "Acme"),
		expense("1200.50", day(2024, time.January, 6), "Landlord"),
		revenue("0.03", day(2024, time.January, 7), ""),
		expense("9000", day(2024, time.January, 8), "Supplier"),
		debtPayment("250.25", "debt-1"),
		revenue("42.42", day(2024, time.January, 9), "Acme"),
	}
	whole := accounting.CashBalance(txs)

	tests := []struct {
		name  string
		split func(i int) bool
	}{
		{name: "empty first half", split: func(int) bool { return false }},
		{name: "empty second half", split: func(int) bool { return true }},
		{name: "alternating", split: func(i int) bool { return i%2 == 0 }},
		{name: "deficit half", split: func(i int) bool { return i == 1 || i == 3 || i == 4 }},
		{name: "prefix", split: func(i int) bool { return i < 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var first, second []domain.Transaction
			for i, txn := range txs {
				if tt.split(i) {
					first = append(first, txn)
				} else {
					second = append(second, txn)
				}
			}

			sum := accounting.CashBalance(first).Add(accounting.CashBalance(second))

			assert.Truef(t, whole.Equal(sum), "whole %s != halves %s", whole.String(), sum.String())
		})
	}

	deficit := []domain.Transaction{txs[1], txs[3], txs[4]}
	assert.True(t, accounting.CashBalance(deficit).IsNegative())
}

func TestMonthPeriod(t *testing.T) {
	// 02:00 UTC on March 1st is still February 28th in BRT.
	instant := time.Date(2024, time.March, 1, 2, 0, 0, 0, time.UTC)

	period := accounting.MonthPeriod(instant, brt)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, brt), period.Start)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, brt), period.End)
	assert.True(t, period.Contains(instant))
}

func TestMonthPeriod_NilLocationUsesLocal(t *testing.T) {
	now := time.Now()
	period := accounting.MonthPeriod(now, nil)
	assert.True(t, period.Contains(now))
}

func TestPeriodTotals(t *testing.T) {
	period := accounting.MonthPeriod(day(2024, time.March, 15), brt)
	txs := []domain.Transaction{
		revenue("1000", period.Start, "Acme"),                    // first instant is included
		expense("400", day(2024, time.March, 20), "Supplier"),     // inside
		revenue("250", period.End, "Acme"),                        // next month
		expense("75", day(2024, time.February, 29), "Supplier"),   // previous month
		expense("25", period.End.Add(-time.Nanosecond), "Office"), // last instant
	}

	totals := accounting.PeriodTotals(txs, period)

	assertDecimal(t, "1000", totals.Revenue)
	assertDecimal(t, "425", totals.Expense)
	assertDecimal(t, "575", totals.Profit)
	assert.Equal(t, period, totals.Period)
}

func TestPeriodTotals_EmptyPeriodIsZero(t *testing.T) {
	totals := accounting.PeriodTotals(nil, accounting.MonthPeriod(day(2024, time.March, 1), brt))

	assert.True(t, totals.Revenue.IsZero())
	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Profit.IsZero())
}
