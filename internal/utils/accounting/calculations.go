package accounting

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the contribution of a transaction to the cash balance:
// +amount for revenue, -amount for anything else.
func SignedAmount(txn domain.Transaction) decimal.Decimal {
	if txn.Direction == domain.Revenue {
		return txn.Amount
	}
	return txn.Amount.Neg()
}

// CashBalance sums the signed amounts of all transactions. A negative result
// means the company is in deficit.
func CashBalance(transactions []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range transactions {
		balance = balance.Add(SignedAmount(txn))
	}
	return balance
}

// MonthPeriod returns the calendar month containing t, as observed in loc.
func MonthPeriod(t time.Time, loc *time.Location) domain.Period {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return domain.Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// PeriodTotals sums revenue and expense of the transactions dated within period.
func PeriodTotals(transactions []domain.Transaction, period domain.Period) domain.PeriodTotals {
	totals := domain.PeriodTotals{
		Period:  period,
		Revenue: decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, txn := range transactions {
		if !period.Contains(txn.Date) {
			continue
		}
		if txn.Direction == domain.Revenue {
			totals.Revenue = totals.Revenue.Add(txn.Amount)
		} else {
			totals.Expense = totals.Expense.Add(txn.Amount)
		}
	}
	totals.Profit = totals.Revenue.Sub(totals.Expense)
	return totals
}
