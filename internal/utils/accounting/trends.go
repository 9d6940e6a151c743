package accounting

import (
	"slices"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel groups expenses recorded without a category.
const UncategorizedLabel = "Uncategorized"

// DefaultTrendMonths is how many calendar months the cash-flow trend covers.
const DefaultTrendMonths = 6

// ExpensesByCategory sums expense transactions per category, largest first.
// Ties keep the order in which categories first appeared.
func ExpensesByCategory(transactions []domain.Transaction) []domain.CategoryTotal {
	index := make(map[string]int)
	totals := make([]domain.CategoryTotal, 0)

	for _, txn := range transactions {
		if txn.Direction != domain.Expense {
			continue
		}
		category := txn.Category
		if category == "" {
			category = UncategorizedLabel
		}
		i, ok := index[category]
		if !ok {
			i = len(totals)
			index[category] = i
			totals = append(totals, domain.CategoryTotal{Category: category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(txn.Amount)
	}

	slices.SortStableFunc(totals, func(a, b domain.CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})
	return totals
}

// MonthlyCashFlow returns revenue, expense and net (Profit) for the last
// months calendar months in loc, ending with the month containing now.
// Months without transactions are present with zero totals.
func MonthlyCashFlow(transactions []domain.Transaction, now time.Time, loc *time.Location, months int) []domain.PeriodTotals {
	if months <= 0 {
		return []domain.PeriodTotals{}
	}
	current := MonthPeriod(now, loc)
	trend := make([]domain.PeriodTotals, months)
	for i := range trend {
		start := current.Start.AddDate(0, i-months+1, 0)
		period := domain.Period{Start: start, End: start.AddDate(0, 1, 0)}
		trend[i] = PeriodTotals(transactions, period)
	}
	return trend
}
