package accounting

import (
	"slices"
	"strings"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RollupCounterparties groups transactions by exact counterparty name.
// Transactions without a counterparty are skipped. Results are ordered by
// volume descending; ties keep the order in which names first appeared.
func RollupCounterparties(transactions []domain.Transaction) []domain.CounterpartySummary {
	index := make(map[string]int)
	rollup := make([]domain.CounterpartySummary, 0)

	for _, txn := range transactions {
		name := txn.Counterparty
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(rollup)
			index[name] = i
			rollup = append(rollup, domain.CounterpartySummary{
				Name:         name,
				TotalRevenue: decimal.Zero,
				TotalExpense: decimal.Zero,
			})
		}
		entry := &rollup[i]
		entry.TransactionCount++
		if txn.Direction == domain.Revenue {
			entry.TotalRevenue = entry.TotalRevenue.Add(txn.Amount)
		} else {
			entry.TotalExpense = entry.TotalExpense.Add(txn.Amount)
		}
	}

	slices.SortStableFunc(rollup, func(a, b domain.CounterpartySummary) int {
		return b.Volume().Cmp(a.Volume())
	})
	return rollup
}

// FilterCounterparties keeps the entries whose name contains search, ignoring
// case. An empty search returns the input unchanged.
func FilterCounterparties(rollup []domain.CounterpartySummary, search string) []domain.CounterpartySummary {
	search = strings.TrimSpace(search)
	if search == "" {
		return rollup
	}
	needle := strings.ToLower(search)
	filtered := make([]domain.CounterpartySummary, 0, len(rollup))
	for _, c := range rollup {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
