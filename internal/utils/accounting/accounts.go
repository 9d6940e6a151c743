package accounting

import (
	"slices"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PendingAccountTotals sums the pending payables and receivables.
func PendingAccountTotals(accounts []domain.PayableReceivable) domain.AccountTotals {
	totals := domain.AccountTotals{PendingPayable: decimal.Zero, PendingReceivable: decimal.Zero}
	for _, a := range accounts {
		if a.Status != domain.Pending {
			continue
		}
		if a.Direction == domain.Payable {
			totals.PendingPayable = totals.PendingPayable.Add(a.Amount)
		} else {
			totals.PendingReceivable = totals.PendingReceivable.Add(a.Amount)
		}
	}
	return totals
}

// UpcomingAccounts returns pending accounts due from the start of today
// onwards, earliest first, at most limit of them (limit <= 0 means no limit).
func UpcomingAccounts(accounts []domain.PayableReceivable, now time.Time, loc *time.Location, limit int) []domain.PayableReceivable {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	upcoming := make([]domain.PayableReceivable, 0)
	for _, a := range accounts {
		if a.Status == domain.Pending && !a.DueDate.Before(today) {
			upcoming = append(upcoming, a)
		}
	}
	slices.SortStableFunc(upcoming, func(a, b domain.PayableReceivable) int {
		return a.DueDate.Compare(b.DueDate)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
