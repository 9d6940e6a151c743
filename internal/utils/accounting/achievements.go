package accounting

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

const (
	AchievementFirstRevenue    = "first_revenue"
	AchievementFirstExpense    = "first_expense"
	AchievementFirstPayable    = "first_payable"
	AchievementFirstReceivable = "first_receivable"
	AchievementProfitableMonth = "profitable_month"
)

// AchievementCatalog returns the fixed, ordered milestone catalog, all locked.
func AchievementCatalog() []domain.Achievement {
	return []domain.Achievement{
		{ID: AchievementFirstRevenue, Title: "First Sale", Description: "You recorded your first revenue entry!"},
		{ID: AchievementFirstExpense, Title: "First Cost", Description: "You recorded your first operating expense."},
		{ID: AchievementFirstPayable, Title: "Bills Under Control", Description: "Your first account payable was registered."},
		{ID: AchievementFirstReceivable, Title: "Money Incoming", Description: "Your first account receivable was registered."},
		{ID: AchievementProfitableMonth, Title: "Profitable Month", Description: "You closed a month with a profit!"},
	}
}

// EvaluateAchievements annotates the catalog with unlocked flags. now and loc
// decide which calendar months are already closed.
func EvaluateAchievements(transactions []domain.Transaction, accounts []domain.PayableReceivable, now time.Time, loc *time.Location) []domain.Achievement {
	unlocked := map[string]bool{
		AchievementFirstRevenue:    hasDirection(transactions, domain.Revenue),
		AchievementFirstExpense:    hasDirection(transactions, domain.Expense),
		AchievementFirstPayable:    hasAccount(accounts, domain.Payable),
		AchievementFirstReceivable: hasAccount(accounts, domain.Receivable),
		AchievementProfitableMonth: hasProfitableClosedMonth(transactions, now, loc),
	}

	catalog := AchievementCatalog()
	for i := range catalog {
		catalog[i].Unlocked = unlocked[catalog[i].ID]
	}
	return catalog
}

func hasDirection(transactions []domain.Transaction, dir domain.TransactionDirection) bool {
	for _, txn := range transactions {
		if txn.Direction == dir {
			return true
		}
	}
	return false
}

func hasAccount(accounts []domain.PayableReceivable, dir domain.AccountDirection) bool {
	for _, a := range accounts {
		if a.Direction == dir {
			return true
		}
	}
	return false
}

// hasProfitableClosedMonth reports whether any month strictly before the
// month of now had revenue greater than expense.
func hasProfitableClosedMonth(transactions []domain.Transaction, now time.Time, loc *time.Location) bool {
	current := MonthPeriod(now, loc)
	months := make(map[time.Time][]domain.Transaction)
	for _, txn := range transactions {
		if !txn.Date.Before(current.Start) {
			continue
		}
		start := MonthPeriod(txn.Date, loc).Start
		months[start] = append(months[start], txn)
	}
	for start, txns := range months {
		totals := PeriodTotals(txns, MonthPeriod(start, loc))
		if totals.Revenue.GreaterThan(totals.Expense) {
			return true
		}
	}
	return false
}
