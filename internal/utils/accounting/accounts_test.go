package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func account(id string, dir domain.AccountDirection, status domain.AccountStatus, amount string, due time.Time) domain.PayableReceivable {
	return domain.PayableReceivable{AccountID: id, Direction: dir, Status: status, Amount: dec(amount), DueDate: due}
}

func TestPendingAccountTotals(t *testing.T) {
	accounts := []domain.PayableReceivable{
		account("a", domain.Payable, domain.Pending, "100", day(2024, time.May, 1)),
		account("b", domain.Payable, domain.Paid, "900", day(2024, time.May, 1)),
		account("c", domain.Receivable, domain.Pending, "250.50", day(2024, time.May, 1)),
		account("d", domain.Payable, domain.Pending, "50", day(2024, time.May, 1)),
	}

	totals := accounting.PendingAccountTotals(accounts)

	assertDecimal(t, "150", totals.PendingPayable)
	assertDecimal(t, "250.50", totals.PendingReceivable)
}

func TestUpcomingAccounts(t *testing.T) {
	now := time.Date(2024, time.May, 10, 18, 0, 0, 0, brt)
	startOfToday := time.Date(2024, time.May, 10, 0, 0, 0, 0, brt)
	accounts := []domain.PayableReceivable{
		account("late", domain.Payable, domain.Pending, "1", day(2024, time.May, 9)),
		account("paid", domain.Payable, domain.Paid, "1", day(2024, time.May, 11)),
		account("third", domain.Receivable, domain.Pending, "1", day(2024, time.May, 20)),
		account("today", domain.Payable, domain.Pending, "1", startOfToday),
		account("second", domain.Payable, domain.Pending, "1", day(2024, time.May, 12)),
		account("fourth", domain.Payable, domain.Pending, "1", day(2024, time.June, 1)),
	}

	upcoming := accounting.UpcomingAccounts(accounts, now, brt, 3)

	require.Len(t, upcoming, 3)
	assert.Equal(t, "today", upcoming[0].AccountID)
	assert.Equal(t, "second", upcoming[1].AccountID)
	assert.Equal(t, "third", upcoming[2].AccountID)

	assert.Len(t, accounting.UpcomingAccounts(accounts, now, brt, 0), 4)
}
