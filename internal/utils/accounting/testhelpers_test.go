package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var brt = time.FixedZone("BRT", -3*60*60)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "expected %s, got %s %v", want, got.String(), msgAndArgs)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, brt)
}

func revenue(amount string, date time.Time, counterparty string) domain.Transaction {
	return domain.Transaction{
		Amount:       dec(amount),
		Date:         date,
		Direction:    domain.Revenue,
		Description:  "sale",
		Counterparty: counterparty,
	}
}

func expense(amount string, date time.Time, counterparty string) domain.Transaction {
	return domain.Transaction{
		Amount:       dec(amount),
		Date:         date,
		Direction:    domain.Expense,
		Description:  "cost",
		Counterparty: counterparty,
	}
}

func debtPayment(amount string, debtID string) domain.Transaction {
	txn := expense(amount, day(2024, time.February, 10), "Bank")
	txn.DebtPaymentForID = &debtID
	return txn
}
