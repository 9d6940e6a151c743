package pgsql

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.String())

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	w.add("company_id = $%d", "company-1")
	w.add("type = $%d", "revenue")
	w.add("date >= $%d", from)

	assert.Equal(t, " WHERE company_id = $1 AND type = $2 AND date >= $3", w.String())
	assert.Equal(t, []any{"company-1", "revenue", from}, w.args)
}

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{name: "unique violation", code: "23505", want: apperrors.ErrDuplicate},
		{name: "foreign key violation", code: "23503", want: apperrors.ErrValidation},
		{name: "check violation", code: "23514", want: apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapWriteError(&pgconn.PgError{Code: tt.code}, "transaction", "txn-1")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	cause := errors.New("connection refused")
	err := mapWriteError(cause, "debt", "debt-1")
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
}

func TestMapReadError(t *testing.T) {
	assert.ErrorIs(t, mapReadError(pgx.ErrNoRows, "debt", "debt-1"), apperrors.ErrNotFound)

	cause := errors.New("timeout")
	err := mapReadError(cause, "debt", "debt-1")
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestExpectOneRow(t *testing.T) {
	assert.ErrorIs(t, expectOneRow(pgconn.NewCommandTag("UPDATE 0"), "account", "a"), apperrors.ErrNotFound)
	assert.NoError(t, expectOneRow(pgconn.NewCommandTag("DELETE 1"), "account", "a"))
}

func TestTransactionModelRoundTrip(t *testing.T) {
	debtID := "debt-1"
	d := domain.Transaction{
		TransactionID:    "txn-1",
		CompanyID:        "company-1",
		Amount:           decimal.RequireFromString("150.25"),
		Date:             time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Category:         domain.LoanPaymentCategory,
		Description:      "Installment",
		Direction:        domain.Expense,
		PaymentMethod:    domain.PaymentBankTransfer,
		Recurrence:       domain.RecurrenceNone,
		DebtPaymentForID: &debtID,
	}

	m := toModelTransaction(d)
	assert.Nil(t, m.ClientOrSupplier)
	assert.Nil(t, m.Notes)
	assert.Equal(t, "expense", m.Type)

	assert.Equal(t, d, toDomainTransaction(m))
}

func TestDebtModelKeepsEmptyLenderAsNull(t *testing.T) {
	m := toModelDebt(domain.Debt{DebtID: "d", Name: "Van", TotalAmount: decimal.NewFromInt(10)})
	assert.Nil(t, m.Lender)

	m.Lender = nullableString("Big Bank")
	assert.Equal(t, "Big Bank", toDomainDebt(m).Lender)
}
