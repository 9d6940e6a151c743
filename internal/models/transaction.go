package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID    string          `db:"transaction_id"`
	CompanyID        string          `db:"company_id"`
	Amount           decimal.Decimal `db:"amount"`
	Date             time.Time       `db:"date"`
	Category         string          `db:"category"`
	Description      string          `db:"description"`
	Type             string          `db:"type"`
	PaymentMethod    string          `db:"payment_method"`
	Recurrence       string          `db:"recurrence"`
	ClientOrSupplier *string         `db:"client_or_supplier"` // Nullable
	Notes            *string         `db:"notes"`              // Nullable
	DebtPaymentForID *string         `db:"debt_payment_for_id"` // Nullable; FK -> debts, set null on delete
	AuditFields
}
