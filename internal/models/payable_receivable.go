package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayableReceivable is a row of the accounts_payable_receivable table.
type PayableReceivable struct {
	AccountID        string          `db:"account_id"`
	CompanyID        string          `db:"company_id"`
	Description      string          `db:"description"`
	Amount           decimal.Decimal `db:"amount"`
	DueDate          time.Time       `db:"due_date"`
	Type             string          `db:"type"`
	Status           string          `db:"status"`
	ClientOrSupplier *string         `db:"client_or_supplier"`
	TransactionID    *string         `db:"transaction_id"`
	AuditFields
}
