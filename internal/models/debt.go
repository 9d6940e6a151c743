package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is a row of the debts table.
type Debt struct {
	DebtID       string          `db:"debt_id"`
	CompanyID    string          `db:"company_id"`
	Name         string          `db:"name"`
	Type         string          `db:"type"`
	Lender       *string         `db:"lender"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	InterestRate decimal.Decimal `db:"interest_rate"`
	StartDate    time.Time       `db:"start_date"`
	AuditFields
}
