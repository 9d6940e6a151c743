package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a row of the investments table.
type Investment struct {
	InvestmentID  string          `db:"investment_id"`
	CompanyID     string          `db:"company_id"`
	Name          string          `db:"name"`
	Type          string          `db:"type"`
	Quantity      decimal.Decimal `db:"quantity"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	CurrentPrice  decimal.Decimal `db:"current_price"`
	PurchaseDate  time.Time       `db:"purchase_date"`
	AuditFields
}
