package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a held asset lot. CurrentPrice is an input, never fetched.
type Investment struct {
	InvestmentID  string          `json:"investmentID"`
	CompanyID     string          `json:"companyID"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	AuditFields
}

// Validate checks the invariants an investment must hold before it is stored.
func (i Investment) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("investment name is required")
	}
	if i.Quantity.IsNegative() {
		return fmt.Errorf("investment quantity cannot be negative, got %s", i.Quantity.String())
	}
	if i.PurchasePrice.IsNegative() || i.CurrentPrice.IsNegative() {
		return fmt.Errorf("investment prices cannot be negative")
	}
	return nil
}

// ValuedInvestment is an Investment annotated with its derived fields.
type ValuedInvestment struct {
	Investment
	PurchaseValue decimal.Decimal `json:"purchaseValue"`
	CurrentValue  decimal.Decimal `json:"currentValue"`
	Performance   decimal.Decimal `json:"performance"` // Percent
}

// PortfolioSummary aggregates the valuation of every holding.
type PortfolioSummary struct {
	TotalInvested     decimal.Decimal `json:"totalInvested"`
	TotalCurrentValue decimal.Decimal `json:"totalCurrentValue"`
	Performance       decimal.Decimal `json:"performance"` // Percent
}
