package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Debt is a liability amortized by linked payment transactions.
type Debt struct {
	DebtID       string          `json:"debtID"`
	CompanyID    string          `json:"companyID"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Lender       string          `json:"lender,omitempty"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	InterestRate decimal.Decimal `json:"interestRate"` // Annual percentage, informational
	StartDate    time.Time       `json:"startDate"`
	AuditFields
}

// Validate checks the invariants a debt must hold before it is stored.
func (d Debt) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("debt name is required")
	}
	if !d.TotalAmount.IsPositive() {
		return fmt.Errorf("debt total amount must be positive, got %s", d.TotalAmount.String())
	}
	if d.InterestRate.IsNegative() {
		return fmt.Errorf("debt interest rate cannot be negative")
	}
	return nil
}

// AmortizedDebt is a Debt annotated with what has been paid so far.
// RemainingAmount is not clamped and goes negative when overpaid; Progress is
// capped at 100.
type AmortizedDebt struct {
	Debt
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Progress        decimal.Decimal `json:"progress"` // Percent
	Overpaid        bool            `json:"overpaid"`
}
