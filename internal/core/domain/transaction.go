package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection tells whether money came in or went out.
type TransactionDirection string

const (
	Revenue TransactionDirection = "revenue"
	Expense TransactionDirection = "expense"
)

// Transaction represents a single cash movement of the company.
type Transaction struct {
	TransactionID string               `json:"transactionID"`
	CompanyID     string               `json:"companyID"`
	Amount        decimal.Decimal      `json:"amount"` // Always positive; Direction carries the sign
	Date          time.Time            `json:"date"`
	Category      string               `json:"category"`
	Description   string               `json:"description"`
	Direction     TransactionDirection `json:"type"`
	PaymentMethod string               `json:"paymentMethod"`
	Recurrence    string               `json:"recurrence"` // Informational only
	Counterparty  string               `json:"clientOrSupplier,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	// DebtPaymentForID links an installment payment to the debt it pays down.
	DebtPaymentForID *string `json:"debtPaymentForID,omitempty"`
	AuditFields
}

// IsDebtPayment reports whether the transaction is linked to a debt.
func (t Transaction) IsDebtPayment() bool {
	return t.DebtPaymentForID != nil && *t.DebtPaymentForID != ""
}

// Validate checks the invariants a transaction must hold before it is stored.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount.String())
	}
	if t.Direction != Revenue && t.Direction != Expense {
		return fmt.Errorf("unknown transaction type '%s'", t.Direction)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	if t.Description == "" {
		return fmt.Errorf("transaction description is required")
	}
	return nil
}
