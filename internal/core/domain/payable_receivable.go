package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountDirection tells whether an obligation is owed by or to the company.
type AccountDirection string

const (
	Payable    AccountDirection = "payable"
	Receivable AccountDirection = "receivable"
)

// AccountStatus is the settlement state of a payable/receivable.
type AccountStatus string

const (
	Pending AccountStatus = "pending"
	Paid    AccountStatus = "paid"
)

// Toggled returns the opposite status. Paid reverts to pending.
func (s AccountStatus) Toggled() AccountStatus {
	if s == Paid {
		return Pending
	}
	return Paid
}

// PayableReceivable is an obligation not yet settled in cash. Changing its
// status never posts a transaction.
type PayableReceivable struct {
	AccountID    string           `json:"accountID"`
	CompanyID    string           `json:"companyID"`
	Description  string           `json:"description"`
	Amount       decimal.Decimal  `json:"amount"`
	DueDate      time.Time        `json:"dueDate"`
	Direction    AccountDirection `json:"type"`
	Status       AccountStatus    `json:"status"`
	Counterparty string           `json:"clientOrSupplier,omitempty"`
	// SettlingTransactionID optionally links the transaction that settled it.
	SettlingTransactionID *string `json:"transactionID,omitempty"`
	AuditFields
}

// Validate checks the invariants a payable/receivable must hold before it is stored.
func (a PayableReceivable) Validate() error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("account amount must be positive, got %s", a.Amount.String())
	}
	if a.Direction != Payable && a.Direction != Receivable {
		return fmt.Errorf("unknown account type '%s'", a.Direction)
	}
	if a.Status != Pending && a.Status != Paid {
		return fmt.Errorf("unknown account status '%s'", a.Status)
	}
	if a.DueDate.IsZero() {
		return fmt.Errorf("account due date is required")
	}
	return nil
}

// AccountTotals sums pending obligations per direction.
type AccountTotals struct {
	PendingPayable    decimal.Decimal `json:"pendingPayable"`
	PendingReceivable decimal.Decimal `json:"pendingReceivable"`
}
