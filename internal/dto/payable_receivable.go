package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to register a payable or receivable.
type CreateAccountRequest struct {
	Description      string                  `json:"description" binding:"required,max=255"`
	Amount           decimal.Decimal         `json:"amount" binding:"required,positivedecimal"`
	DueDate          string                  `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Type             domain.AccountDirection `json:"type" binding:"required,oneof=payable receivable"`
	Status           domain.AccountStatus    `json:"status" binding:"omitempty,oneof=pending paid"` // Defaults to pending
	ClientOrSupplier string                  `json:"clientOrSupplier" binding:"max=255"`
	TransactionID    *string                 `json:"transactionID"`
}

// UpdateAccountRequest defines the fields that may be changed on a payable/receivable.
type UpdateAccountRequest struct {
	Description      *string                  `json:"description" binding:"omitempty,min=1,max=255"`
	Amount           *decimal.Decimal         `json:"amount" binding:"omitempty,positivedecimal"`
	DueDate          *string                  `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Type             *domain.AccountDirection `json:"type" binding:"omitempty,oneof=payable receivable"`
	Status           *domain.AccountStatus    `json:"status" binding:"omitempty,oneof=pending paid"`
	ClientOrSupplier *string                  `json:"clientOrSupplier" binding:"omitempty,max=255"`
	TransactionID    *string                  `json:"transactionID"`
}

// ListAccountsParams defines query parameters for listing payables/receivables.
type ListAccountsParams struct {
	Type    string `form:"type" binding:"omitempty,oneof=payable receivable"`
	Status  string `form:"status" binding:"omitempty,oneof=pending paid"`
	DueFrom string `form:"dueFrom" binding:"omitempty,datetime=2006-01-02"`
	DueTo   string `form:"dueTo" binding:"omitempty,datetime=2006-01-02"`
}

// AccountResponse defines the data returned for a payable/receivable.
type AccountResponse struct {
	AccountID        string                  `json:"accountID"`
	Description      string                  `json:"description"`
	Amount           decimal.Decimal         `json:"amount"`
	DueDate          time.Time               `json:"dueDate"`
	Type             domain.AccountDirection `json:"type"`
	Status           domain.AccountStatus    `json:"status"`
	ClientOrSupplier string                  `json:"clientOrSupplier,omitempty"`
	TransactionID    *string                 `json:"transactionID,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	LastUpdatedAt    time.Time               `json:"lastUpdatedAt"`
}

// ListAccountsResponse wraps the list of accounts and their pending totals.
type ListAccountsResponse struct {
	Accounts []AccountResponse   `json:"accounts"`
	Totals   domain.AccountTotals `json:"totals"`
}

// ToAccountResponse converts a domain.PayableReceivable to AccountResponse DTO
func ToAccountResponse(a *domain.PayableReceivable) AccountResponse {
	return AccountResponse{
		AccountID:        a.AccountID,
		Description:      a.Description,
		Amount:           a.Amount,
		DueDate:          a.DueDate,
		Type:             a.Direction,
		Status:           a.Status,
		ClientOrSupplier: a.Counterparty,
		TransactionID:    a.SettlingTransactionID,
		CreatedAt:        a.CreatedAt,
		LastUpdatedAt:    a.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain.PayableReceivable.
func ToAccountResponses(accounts []domain.PayableReceivable) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
