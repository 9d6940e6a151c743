package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a cash movement.
type CreateTransactionRequest struct {
	Amount           decimal.Decimal             `json:"amount" binding:"required,positivedecimal"`
	Date             string                      `json:"date" binding:"required,datetime=2006-01-02"`
	Category         string                      `json:"category" binding:"omitempty,ledgercategory"`
	Description      string                      `json:"description" binding:"required,max=255"`
	Type             domain.TransactionDirection `json:"type" binding:"required,oneof=revenue expense"`
	PaymentMethod    string                      `json:"paymentMethod" binding:"omitempty,paymentmethod"`
	Recurrence       string                      `json:"recurrence" binding:"omitempty,recurrence"`
	ClientOrSupplier string                      `json:"clientOrSupplier" binding:"max=255"`
	Notes            string                      `json:"notes"`
	DebtPaymentForID *string                     `json:"debtPaymentForID"` // Optional link to the debt being paid
}

// UpdateTransactionRequest defines the fields that may be changed on a transaction.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Amount           *decimal.Decimal             `json:"amount" binding:"omitempty,positivedecimal"`
	Date             *string                      `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category         *string                      `json:"category" binding:"omitempty,ledgercategory"`
	Description      *string                      `json:"description" binding:"omitempty,min=1,max=255"`
	Type             *domain.TransactionDirection `json:"type" binding:"omitempty,oneof=revenue expense"`
	PaymentMethod    *string                      `json:"paymentMethod" binding:"omitempty,paymentmethod"`
	Recurrence       *string                      `json:"recurrence" binding:"omitempty,recurrence"`
	ClientOrSupplier *string                      `json:"clientOrSupplier" binding:"omitempty,max=255"`
	Notes            *string                      `json:"notes"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Type     string `form:"type" binding:"omitempty,oneof=revenue expense"`
	Category string `form:"category"`
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID    string                      `json:"transactionID"`
	Amount           decimal.Decimal             `json:"amount"`
	Date             time.Time                   `json:"date"`
	Category         string                      `json:"category"`
	Description      string                      `json:"description"`
	Type             domain.TransactionDirection `json:"type"`
	PaymentMethod    string                      `json:"paymentMethod"`
	Recurrence       string                      `json:"recurrence"`
	ClientOrSupplier string                      `json:"clientOrSupplier,omitempty"`
	Notes            string                      `json:"notes,omitempty"`
	DebtPaymentForID *string                     `json:"debtPaymentForID,omitempty"`
	CreatedAt        time.Time                   `json:"createdAt"`
	LastUpdatedAt    time.Time                   `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    t.TransactionID,
		Amount:           t.Amount,
		Date:             t.Date,
		Category:         t.Category,
		Description:      t.Description,
		Type:             t.Direction,
		PaymentMethod:    t.PaymentMethod,
		Recurrence:       t.Recurrence,
		ClientOrSupplier: t.Counterparty,
		Notes:            t.Notes,
		DebtPaymentForID: t.DebtPaymentForID,
		CreatedAt:        t.CreatedAt,
		LastUpdatedAt:    t.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a slice of domain.Transaction.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res}
}
