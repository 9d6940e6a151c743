package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// PayableReceivableReaderSvc defines read operations for payables/receivables
type PayableReceivableReaderSvc interface {
	GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.PayableReceivable, error)

	// ListAccounts returns matching accounts (pending first, then by due date)
	// and the pending totals over the same selection.
	ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams) ([]domain.PayableReceivable, domain.AccountTotals, error)
}

// PayableReceivableWriterSvc defines write operations for payables/receivables
type PayableReceivableWriterSvc interface {
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest) (*domain.PayableReceivable, error)
	UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest) (*domain.PayableReceivable, error)
	DeleteAccount(ctx context.Context, companyID string, accountID string) error

	// ToggleAccountStatus flips pending and paid. No transaction is posted.
	ToggleAccountStatus(ctx context.Context, companyID string, accountID string) (*domain.PayableReceivable, error)
}

// PayableReceivableSvcFacade combines all payable/receivable service interfaces
type PayableReceivableSvcFacade interface {
	PayableReceivableReaderSvc
	PayableReceivableWriterSvc
}
