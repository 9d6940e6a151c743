package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// PayableReceivableReader defines read operations for accounts payable/receivable
type PayableReceivableReader interface {
	FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.PayableReceivable, error)

	// ListAccounts retrieves the company's accounts matching filter, pending
	// first and then by due date.
	ListAccounts(ctx context.Context, companyID string, filter domain.AccountFilter) ([]domain.PayableReceivable, error)
}

// PayableReceivableWriter defines write operations for accounts payable/receivable
type PayableReceivableWriter interface {
	SaveAccount(ctx context.Context, account domain.PayableReceivable) error
	UpdateAccount(ctx context.Context, account domain.PayableReceivable) error

	// UpdateAccountStatus changes only the status column.
	UpdateAccountStatus(ctx context.Context, companyID string, accountID string, status domain.AccountStatus, now time.Time) error

	DeleteAccount(ctx context.Context, companyID string, accountID string) error
}

// PayableReceivableRepositoryFacade combines all payable/receivable repository interfaces
type PayableReceivableRepositoryFacade interface {
	PayableReceivableReader
	PayableReceivableWriter
}
