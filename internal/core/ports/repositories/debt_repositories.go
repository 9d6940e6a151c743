package repositories

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// DebtReader defines read operations for debt data
type DebtReader interface {
	FindDebtByID(ctx context.Context, companyID string, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context, companyID string) ([]domain.Debt, error)
}

// DebtWriter defines write operations for debt data
type DebtWriter interface {
	SaveDebt(ctx context.Context, debt domain.Debt) error
	UpdateDebt(ctx context.Context, debt domain.Debt) error

	// DeleteDebt removes the debt. Linked payments are kept and lose their link.
	DeleteDebt(ctx context.Context, companyID string, debtID string) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
