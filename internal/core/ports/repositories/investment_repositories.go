package repositories

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// InvestmentReader defines read operations for investment data
type InvestmentReader interface {
	FindInvestmentByID(ctx context.Context, companyID string, investmentID string) (*domain.Investment, error)
	ListInvestments(ctx context.Context, companyID string) ([]domain.Investment, error)
}

// InvestmentWriter defines write operations for investment data
type InvestmentWriter interface {
	SaveInvestment(ctx context.Context, inv domain.Investment) error
	UpdateInvestment(ctx context.Context, inv domain.Investment) error
	DeleteInvestment(ctx context.Context, companyID string, investmentID string) error
}

// InvestmentRepositoryFacade combines all investment-related repository interfaces
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}
