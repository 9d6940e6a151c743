package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// InvestmentReaderSvc defines read operations for investments. Holdings are
// always returned valued.
type InvestmentReaderSvc interface {
	GetInvestmentByID(ctx context.Context, companyID string, investmentID string) (*domain.ValuedInvestment, error)
	ListInvestments(ctx context.Context, companyID string) ([]domain.ValuedInvestment, domain.PortfolioSummary, error)
}

// InvestmentWriterSvc defines write operations for investments
type InvestmentWriterSvc interface {
	CreateInvestment(ctx context.Context, companyID string, req dto.CreateInvestmentRequest) (*domain.ValuedInvestment, error)
	UpdateInvestment(ctx context.Context, companyID string, investmentID string, req dto.UpdateInvestmentRequest) (*domain.ValuedInvestment, error)
	DeleteInvestment(ctx context.Context, companyID string, investmentID string) error
}

// InvestmentSvcFacade combines all investment-related service interfaces
type InvestmentSvcFacade interface {
	InvestmentReaderSvc
	InvestmentWriterSvc
}
