package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// DebtReaderSvc defines read operations for debts. Debts are always returned
// amortized against the current transactions.
type DebtReaderSvc interface {
	GetDebtByID(ctx context.Context, companyID string, debtID string) (*domain.AmortizedDebt, error)
	ListDebts(ctx context.Context, companyID string) ([]domain.AmortizedDebt, error)
}

// DebtWriterSvc defines write operations for debts
type DebtWriterSvc interface {
	CreateDebt(ctx context.Context, companyID string, req dto.CreateDebtRequest) (*domain.AmortizedDebt, error)
	UpdateDebt(ctx context.Context, companyID string, debtID string, req dto.UpdateDebtRequest) (*domain.AmortizedDebt, error)
	DeleteDebt(ctx context.Context, companyID string, debtID string) error

	// PayInstallment posts the loan-payment expense transaction for the debt.
	PayInstallment(ctx context.Context, companyID string, debtID string, req dto.PayInstallmentRequest) (*domain.Transaction, error)
}

// DebtSvcFacade combines all debt-related service interfaces
type DebtSvcFacade interface {
	DebtReaderSvc
	DebtWriterSvc
}
