package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepositoryFacade
	txnRepo  portsrepo.TransactionRepositoryFacade
}

// NewDebtService creates a new debt service. The transaction repository is
// needed both to amortize debts and to post installment payments.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, options ...ServiceOption) portssvc.DebtSvcFacade {
	return &debtService{
		BaseService: newBaseService(options...),
		debtRepo:    debtRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) paidIndex(ctx context.Context, companyID string) (map[string]decimal.Decimal, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, companyID, domain.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for amortization", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return accounting.PaidByDebt(txns), nil
}

func (s *debtService) amortize(ctx context.Context, debt domain.Debt) (*domain.AmortizedDebt, error) {
	idx, err := s.paidIndex(ctx, debt.CompanyID)
	if err != nil {
		return nil, err
	}
	amortized := accounting.AmortizeDebt(debt, idx)
	return &amortized, nil
}

func (s *debtService) CreateDebt(ctx context.Context, companyID string, req dto.CreateDebtRequest) (*domain.AmortizedDebt, error) {
	startDate, err := dto.ParseDate(req.StartDate, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := s.Now()
	debt := domain.Debt{
		DebtID:       uuid.NewString(),
		CompanyID:    companyID,
		Name:         strings.TrimSpace(req.Name),
		Type:         req.Type,
		Lender:       strings.TrimSpace(req.Lender),
		TotalAmount:  req.TotalAmount,
		InterestRate: req.InterestRate,
		StartDate:    startDate,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := debt.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt",
			slog.String("debt_id", debt.DebtID),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt created successfully", slog.String("debt_id", debt.DebtID))
	// A new debt has no payments linked yet.
	amortized := accounting.AmortizeDebt(debt, nil)
	return &amortized, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, companyID string, debtID string) (*domain.AmortizedDebt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, companyID, debtID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get debt", slog.String("debt_id", debtID))
		}
		return nil, err
	}
	return s.amortize(ctx, *debt)
}

func (s *debtService) ListDebts(ctx context.Context, companyID string) ([]domain.AmortizedDebt, error) {
	debts, err := s.debtRepo.ListDebts(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts", slog.String("company_id", companyID))
		return nil, err
	}
	idx, err := s.paidIndex(ctx, companyID)
	if err != nil {
		return nil, err
	}
	amortized := make([]domain.AmortizedDebt, len(debts))
	for i, d := range debts {
		amortized[i] = accounting.AmortizeDebt(d, idx)
	}
	return amortized, nil
}

func (s *debtService) UpdateDebt(ctx context.Context, companyID string, debtID string, req dto.UpdateDebtRequest) (*domain.AmortizedDebt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, companyID, debtID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		debt.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		debt.Type = *req.Type
	}
	if req.Lender != nil {
		debt.Lender = strings.TrimSpace(*req.Lender)
	}
	if req.TotalAmount != nil {
		debt.TotalAmount = *req.TotalAmount
	}
	if req.InterestRate != nil {
		debt.InterestRate = *req.InterestRate
	}
	if req.StartDate != nil {
		startDate, err := dto.ParseDate(*req.StartDate, s.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		debt.StartDate = startDate
	}

	if err := debt.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	debt.LastUpdatedAt = s.Now()

	if err := s.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		s.LogError(ctx, err, "Failed to update debt", slog.String("debt_id", debtID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt updated successfully", slog.String("debt_id", debtID))
	return s.amortize(ctx, *debt)
}

// DeleteDebt removes the debt. Its payment transactions stay in the ledger
// and keep counting towards the cash balance.
func (s *debtService) DeleteDebt(ctx context.Context, companyID string, debtID string) error {
	if err := s.debtRepo.DeleteDebt(ctx, companyID, debtID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete debt", slog.String("debt_id", debtID))
		}
		return err
	}
	s.LogInfo(ctx, "Debt deleted successfully", slog.String("debt_id", debtID))
	return nil
}

func (s *debtService) PayInstallment(ctx context.Context, companyID string, debtID string, req dto.PayInstallmentRequest) (*domain.Transaction, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, companyID, debtID)
	if err != nil {
		return nil, err
	}

	date := s.Today()
	if req.Date != "" {
		date, err = dto.ParseDate(req.Date, s.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	txn, err := accounting.NewDebtPayment(*debt, req.Amount, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	now := s.Now()
	txn.TransactionID = uuid.NewString()
	txn.CreatedAt = now
	txn.LastUpdatedAt = now

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to post installment payment",
			slog.String("debt_id", debtID),
			slog.String("amount", req.Amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Installment paid",
		slog.String("debt_id", debtID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", req.Amount.String()))
	return &txn, nil
}
