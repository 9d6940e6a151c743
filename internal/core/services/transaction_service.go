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
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	debtReader portsrepo.DebtReader
}

// NewTransactionService creates a new transaction service. debtReader is used
// to check that debt payment links stay within the company.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, debtReader portsrepo.DebtReader, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: newBaseService(options...),
		txnRepo:     txnRepo,
		debtReader:  debtReader,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, companyID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date, err := dto.ParseDate(req.Date, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	recurrence := req.Recurrence
	if recurrence == "" {
		recurrence = domain.RecurrenceNone
	}

	now := s.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CompanyID:     companyID,
		Amount:        req.Amount,
		Date:          date,
		Category:      req.Category,
		Description:   strings.TrimSpace(req.Description),
		Direction:     req.Type,
		PaymentMethod: req.PaymentMethod,
		Recurrence:    recurrence,
		Counterparty:  strings.TrimSpace(req.ClientOrSupplier),
		Notes:         req.Notes,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if req.DebtPaymentForID != nil && *req.DebtPaymentForID != "" {
		if err := s.checkDebtLink(ctx, companyID, *req.DebtPaymentForID); err != nil {
			return nil, err
		}
		debtID := *req.DebtPaymentForID
		txn.DebtPaymentForID = &debtID
	}

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Direction)))
	return &txn, nil
}

func (s *transactionService) checkDebtLink(ctx context.Context, companyID string, debtID string) error {
	if s.debtReader == nil {
		return nil
	}
	if _, err := s.debtReader.FindDebtByID(ctx, companyID, debtID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: debt %s does not exist", apperrors.ErrValidation, debtID)
		}
		return err
	}
	return nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, companyID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	from, to, err := dto.ParseDateRange(params.From, params.To, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	filter := domain.TransactionFilter{
		Direction: domain.TransactionDirection(params.Type),
		Category:  params.Category,
		From:      from,
		To:        to,
	}
	txns, err := s.txnRepo.ListTransactions(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("company_id", companyID))
		return nil, err
	}
	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(txns)))
	return txns, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, companyID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date, s.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		txn.Date = date
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Description != nil {
		txn.Description = strings.TrimSpace(*req.Description)
	}
	if req.Type != nil {
		txn.Direction = *req.Type
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = *req.PaymentMethod
	}
	if req.Recurrence != nil {
		txn.Recurrence = *req.Recurrence
	}
	if req.ClientOrSupplier != nil {
		txn.Counterparty = strings.TrimSpace(*req.ClientOrSupplier)
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	txn.LastUpdatedAt = s.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, companyID string, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, companyID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted successfully", slog.String("transaction_id", transactionID))
	return nil
}
