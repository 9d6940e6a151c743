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
)

// payableReceivableService implements the PayableReceivableSvcFacade interface
type payableReceivableService struct {
	BaseService
	accountRepo portsrepo.PayableReceivableRepositoryFacade
}

// NewPayableReceivableService creates a new accounts payable/receivable service.
func NewPayableReceivableService(repo portsrepo.PayableReceivableRepositoryFacade, options ...ServiceOption) portssvc.PayableReceivableSvcFacade {
	return &payableReceivableService{
		BaseService: newBaseService(options...),
		accountRepo: repo,
	}
}

var _ portssvc.PayableReceivableSvcFacade = (*payableReceivableService)(nil)

func (s *payableReceivableService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest) (*domain.PayableReceivable, error) {
	dueDate, err := dto.ParseDate(req.DueDate, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	status := req.Status
	if status == "" {
		status = domain.Pending
	}

	now := s.Now()
	account := domain.PayableReceivable{
		AccountID:             uuid.NewString(),
		CompanyID:             companyID,
		Description:           strings.TrimSpace(req.Description),
		Amount:                req.Amount,
		DueDate:               dueDate,
		Direction:             req.Type,
		Status:                status,
		Counterparty:          strings.TrimSpace(req.ClientOrSupplier),
		SettlingTransactionID: req.TransactionID,
		AuditFields:           domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("type", string(account.Direction)))
	return &account, nil
}

func (s *payableReceivableService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.PayableReceivable, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *payableReceivableService) ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams) ([]domain.PayableReceivable, domain.AccountTotals, error) {
	dueFrom, dueTo, err := dto.ParseDateRange(params.DueFrom, params.DueTo, s.Location())
	if err != nil {
		return nil, domain.AccountTotals{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	filter := domain.AccountFilter{
		Direction: domain.AccountDirection(params.Type),
		Status:    domain.AccountStatus(params.Status),
		DueFrom:   dueFrom,
		DueTo:     dueTo,
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("company_id", companyID))
		return nil, domain.AccountTotals{}, err
	}
	return accounts, accounting.PendingAccountTotals(accounts), nil
}

func (s *payableReceivableService) UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest) (*domain.PayableReceivable, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		account.Description = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		account.Amount = *req.Amount
	}
	if req.DueDate != nil {
		dueDate, err := dto.ParseDate(*req.DueDate, s.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		account.DueDate = dueDate
	}
	if req.Type != nil {
		account.Direction = *req.Type
	}
	if req.Status != nil {
		account.Status = *req.Status
	}
	if req.ClientOrSupplier != nil {
		account.Counterparty = strings.TrimSpace(*req.ClientOrSupplier)
	}
	if req.TransactionID != nil {
		if *req.TransactionID == "" {
			account.SettlingTransactionID = nil
		} else {
			id := *req.TransactionID
			account.SettlingTransactionID = &id
		}
	}

	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	account.LastUpdatedAt = s.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

// ToggleAccountStatus flips pending and paid. Settling an account here never
// touches the cash balance; a transaction has to be recorded separately.
func (s *payableReceivableService) ToggleAccountStatus(ctx context.Context, companyID string, accountID string) (*domain.PayableReceivable, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	account.Status = account.Status.Toggled()
	account.LastUpdatedAt = s.Now()

	if err := s.accountRepo.UpdateAccountStatus(ctx, companyID, accountID, account.Status, account.LastUpdatedAt); err != nil {
		s.LogError(ctx, err, "Failed to toggle account status", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account status toggled",
		slog.String("account_id", accountID),
		slog.String("status", string(account.Status)))
	return account, nil
}

func (s *payableReceivableService) DeleteAccount(ctx context.Context, companyID string, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, companyID, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Account deleted successfully", slog.String("account_id", accountID))
	return nil
}
