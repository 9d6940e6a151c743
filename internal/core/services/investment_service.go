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

type investmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepositoryFacade
}

// NewInvestmentService creates a new investment service.
func NewInvestmentService(repo portsrepo.InvestmentRepositoryFacade, options ...ServiceOption) portssvc.InvestmentSvcFacade {
	return &investmentService{
		BaseService:    newBaseService(options...),
		investmentRepo: repo,
	}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) CreateInvestment(ctx context.Context, companyID string, req dto.CreateInvestmentRequest) (*domain.ValuedInvestment, error) {
	purchaseDate, err := dto.ParseDate(req.PurchaseDate, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := s.Now()
	inv := domain.Investment{
		InvestmentID:  uuid.NewString(),
		CompanyID:     companyID,
		Name:          strings.TrimSpace(req.Name),
		Type:          req.Type,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		CurrentPrice:  req.CurrentPrice,
		PurchaseDate:  purchaseDate,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.investmentRepo.SaveInvestment(ctx, inv); err != nil {
		s.LogError(ctx, err, "Failed to save investment",
			slog.String("investment_id", inv.InvestmentID),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Investment created successfully", slog.String("investment_id", inv.InvestmentID))
	valued := accounting.ValueInvestment(inv)
	return &valued, nil
}

func (s *investmentService) GetInvestmentByID(ctx context.Context, companyID string, investmentID string) (*domain.ValuedInvestment, error) {
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, companyID, investmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get investment", slog.String("investment_id", investmentID))
		}
		return nil, err
	}
	valued := accounting.ValueInvestment(*inv)
	return &valued, nil
}

func (s *investmentService) ListInvestments(ctx context.Context, companyID string) ([]domain.ValuedInvestment, domain.PortfolioSummary, error) {
	investments, err := s.investmentRepo.ListInvestments(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investments", slog.String("company_id", companyID))
		return nil, domain.PortfolioSummary{}, err
	}
	valued := accounting.ValueInvestments(investments)
	return valued, accounting.SummarizePortfolio(valued), nil
}

func (s *investmentService) UpdateInvestment(ctx context.Context, companyID string, investmentID string, req dto.UpdateInvestmentRequest) (*domain.ValuedInvestment, error) {
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, companyID, investmentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		inv.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		inv.Type = *req.Type
	}
	if req.Quantity != nil {
		inv.Quantity = *req.Quantity
	}
	if req.PurchasePrice != nil {
		inv.PurchasePrice = *req.PurchasePrice
	}
	if req.CurrentPrice != nil {
		inv.CurrentPrice = *req.CurrentPrice
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := dto.ParseDate(*req.PurchaseDate, s.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		inv.PurchaseDate = purchaseDate
	}

	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	inv.LastUpdatedAt = s.Now()

	if err := s.investmentRepo.UpdateInvestment(ctx, *inv); err != nil {
		s.LogError(ctx, err, "Failed to update investment", slog.String("investment_id", investmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Investment updated successfully", slog.String("investment_id", investmentID))
	valued := accounting.ValueInvestment(*inv)
	return &valued, nil
}

func (s *investmentService) DeleteInvestment(ctx context.Context, companyID string, investmentID string) error {
	if err := s.investmentRepo.DeleteInvestment(ctx, companyID, investmentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete investment", slog.String("investment_id", investmentID))
		}
		return err
	}
	s.LogInfo(ctx, "Investment deleted successfully", slog.String("investment_id", investmentID))
	return nil
}
