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
)

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company profile service.
func NewCompanyService(repo portsrepo.CompanyRepositoryFacade, options ...ServiceOption) portssvc.CompanySvcFacade {
	return &companyService{
		BaseService: newBaseService(options...),
		companyRepo: repo,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get company", slog.String("company_id", companyID))
		}
		return nil, err
	}
	return company, nil
}

func (s *companyService) CreateCompany(ctx context.Context, companyID string, req dto.CreateCompanyRequest) (*domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validationf("company name is required")
	}
	currency := domain.CurrencyOrDefault(strings.ToUpper(req.CurrencyCode))

	now := s.Now()
	company := domain.Company{
		CompanyID:    companyID,
		Name:         name,
		CurrencyCode: currency,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("company profile already exists: %w", err)
		}
		s.LogError(ctx, err, "Failed to save company", slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Company profile created",
		slog.String("company_id", companyID),
		slog.String("currency", currency))
	return &company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.Validationf("company name is required")
		}
		company.Name = name
	}
	if req.CurrencyCode != nil {
		company.CurrencyCode = strings.ToUpper(*req.CurrencyCode)
	}
	company.LastUpdatedAt = s.Now()

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company", slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Company profile updated", slog.String("company_id", companyID))
	return company, nil
}
