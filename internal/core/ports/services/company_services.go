package services

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
)

// CompanySvcFacade manages the company profile.
type CompanySvcFacade interface {
	// GetCompany returns the stored profile, or ErrNotFound.
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)

	CreateCompany(ctx context.Context, companyID string, req dto.CreateCompanyRequest) (*domain.Company, error)
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error)
}
