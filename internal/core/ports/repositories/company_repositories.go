package repositories

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// CompanyRepositoryFacade defines persistence operations for the company profile.
type CompanyRepositoryFacade interface {
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	SaveCompany(ctx context.Context, company domain.Company) error
	UpdateCompany(ctx context.Context, company domain.Company) error
}
