package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/SscSPs/bizledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCompanyRepository persists company profiles.
type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

// FindCompanyByID retrieves a company profile by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return findCompany(ctx, r.Pool, companyID)
}

func findCompany(ctx context.Context, q querier, companyID string) (*domain.Company, error) {
	query := `SELECT company_id, name, currency_code, created_at, last_updated_at FROM companies WHERE company_id = $1;`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query company %s: %w", companyID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		return nil, mapReadError(err, "company", companyID)
	}
	return &domain.Company{
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		AuditFields:  domain.AuditFields{CreatedAt: m.CreatedAt, LastUpdatedAt: m.LastUpdatedAt},
	}, nil
}

// SaveCompany inserts a new company profile.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (company_id, name, currency_code, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, company.CompanyID, company.Name, company.CurrencyCode, company.CreatedAt, company.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "company", company.CompanyID)
	}
	return nil
}

// UpdateCompany overwrites the name and currency of a company profile.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	query := `UPDATE companies SET name = $2, currency_code = $3, last_updated_at = $4 WHERE company_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, company.CompanyID, company.Name, company.CurrencyCode, company.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "company", company.CompanyID)
	}
	return expectOneRow(tag, "company", company.CompanyID)
}
