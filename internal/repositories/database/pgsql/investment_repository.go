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

const investmentColumns = `investment_id, company_id, name, type, quantity, purchase_price, current_price,
	purchase_date, created_at, last_updated_at`

// PgxInvestmentRepository persists investment holdings.
type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(pool *pgxpool.Pool) *PgxInvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

func toModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:  d.InvestmentID,
		CompanyID:     d.CompanyID,
		Name:          d.Name,
		Type:          d.Type,
		Quantity:      d.Quantity,
		PurchasePrice: d.PurchasePrice,
		CurrentPrice:  d.CurrentPrice,
		PurchaseDate:  d.PurchaseDate,
		AuditFields:   models.AuditFields{CreatedAt: d.CreatedAt, LastUpdatedAt: d.LastUpdatedAt},
	}
}

func toDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:  m.InvestmentID,
		CompanyID:     m.CompanyID,
		Name:          m.Name,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PurchasePrice: m.PurchasePrice,
		CurrentPrice:  m.CurrentPrice,
		PurchaseDate:  m.PurchaseDate,
		AuditFields:   domain.AuditFields{CreatedAt: m.CreatedAt, LastUpdatedAt: m.LastUpdatedAt},
	}
}

// SaveInvestment inserts a new holding.
func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, inv domain.Investment) error {
	m := toModelInvestment(inv)
	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvestmentID, m.CompanyID, m.Name, m.Type, m.Quantity, m.PurchasePrice, m.CurrentPrice,
		m.PurchaseDate, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "investment", m.InvestmentID)
	}
	return nil
}

// FindInvestmentByID retrieves a holding by its ID.
func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, companyID string, investmentID string) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE company_id = $1 AND investment_id = $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, investmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment %s: %w", investmentID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Investment])
	if err != nil {
		return nil, mapReadError(err, "investment", investmentID)
	}
	d := toDomainInvestment(m)
	return &d, nil
}

// ListInvestments retrieves all holdings of the company, oldest purchase first.
func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context, companyID string) ([]domain.Investment, error) {
	return listInvestments(ctx, r.Pool, companyID)
}

func listInvestments(ctx context.Context, q querier, companyID string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE company_id = $1 ORDER BY purchase_date ASC, created_at ASC;`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments for company %s: %w", companyID, err)
	}
	modelInvs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Investment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan investments for company %s: %w", companyID, err)
	}
	invs := make([]domain.Investment, len(modelInvs))
	for i, m := range modelInvs {
		invs[i] = toDomainInvestment(m)
	}
	return invs, nil
}

// UpdateInvestment overwrites the editable fields of a holding.
func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, inv domain.Investment) error {
	m := toModelInvestment(inv)
	query := `
		UPDATE investments
		SET name = $3, type = $4, quantity = $5, purchase_price = $6, current_price = $7,
			purchase_date = $8, last_updated_at = $9
		WHERE company_id = $1 AND investment_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.InvestmentID, m.Name, m.Type, m.Quantity, m.PurchasePrice, m.CurrentPrice,
		m.PurchaseDate, m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "investment", m.InvestmentID)
	}
	return expectOneRow(tag, "investment", m.InvestmentID)
}

// DeleteInvestment removes a holding.
func (r *PgxInvestmentRepository) DeleteInvestment(ctx context.Context, companyID string, investmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM investments WHERE company_id = $1 AND investment_id = $2;`, companyID, investmentID)
	if err != nil {
		return fmt.Errorf("failed to delete investment %s: %w", investmentID, err)
	}
	return expectOneRow(tag, "investment", investmentID)
}
