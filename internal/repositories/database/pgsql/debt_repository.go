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

const debtColumns = `debt_id, company_id, name, type, lender, total_amount, interest_rate, start_date,
	created_at, last_updated_at`

// PgxDebtRepository persists debts.
type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(pool *pgxpool.Pool) *PgxDebtRepository {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

func toModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:       d.DebtID,
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		Type:         d.Type,
		Lender:       nullableString(d.Lender),
		TotalAmount:  d.TotalAmount,
		InterestRate: d.InterestRate,
		StartDate:    d.StartDate,
		AuditFields:  models.AuditFields{CreatedAt: d.CreatedAt, LastUpdatedAt: d.LastUpdatedAt},
	}
}

func toDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:       m.DebtID,
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		Type:         m.Type,
		Lender:       derefString(m.Lender),
		TotalAmount:  m.TotalAmount,
		InterestRate: m.InterestRate,
		StartDate:    m.StartDate,
		AuditFields:  domain.AuditFields{CreatedAt: m.CreatedAt, LastUpdatedAt: m.LastUpdatedAt},
	}
}

// SaveDebt inserts a new debt.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	m := toModelDebt(debt)
	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID, m.CompanyID, m.Name, m.Type, m.Lender, m.TotalAmount, m.InterestRate, m.StartDate,
		m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "debt", m.DebtID)
	}
	return nil
}

// FindDebtByID retrieves a debt by its ID.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, companyID string, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE company_id = $1 AND debt_id = $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to query debt %s: %w", debtID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Debt])
	if err != nil {
		return nil, mapReadError(err, "debt", debtID)
	}
	d := toDomainDebt(m)
	return &d, nil
}

// ListDebts retrieves all debts of the company, oldest first.
func (r *PgxDebtRepository) ListDebts(ctx context.Context, companyID string) ([]domain.Debt, error) {
	return listDebts(ctx, r.Pool, companyID)
}

func listDebts(ctx context.Context, q querier, companyID string) ([]domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE company_id = $1 ORDER BY start_date ASC, created_at ASC;`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts for company %s: %w", companyID, err)
	}
	modelDebts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Debt])
	if err != nil {
		return nil, fmt.Errorf("failed to scan debts for company %s: %w", companyID, err)
	}
	debts := make([]domain.Debt, len(modelDebts))
	for i, m := range modelDebts {
		debts[i] = toDomainDebt(m)
	}
	return debts, nil
}

// UpdateDebt overwrites the editable fields of a debt.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	m := toModelDebt(debt)
	query := `
		UPDATE debts
		SET name = $3, type = $4, lender = $5, total_amount = $6, interest_rate = $7, start_date = $8,
			last_updated_at = $9
		WHERE company_id = $1 AND debt_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.DebtID, m.Name, m.Type, m.Lender, m.TotalAmount, m.InterestRate, m.StartDate,
		m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "debt", m.DebtID)
	}
	return expectOneRow(tag, "debt", m.DebtID)
}

// DeleteDebt removes a debt. The foreign key on transactions sets the payment
// link to NULL, so the payments survive as plain expenses.
func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, companyID string, debtID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM debts WHERE company_id = $1 AND debt_id = $2;`, companyID, debtID)
	if err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}
	return expectOneRow(tag, "debt", debtID)
}
