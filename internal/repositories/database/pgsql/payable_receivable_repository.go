package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/SscSPs/bizledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, company_id, description, amount, due_date, type, status,
	client_or_supplier, transaction_id, created_at, last_updated_at`

// PgxPayableReceivableRepository persists accounts payable and receivable.
type PgxPayableReceivableRepository struct {
	BaseRepository
}

func newPgxPayableReceivableRepository(pool *pgxpool.Pool) *PgxPayableReceivableRepository {
	return &PgxPayableReceivableRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayableReceivableRepositoryFacade = (*PgxPayableReceivableRepository)(nil)

func toModelAccount(d domain.PayableReceivable) models.PayableReceivable {
	return models.PayableReceivable{
		AccountID:        d.AccountID,
		CompanyID:        d.CompanyID,
		Description:      d.Description,
		Amount:           d.Amount,
		DueDate:          d.DueDate,
		Type:             string(d.Direction),
		Status:           string(d.Status),
		ClientOrSupplier: nullableString(d.Counterparty),
		TransactionID:    d.SettlingTransactionID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainAccount(m models.PayableReceivable) domain.PayableReceivable {
	return domain.PayableReceivable{
		AccountID:             m.AccountID,
		CompanyID:             m.CompanyID,
		Description:           m.Description,
		Amount:                m.Amount,
		DueDate:               m.DueDate,
		Direction:             domain.AccountDirection(m.Type),
		Status:                domain.AccountStatus(m.Status),
		Counterparty:          derefString(m.ClientOrSupplier),
		SettlingTransactionID: m.TransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveAccount inserts a new payable/receivable.
func (r *PgxPayableReceivableRepository) SaveAccount(ctx context.Context, account domain.PayableReceivable) error {
	m := toModelAccount(account)
	query := `
		INSERT INTO accounts_payable_receivable (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.CompanyID, m.Description, m.Amount, m.DueDate, m.Type, m.Status,
		m.ClientOrSupplier, m.TransactionID, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "account", m.AccountID)
	}
	return nil
}

// FindAccountByID retrieves a payable/receivable by its ID.
func (r *PgxPayableReceivableRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.PayableReceivable, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts_payable_receivable WHERE company_id = $1 AND account_id = $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account %s: %w", accountID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PayableReceivable])
	if err != nil {
		return nil, mapReadError(err, "account", accountID)
	}
	d := toDomainAccount(m)
	return &d, nil
}

// ListAccounts retrieves the company's accounts, pending first and then by due date.
func (r *PgxPayableReceivableRepository) ListAccounts(ctx context.Context, companyID string, filter domain.AccountFilter) ([]domain.PayableReceivable, error) {
	return listAccounts(ctx, r.Pool, companyID, filter)
}

func listAccounts(ctx context.Context, q querier, companyID string, filter domain.AccountFilter) ([]domain.PayableReceivable, error) {
	var where whereBuilder
	where.add("company_id = $%d", companyID)
	if filter.Direction != "" {
		where.add("type = $%d", string(filter.Direction))
	}
	if filter.Status != "" {
		where.add("status = $%d", string(filter.Status))
	}
	if filter.DueFrom != nil {
		where.add("due_date >= $%d", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		where.add("due_date < $%d", *filter.DueTo)
	}

	query := `SELECT ` + accountColumns + ` FROM accounts_payable_receivable` + where.String() +
		` ORDER BY CASE status WHEN 'pending' THEN 0 ELSE 1 END, due_date ASC, created_at ASC;`
	rows, err := q.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for company %s: %w", companyID, err)
	}
	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PayableReceivable])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts for company %s: %w", companyID, err)
	}

	accounts := make([]domain.PayableReceivable, len(modelAccounts))
	for i, m := range modelAccounts {
		accounts[i] = toDomainAccount(m)
	}
	return accounts, nil
}

// UpdateAccount overwrites the editable fields of a payable/receivable.
func (r *PgxPayableReceivableRepository) UpdateAccount(ctx context.Context, account domain.PayableReceivable) error {
	m := toModelAccount(account)
	query := `
		UPDATE accounts_payable_receivable
		SET description = $3, amount = $4, due_date = $5, type = $6, status = $7,
			client_or_supplier = $8, transaction_id = $9, last_updated_at = $10
		WHERE company_id = $1 AND account_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.AccountID, m.Description, m.Amount, m.DueDate, m.Type, m.Status,
		m.ClientOrSupplier, m.TransactionID, m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "account", m.AccountID)
	}
	return expectOneRow(tag, "account", m.AccountID)
}

// UpdateAccountStatus changes only the status of a payable/receivable.
func (r *PgxPayableReceivableRepository) UpdateAccountStatus(ctx context.Context, companyID string, accountID string, status domain.AccountStatus, now time.Time) error {
	query := `
		UPDATE accounts_payable_receivable
		SET status = $3, last_updated_at = $4
		WHERE company_id = $1 AND account_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, accountID, string(status), now)
	if err != nil {
		return mapWriteError(err, "account", accountID)
	}
	return expectOneRow(tag, "account", accountID)
}

// DeleteAccount removes a payable/receivable.
func (r *PgxPayableReceivableRepository) DeleteAccount(ctx context.Context, companyID string, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts_payable_receivable WHERE company_id = $1 AND account_id = $2;`, companyID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	return expectOneRow(tag, "account", accountID)
}
