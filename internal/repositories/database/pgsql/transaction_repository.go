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

const transactionColumns = `transaction_id, company_id, amount, date, category, description, type, payment_method,
	recurrence, client_or_supplier, notes, debt_payment_for_id, created_at, last_updated_at`

// PgxTransactionRepository persists ledger transactions.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:    d.TransactionID,
		CompanyID:        d.CompanyID,
		Amount:           d.Amount,
		Date:             d.Date,
		Category:         d.Category,
		Description:      d.Description,
		Type:             string(d.Direction),
		PaymentMethod:    d.PaymentMethod,
		Recurrence:       d.Recurrence,
		ClientOrSupplier: nullableString(d.Counterparty),
		Notes:            nullableString(d.Notes),
		DebtPaymentForID: d.DebtPaymentForID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:    m.TransactionID,
		CompanyID:        m.CompanyID,
		Amount:           m.Amount,
		Date:             m.Date,
		Category:         m.Category,
		Description:      m.Description,
		Direction:        domain.TransactionDirection(m.Type),
		PaymentMethod:    m.PaymentMethod,
		Recurrence:       m.Recurrence,
		Counterparty:     derefString(m.ClientOrSupplier),
		Notes:            derefString(m.Notes),
		DebtPaymentForID: m.DebtPaymentForID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.CompanyID, m.Amount, m.Date, m.Category, m.Description, m.Type, m.PaymentMethod,
		m.Recurrence, m.ClientOrSupplier, m.Notes, m.DebtPaymentForID, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "transaction", m.TransactionID)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE company_id = $1 AND transaction_id = $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, mapReadError(err, "transaction", transactionID)
	}
	d := toDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves the company's transactions matching filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, companyID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return listTransactions(ctx, r.Pool, companyID, filter)
}

func listTransactions(ctx context.Context, q querier, companyID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var where whereBuilder
	where.add("company_id = $%d", companyID)
	if filter.Direction != "" {
		where.add("type = $%d", string(filter.Direction))
	}
	if filter.Category != "" {
		where.add("category = $%d", filter.Category)
	}
	if filter.From != nil {
		where.add("date >= $%d", *filter.From)
	}
	if filter.To != nil {
		where.add("date < $%d", *filter.To)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions` + where.String() +
		` ORDER BY date DESC, created_at DESC;`
	rows, err := q.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for company %s: %w", companyID, err)
	}
	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions for company %s: %w", companyID, err)
	}

	txns := make([]domain.Transaction, len(modelTxns))
	for i, m := range modelTxns {
		txns[i] = toDomainTransaction(m)
	}
	return txns, nil
}

// UpdateTransaction overwrites the editable fields of a transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
		UPDATE transactions
		SET amount = $3, date = $4, category = $5, description = $6, type = $7, payment_method = $8,
			recurrence = $9, client_or_supplier = $10, notes = $11, debt_payment_for_id = $12, last_updated_at = $13
		WHERE company_id = $1 AND transaction_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.TransactionID, m.Amount, m.Date, m.Category, m.Description, m.Type, m.PaymentMethod,
		m.Recurrence, m.ClientOrSupplier, m.Notes, m.DebtPaymentForID, m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "transaction", m.TransactionID)
	}
	return expectOneRow(tag, "transaction", m.TransactionID)
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, companyID string, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE company_id = $1 AND transaction_id = $2;`, companyID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return expectOneRow(tag, "transaction", transactionID)
}
