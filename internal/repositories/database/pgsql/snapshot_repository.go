package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSnapshotRepository reads the raw collections of a company in a single
// read-only repeatable-read transaction, so a snapshot never mixes states.
type PgxSnapshotRepository struct {
	BaseRepository
}

func newPgxSnapshotRepository(pool *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SnapshotRepository = (*PgxSnapshotRepository)(nil)

// LoadSnapshot fetches the company currency together with its transactions,
// accounts, investments and debts.
func (r *PgxSnapshotRepository) LoadSnapshot(ctx context.Context, companyID string) (snap domain.Snapshot, err error) {
	tx, err := r.Begin(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return domain.Snapshot{}, err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	company, err := findCompany(ctx, tx, companyID)
	switch {
	case err == nil:
		snap.CurrencyCode = company.CurrencyCode
	case errors.Is(err, apperrors.ErrNotFound):
		// no profile yet, the default currency applies
	default:
		return domain.Snapshot{}, err
	}

	if snap.Transactions, err = listTransactions(ctx, tx, companyID, domain.TransactionFilter{}); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Accounts, err = listAccounts(ctx, tx, companyID, domain.AccountFilter{}); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Investments, err = listInvestments(ctx, tx, companyID); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Debts, err = listDebts(ctx, tx, companyID); err != nil {
		return domain.Snapshot{}, err
	}

	if err = r.Commit(ctx, tx); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}
