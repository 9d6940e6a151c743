package pgsql

import (
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:       newPgxTransactionRepository(dbPool),
		PayableReceivableRepo: newPgxPayableReceivableRepository(dbPool),
		InvestmentRepo:        newPgxInvestmentRepository(dbPool),
		DebtRepo:              newPgxDebtRepository(dbPool),
		CompanyRepo:           newPgxCompanyRepository(dbPool),
		SnapshotRepo:          newPgxSnapshotRepository(dbPool),
	}
}
