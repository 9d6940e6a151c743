package services

import (
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	options := []ServiceOption{WithLocation(cfg.LedgerLocation)}

	container := &portssvc.ServiceContainer{}
	container.Company = NewCompanyService(repos.CompanyRepo, options...)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.DebtRepo, options...)
	container.PayableReceivable = NewPayableReceivableService(repos.PayableReceivableRepo, options...)
	container.Investment = NewInvestmentService(repos.InvestmentRepo, options...)
	container.Debt = NewDebtService(repos.DebtRepo, repos.TransactionRepo, options...)
	container.Ledger = NewLedgerService(repos.SnapshotRepo, cfg.UpcomingAccountsLimit, options...)

	return container
}
