package handlers_test

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, companyID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, companyID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, companyID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, companyID string, transactionID string) error {
	args := m.Called(ctx, companyID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock PayableReceivableService ---
type MockPayableReceivableService struct {
	mock.Mock
}

func (m *MockPayableReceivableService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.PayableReceivable, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayableReceivable), args.Error(1)
}
func (m *MockPayableReceivableService) ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams) ([]domain.PayableReceivable, domain.AccountTotals, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, domain.AccountTotals{}, args.Error(2)
	}
	return args.Get(0).([]domain.PayableReceivable), args.Get(1).(domain.AccountTotals), args.Error(2)
}
func (m *MockPayableReceivableService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest) (*domain.PayableReceivable, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayableReceivable), args.Error(1)
}
func (m *MockPayableReceivableService) UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest) (*domain.PayableReceivable, error) {
	args := m.Called(ctx, companyID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayableReceivable), args.Error(1)
}
func (m *MockPayableReceivableService) DeleteAccount(ctx context.Context, companyID string, accountID string) error {
	args := m.Called(ctx, companyID, accountID)
	return args.Error(0)
}
func (m *MockPayableReceivableService) ToggleAccountStatus(ctx context.Context, companyID string, accountID string) (*domain.PayableReceivable, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayableReceivable), args.Error(1)
}

var _ portssvc.PayableReceivableSvcFacade = (*MockPayableReceivableService)(nil)

// --- Mock InvestmentService ---
type MockInvestmentService struct {
	mock.Mock
}

func (m *MockInvestmentService) GetInvestmentByID(ctx context.Context, companyID string, investmentID string) (*domain.ValuedInvestment, error) {
	args := m.Called(ctx, companyID, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValuedInvestment), args.Error(1)
}
func (m *MockInvestmentService) ListInvestments(ctx context.Context, companyID string) ([]domain.ValuedInvestment, domain.PortfolioSummary, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, domain.PortfolioSummary{}, args.Error(2)
	}
	return args.Get(0).([]domain.ValuedInvestment), args.Get(1).(domain.PortfolioSummary), args.Error(2)
}
func (m *MockInvestmentService) CreateInvestment(ctx context.Context, companyID string, req dto.CreateInvestmentRequest) (*domain.ValuedInvestment, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValuedInvestment), args.Error(1)
}
func (m *MockInvestmentService) UpdateInvestment(ctx context.Context, companyID string, investmentID string, req dto.UpdateInvestmentRequest) (*domain.ValuedInvestment, error) {
	args := m.Called(ctx, companyID, investmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValuedInvestment), args.Error(1)
}
func (m *MockInvestmentService) DeleteInvestment(ctx context.Context, companyID string, investmentID string) error {
	args := m.Called(ctx, companyID, investmentID)
	return args.Error(0)
}

var _ portssvc.InvestmentSvcFacade = (*MockInvestmentService)(nil)

// --- Mock DebtService ---
type MockDebtService struct {
	mock.Mock
}

func (m *MockDebtService) GetDebtByID(ctx context.Context, companyID string, debtID string) (*domain.AmortizedDebt, error) {
	args := m.Called(ctx, companyID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AmortizedDebt), args.Error(1)
}
func (m *MockDebtService) ListDebts(ctx context.Context, companyID string) ([]domain.AmortizedDebt, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AmortizedDebt), args.Error(1)
}
func (m *MockDebtService) CreateDebt(ctx context.Context, companyID string, req dto.CreateDebtRequest) (*domain.AmortizedDebt, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AmortizedDebt), args.Error(1)
}
func (m *MockDebtService) UpdateDebt(ctx context.Context, companyID string, debtID string, req dto.UpdateDebtRequest) (*domain.AmortizedDebt, error) {
	args := m.Called(ctx, companyID, debtID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AmortizedDebt), args.Error(1)
}
func (m *MockDebtService) DeleteDebt(ctx context.Context, companyID string, debtID string) error {
	args := m.Called(ctx, companyID, debtID)
	return args.Error(0)
}
func (m *MockDebtService) PayInstallment(ctx context.Context, companyID string, debtID string, req dto.PayInstallmentRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, debtID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.DebtSvcFacade = (*MockDebtService)(nil)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) CreateCompany(ctx context.Context, companyID string, req dto.CreateCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Overview(ctx context.Context, companyID string, params dto.OverviewParams) (*domain.DerivedState, string, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.DerivedState), args.String(1), args.Error(2)
}
func (m *MockLedgerService) FinancialSummary(ctx context.Context, companyID string) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}
func (m *MockLedgerService) Counterparties(ctx context.Context, companyID string, params dto.CounterpartyParams) ([]domain.CounterpartySummary, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CounterpartySummary), args.Error(1)
}
func (m *MockLedgerService) Achievements(ctx context.Context, companyID string) ([]domain.Achievement, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)
