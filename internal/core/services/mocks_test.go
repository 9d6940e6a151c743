package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Transaction repository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, companyID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, companyID string, transactionID string) error {
	args := m.Called(ctx, companyID, transactionID)
	return args.Error(0)
}

// --- Payable/receivable repository ---

type MockPayableReceivableRepository struct {
	mock.Mock
}

func (m *MockPayableReceivableRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.PayableReceivable, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayableReceivable), args.Error(1)
}

func (m *MockPayableReceivableRepository) ListAccounts(ctx context.Context, companyID string, filter domain.AccountFilter) ([]domain.PayableReceivable, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayableReceivable), args.Error(1)
}

func (m *MockPayableReceivableRepository) SaveAccount(ctx context.Context, account domain.PayableReceivable) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockPayableReceivableRepository) UpdateAccount(ctx context.Context, account domain.PayableReceivable) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockPayableReceivableRepository) UpdateAccountStatus(ctx context.Context, companyID string, accountID string, status domain.AccountStatus, now time.Time) error {
	args := m.Called(ctx, companyID, accountID, status, now)
	return args.Error(0)
}

func (m *MockPayableReceivableRepository) DeleteAccount(ctx context.Context, companyID string, accountID string) error {
	args := m.Called(ctx, companyID, accountID)
	return args.Error(0)
}

// --- Investment repository ---

type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, companyID string, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, companyID, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) ListInvestments(ctx context.Context, companyID string) ([]domain.Investment, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, inv domain.Investment) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvestmentRepository) UpdateInvestment(ctx context.Context, inv domain.Investment) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvestmentRepository) DeleteInvestment(ctx context.Context, companyID string, investmentID string) error {
	args := m.Called(ctx, companyID, investmentID)
	return args.Error(0)
}

// --- Debt repository ---

type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, companyID string, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, companyID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListDebts(ctx context.Context, companyID string) ([]domain.Debt, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) DeleteDebt(ctx context.Context, companyID string, debtID string) error {
	args := m.Called(ctx, companyID, debtID)
	return args.Error(0)
}

// --- Company repository ---

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// --- Snapshot repository ---

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) LoadSnapshot(ctx context.Context, companyID string) (domain.Snapshot, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

// --- Shared fixtures ---

var testLocation = time.FixedZone("BRT", -3*60*60)

// fixedNow is mid-March 2024 in the ledger location.
var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, testLocation)

func fixedClock() time.Time { return fixedNow }
