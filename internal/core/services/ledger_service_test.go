package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/core/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	snapshotRepo *MockSnapshotRepository
	service      portssvc.LedgerSvcFacade
	ctx          context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.snapshotRepo = new(MockSnapshotRepository)
	options := []services.ServiceOption{services.WithClock(fixedClock), services.WithLocation(testLocation)}
	suite.service = services.NewLedgerService(suite.snapshotRepo, 2, options...)
	suite.ctx = context.Background()
}

func onDay(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, testLocation)
}

func ledgerSnapshot() domain.Snapshot {
	debtID := "debt-1"
	return domain.Snapshot{
		Transactions: []domain.Transaction{
			{TransactionID: "t1", Amount: decimal.NewFromInt(5000), Direction: domain.Revenue, Date: onDay(2024, time.February, 5), Counterparty: "Acme"},
			{TransactionID: "t2", Amount: decimal.NewFromInt(1200), Direction: domain.Expense, Date: onDay(2024, time.February, 20), Counterparty: "Supplier Co", Category: "Supplies"},
			{TransactionID: "t3", Amount: decimal.NewFromInt(1000), Direction: domain.Expense, Date: onDay(2024, time.March, 2), DebtPaymentForID: &debtID, Category: domain.LoanPaymentCategory},
			{TransactionID: "t4", Amount: decimal.NewFromInt(300), Direction: domain.Revenue, Date: onDay(2024, time.March, 10), Counterparty: "acme labs"},
		},
		Accounts: []domain.PayableReceivable{
			{AccountID: "a1", Amount: decimal.NewFromInt(400), Direction: domain.Payable, Status: domain.Pending, DueDate: onDay(2024, time.March, 20)},
			{AccountID: "a2", Amount: decimal.NewFromInt(250), Direction: domain.Receivable, Status: domain.Pending, DueDate: onDay(2024, time.March, 18)},
			{AccountID: "a3", Amount: decimal.NewFromInt(100), Direction: domain.Payable, Status: domain.Pending, DueDate: onDay(2024, time.April, 1)},
		},
		Investments: []domain.Investment{
			{InvestmentID: "i1", Quantity: decimal.NewFromInt(10), PurchasePrice: decimal.NewFromInt(100), CurrentPrice: decimal.NewFromInt(150)},
		},
		Debts: []domain.Debt{
			{DebtID: "debt-1", TotalAmount: decimal.NewFromInt(4000)},
		},
	}
}

func (suite *LedgerServiceTestSuite) TestOverview_DerivesFromSnapshot() {
	snap := ledgerSnapshot()
	snap.CurrencyCode = "USD"
	suite.snapshotRepo.On("LoadSnapshot", suite.ctx, "company-1").Return(snap, nil).Once()

	state, currency, err := suite.service.Overview(suite.ctx, "company-1", dto.OverviewParams{})

	suite.Require().NoError(err)
	suite.Equal("USD", currency)
	// cash 5000-1200-1000+300 = 3100; assets 3100+1500; remaining debt 3000.
	suite.True(state.Summary.CashBalance.Equal(decimal.NewFromInt(3100)))
	suite.True(state.Summary.TotalAssets.Equal(decimal.NewFromInt(4600)))
	suite.True(state.Summary.NetWorth.Equal(decimal.NewFromInt(1600)))
	// Current month is March.
	suite.True(state.Period.Revenue.Equal(decimal.NewFromInt(300)))
	suite.True(state.Period.Expense.Equal(decimal.NewFromInt(1000)))
	suite.Len(state.UpcomingAccounts, 2)
	suite.Equal("a2", state.UpcomingAccounts[0].AccountID)
	suite.True(state.AccountTotals.PendingPayable.Equal(decimal.NewFromInt(500)))
	// Six months ending in March, oldest first.
	suite.Require().Len(state.CashFlowTrend, 6)
	suite.Equal(onDay(2023, time.October, 1), state.CashFlowTrend[0].Period.Start)
	suite.True(state.CashFlowTrend[4].Profit.Equal(decimal.NewFromInt(3800)))
	suite.True(state.CashFlowTrend[5].Profit.Equal(decimal.NewFromInt(-700)))
	suite.Require().Len(state.ExpensesByCategory, 2)
	suite.Equal("Supplies", state.ExpensesByCategory[0].Category)
	suite.Equal(domain.LoanPaymentCategory, state.ExpensesByCategory[1].Category)
	suite.snapshotRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestOverview_RoundsWithSnapshotCurrency() {
	snap := ledgerSnapshot()
	snap.CurrencyCode = "JPY"
	snap.Transactions = append(snap.Transactions, domain.Transaction{
		TransactionID: "t5", Amount: decimal.RequireFromString("0.6"), Direction: domain.Revenue, Date: onDay(2024, time.March, 11),
	})
	suite.snapshotRepo.On("LoadSnapshot", suite.ctx, "company-1").Return(snap, nil).Once()

	state, currency, err := suite.service.Overview(suite.ctx, "company-1", dto.OverviewParams{})

	suite.Require().NoError(err)
	suite.Equal("JPY", currency)
	suite.True(state.Summary.CashBalance.Equal(decimal.NewFromInt(3101)))
	suite.True(state.Period.Revenue.Equal(decimal.NewFromInt(301)))
}

func (suite *LedgerServiceTestSuite) TestOverview_PeriodOverride() {
	suite.snapshotRepo.On("LoadSnapshot", suite.ctx, "company-1").Return(ledgerSnapshot(), nil).Once()

	state, currency, err := suite.service.Overview(suite.ctx, "company-1", dto.OverviewParams{From: "2024-02-01", To: "2024-02-29"})

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultCurrencyCode, currency)
	suite.True(state.Period.Revenue.Equal(decimal.NewFromInt(5000)))
	suite.True(state.Period.Expense.Equal(decimal.NewFromInt(1200)))
	suite.True(state.Period.Profit.Equal(decimal.NewFromInt(3800)))
}

func (suite *LedgerServiceTestSuite) TestOverview_InvalidPeriod() {
	_, _, err := suite.service.Overview(suite.ctx, "company-1", dto.OverviewParams{From: "2024-03-10", To: "2024-03-01"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.snapshotRepo.AssertNotCalled(suite.T(), "LoadSnapshot", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestFinancialSummary_SnapshotError() {
	suite.snapshotRepo.On("LoadSnapshot", suite.ctx, "company-1").Return(domain.Snapshot{}, assert.AnError).Once()

	summary, err := suite.service.FinancialSummary(suite.ctx, "company-1")

	suite.Nil(summary)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *LedgerServiceTestSuite) TestCounterparties_FiltersCaseInsensitively() {
	suite.snapshotRepo.On("LoadSnapshot", suite.ctx, "company-1").Return(ledgerSnapshot(), nil).Once()

	clients, err := suite.service.Counterparties(suite.ctx, "company-1", dto.CounterpartyParams{Query: "ACME"})

	suite.Require().NoError(err)
	suite.Require().Len(clients, 2)
	suite.Equal("Acme", clients[0].Name)
	suite.Equal("acme labs", clients[1].Name)
}

func (suite *LedgerServiceTestSuite) TestAchievements() {
	suite.snapshotRepo.On("LoadSnapshot", suite.ctx, "company-1").Return(ledgerSnapshot(), nil).Once()

	achievements, err := suite.service.Achievements(suite.ctx, "company-1")

	suite.Require().NoError(err)
	unlocked := map[string]bool{}
	for _, a := range achievements {
		unlocked[a.ID] = a.Unlocked
	}
	suite.True(unlocked["first_revenue"])
	suite.True(unlocked["first_receivable"])
	// February closed with profit.
	suite.True(unlocked["profitable_month"])
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
