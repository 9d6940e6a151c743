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

type TransactionServiceTestSuite struct {
	suite.Suite
	txnRepo  *MockTransactionRepository
	debtRepo *MockDebtRepository
	service  portssvc.TransactionSvcFacade
	ctx      context.Context
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.debtRepo = new(MockDebtRepository)
	suite.service = services.NewTransactionService(suite.txnRepo, suite.debtRepo,
		services.WithClock(fixedClock), services.WithLocation(testLocation))
	suite.ctx = context.Background()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	req := dto.CreateTransactionRequest{
		Amount:           decimal.RequireFromString("1500.50"),
		Date:             "2024-03-10",
		Category:         "Services Rendered",
		Description:      "  Website project  ",
		Type:             domain.Revenue,
		PaymentMethod:    domain.PaymentPIX,
		ClientOrSupplier: "Acme",
	}

	suite.txnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.CompanyID == "company-1" &&
			t.Amount.Equal(req.Amount) &&
			t.Date.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, testLocation)) &&
			t.Recurrence == domain.RecurrenceNone &&
			t.DebtPaymentForID == nil
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, "company-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal("Website project", txn.Description)
	suite.Equal(domain.Revenue, txn.Direction)
	suite.Equal(fixedNow, txn.CreatedAt)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_LinksExistingDebt() {
	debtID := "debt-1"
	req := dto.CreateTransactionRequest{
		Amount:           decimal.NewFromInt(800),
		Date:             "2024-03-01",
		Description:      "Installment",
		Type:             domain.Expense,
		DebtPaymentForID: &debtID,
	}

	suite.debtRepo.On("FindDebtByID", suite.ctx, "company-1", debtID).Return(&domain.Debt{DebtID: debtID}, nil).Once()
	suite.txnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.DebtPaymentForID != nil && *t.DebtPaymentForID == debtID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, "company-1", req)

	suite.Require().NoError(err)
	suite.True(txn.IsDebtPayment())
	suite.debtRepo.AssertExpectations(suite.T())
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownDebtIsValidationError() {
	debtID := "missing"
	req := dto.CreateTransactionRequest{
		Amount:           decimal.NewFromInt(800),
		Date:             "2024-03-01",
		Description:      "Installment",
		Type:             domain.Expense,
		DebtPaymentForID: &debtID,
	}

	suite.debtRepo.On("FindDebtByID", suite.ctx, "company-1", debtID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, "company-1", req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	req := dto.CreateTransactionRequest{
		Amount:      decimal.Zero,
		Date:        "2024-03-01",
		Description: "Nothing",
		Type:        domain.Expense,
	}

	txn, err := suite.service.CreateTransaction(suite.ctx, "company-1", req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidDate() {
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(10),
		Date:        "2024-02-30",
		Description: "Bad date",
		Type:        domain.Expense,
	}

	_, err := suite.service.CreateTransaction(suite.ctx, "company-1", req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SaveError() {
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(10),
		Date:        "2024-03-01",
		Description: "Coffee",
		Type:        domain.Expense,
	}
	suite.txnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).Return(assert.AnError).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, "company-1", req)

	suite.Nil(txn)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BuildsInclusiveFilter() {
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, testLocation)
	to := time.Date(2024, time.April, 1, 0, 0, 0, 0, testLocation)
	expected := []domain.Transaction{{TransactionID: "t1"}}

	suite.txnRepo.On("ListTransactions", suite.ctx, "company-1", mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Direction == domain.Expense &&
			f.Category == "Rent" &&
			f.From != nil && f.From.Equal(from) &&
			f.To != nil && f.To.Equal(to)
	})).Return(expected, nil).Once()

	txns, err := suite.service.ListTransactions(suite.ctx, "company-1", dto.ListTransactionsParams{
		Type:     "expense",
		Category: "Rent",
		From:     "2024-03-01",
		To:       "2024-03-31",
	})

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvertedRange() {
	_, err := suite.service.ListTransactions(suite.ctx, "company-1", dto.ListTransactionsParams{
		From: "2024-04-01",
		To:   "2024-03-01",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_PartialUpdate() {
	existing := &domain.Transaction{
		TransactionID: "t1",
		CompanyID:     "company-1",
		Amount:        decimal.NewFromInt(100),
		Date:          time.Date(2024, time.March, 1, 0, 0, 0, 0, testLocation),
		Description:   "Old",
		Direction:     domain.Expense,
	}
	newAmount := decimal.NewFromInt(250)
	newNotes := "corrected"

	suite.txnRepo.On("FindTransactionByID", suite.ctx, "company-1", "t1").Return(existing, nil).Once()
	suite.txnRepo.On("UpdateTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Amount.Equal(newAmount) && t.Description == "Old" && t.Notes == newNotes
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(suite.ctx, "company-1", "t1", dto.UpdateTransactionRequest{
		Amount: &newAmount,
		Notes:  &newNotes,
	})

	suite.Require().NoError(err)
	suite.Equal(fixedNow, txn.LastUpdatedAt)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	suite.txnRepo.On("FindTransactionByID", suite.ctx, "company-1", "nope").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.UpdateTransaction(suite.ctx, "company-1", "nope", dto.UpdateTransactionRequest{})

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	suite.txnRepo.On("DeleteTransaction", suite.ctx, "company-1", "t1").Return(nil).Once()
	suite.txnRepo.On("DeleteTransaction", suite.ctx, "company-1", "t2").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteTransaction(suite.ctx, "company-1", "t1"))
	suite.ErrorIs(suite.service.DeleteTransaction(suite.ctx, "company-1", "t2"), apperrors.ErrNotFound)
	suite.txnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
