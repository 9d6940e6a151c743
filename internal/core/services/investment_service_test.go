package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/core/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvestmentServiceTestSuite struct {
	suite.Suite
	repo    *MockInvestmentRepository
	service portssvc.InvestmentSvcFacade
	ctx     context.Context
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.repo = new(MockInvestmentRepository)
	suite.service = services.NewInvestmentService(suite.repo,
		services.WithClock(fixedClock), services.WithLocation(testLocation))
	suite.ctx = context.Background()
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_ReturnsValuation() {
	req := dto.CreateInvestmentRequest{
		Name:          "ACME3",
		Type:          "Stocks",
		Quantity:      decimal.NewFromInt(10),
		PurchasePrice: decimal.NewFromInt(100),
		CurrentPrice:  decimal.NewFromInt(120),
		PurchaseDate:  "2024-01-15",
	}
	suite.repo.On("SaveInvestment", suite.ctx, mock.AnythingOfType("domain.Investment")).Return(nil).Once()

	valued, err := suite.service.CreateInvestment(suite.ctx, "company-1", req)

	suite.Require().NoError(err)
	suite.NotEmpty(valued.InvestmentID)
	suite.True(valued.PurchaseValue.Equal(decimal.NewFromInt(1000)))
	suite.True(valued.CurrentValue.Equal(decimal.NewFromInt(1200)))
	suite.True(valued.Performance.Equal(decimal.NewFromInt(20)), "got %s", valued.Performance)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_RejectsNegativeQuantity() {
	req := dto.CreateInvestmentRequest{
		Name:          "Short",
		Quantity:      decimal.NewFromInt(-1),
		PurchasePrice: decimal.NewFromInt(100),
		CurrentPrice:  decimal.NewFromInt(100),
		PurchaseDate:  "2024-01-15",
	}

	_, err := suite.service.CreateInvestment(suite.ctx, "company-1", req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvestmentServiceTestSuite) TestListInvestments_SummarizesPortfolio() {
	investments := []domain.Investment{
		{InvestmentID: "i1", Name: "A", Quantity: decimal.NewFromInt(10), PurchasePrice: decimal.NewFromInt(100), CurrentPrice: decimal.NewFromInt(120)},
		{InvestmentID: "i2", Name: "B", Quantity: decimal.NewFromInt(5), PurchasePrice: decimal.NewFromInt(200), CurrentPrice: decimal.NewFromInt(160)},
	}
	suite.repo.On("ListInvestments", suite.ctx, "company-1").Return(investments, nil).Once()

	valued, portfolio, err := suite.service.ListInvestments(suite.ctx, "company-1")

	suite.Require().NoError(err)
	suite.Len(valued, 2)
	suite.True(portfolio.TotalInvested.Equal(decimal.NewFromInt(2000)))
	suite.True(portfolio.TotalCurrentValue.Equal(decimal.NewFromInt(2000)))
	suite.True(portfolio.Performance.IsZero())
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestment_RecordsNewPrice() {
	existing := &domain.Investment{
		InvestmentID:  "i1",
		CompanyID:     "company-1",
		Name:          "A",
		Quantity:      decimal.NewFromInt(10),
		PurchasePrice: decimal.NewFromInt(100),
		CurrentPrice:  decimal.NewFromInt(100),
	}
	price := decimal.NewFromInt(90)
	suite.repo.On("FindInvestmentByID", suite.ctx, "company-1", "i1").Return(existing, nil).Once()
	suite.repo.On("UpdateInvestment", suite.ctx, mock.MatchedBy(func(inv domain.Investment) bool {
		return inv.CurrentPrice.Equal(price)
	})).Return(nil).Once()

	valued, err := suite.service.UpdateInvestment(suite.ctx, "company-1", "i1", dto.UpdateInvestmentRequest{CurrentPrice: &price})

	suite.Require().NoError(err)
	suite.True(valued.CurrentValue.Equal(decimal.NewFromInt(900)))
	suite.True(valued.Performance.Equal(decimal.NewFromInt(-10)))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestGetInvestmentByID_NotFound() {
	suite.repo.On("FindInvestmentByID", suite.ctx, "company-1", "nope").Return(nil, apperrors.ErrNotFound).Once()

	valued, err := suite.service.GetInvestmentByID(suite.ctx, "company-1", "nope")

	suite.Nil(valued)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestInvestmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
