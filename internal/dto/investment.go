package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the data needed to register a holding.
type CreateInvestmentRequest struct {
	Name          string          `json:"name" binding:"required,max=255"`
	Type          string          `json:"type" binding:"omitempty,investmenttype"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required,nonnegativedecimal"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" binding:"required,nonnegativedecimal"`
	CurrentPrice  decimal.Decimal `json:"currentPrice" binding:"required,nonnegativedecimal"`
	PurchaseDate  string          `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
}

// UpdateInvestmentRequest defines the fields that may be changed on a holding.
// Updating CurrentPrice is how market moves are recorded.
type UpdateInvestmentRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Type          *string          `json:"type" binding:"omitempty,investmenttype"`
	Quantity      *decimal.Decimal `json:"quantity" binding:"omitempty,nonnegativedecimal"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice" binding:"omitempty,nonnegativedecimal"`
	CurrentPrice  *decimal.Decimal `json:"currentPrice" binding:"omitempty,nonnegativedecimal"`
	PurchaseDate  *string          `json:"purchaseDate" binding:"omitempty,datetime=2006-01-02"`
}

// InvestmentResponse is a holding annotated with its valuation.
type InvestmentResponse struct {
	InvestmentID  string          `json:"investmentID"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	PurchaseValue decimal.Decimal `json:"purchaseValue"`
	CurrentValue  decimal.Decimal `json:"currentValue"`
	Performance   decimal.Decimal `json:"performance"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListInvestmentsResponse wraps the valued holdings and the portfolio summary.
type ListInvestmentsResponse struct {
	Investments []InvestmentResponse    `json:"investments"`
	Portfolio   domain.PortfolioSummary `json:"portfolio"`
}

// ToInvestmentResponse converts a domain.ValuedInvestment to InvestmentResponse DTO
func ToInvestmentResponse(v *domain.ValuedInvestment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:  v.InvestmentID,
		Name:          v.Name,
		Type:          v.Type,
		Quantity:      v.Quantity,
		PurchasePrice: v.PurchasePrice,
		CurrentPrice:  v.CurrentPrice,
		PurchaseDate:  v.PurchaseDate,
		PurchaseValue: v.PurchaseValue,
		CurrentValue:  v.CurrentValue,
		Performance:   v.Performance.Round(2),
		CreatedAt:     v.CreatedAt,
		LastUpdatedAt: v.LastUpdatedAt,
	}
}

// ToInvestmentResponses converts a slice of domain.ValuedInvestment.
func ToInvestmentResponses(valued []domain.ValuedInvestment) []InvestmentResponse {
	res := make([]InvestmentResponse, len(valued))
	for i := range valued {
		res[i] = ToInvestmentResponse(&valued[i])
	}
	return res
}
