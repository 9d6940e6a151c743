package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to register a liability.
type CreateDebtRequest struct {
	Name         string          `json:"name" binding:"required,max=255"`
	Type         string          `json:"type" binding:"omitempty,debttype"`
	Lender       string          `json:"lender" binding:"max=255"`
	TotalAmount  decimal.Decimal `json:"totalAmount" binding:"required,positivedecimal"`
	InterestRate decimal.Decimal `json:"interestRate" binding:"nonnegativedecimal"`
	StartDate    string          `json:"startDate" binding:"required,datetime=2006-01-02"`
}

// UpdateDebtRequest defines the fields that may be changed on a debt.
type UpdateDebtRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Type         *string          `json:"type" binding:"omitempty,debttype"`
	Lender       *string          `json:"lender" binding:"omitempty,max=255"`
	TotalAmount  *decimal.Decimal `json:"totalAmount" binding:"omitempty,positivedecimal"`
	InterestRate *decimal.Decimal `json:"interestRate" binding:"omitempty,nonnegativedecimal"`
	StartDate    *string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
}

// PayInstallmentRequest defines an installment paid towards a debt.
type PayInstallmentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	Date   string          `json:"date" binding:"omitempty,datetime=2006-01-02"` // Defaults to today
}

// DebtResponse is a debt annotated with its amortization.
type DebtResponse struct {
	DebtID          string          `json:"debtID"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Lender          string          `json:"lender,omitempty"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	StartDate       time.Time       `json:"startDate"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Progress        decimal.Decimal `json:"progress"` // Percent of the total paid, at most 100
	Overpaid        bool            `json:"overpaid"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ListDebtsResponse wraps the list of amortized debts.
type ListDebtsResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// ToDebtResponse converts a domain.AmortizedDebt to DebtResponse DTO
func ToDebtResponse(d *domain.AmortizedDebt) DebtResponse {
	return DebtResponse{
		DebtID:          d.DebtID,
		Name:            d.Name,
		Type:            d.Type,
		Lender:          d.Lender,
		TotalAmount:     d.TotalAmount,
		InterestRate:    d.InterestRate,
		StartDate:       d.StartDate,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		Progress:        d.Progress.Round(2),
		Overpaid:        d.Overpaid,
		CreatedAt:       d.CreatedAt,
		LastUpdatedAt:   d.LastUpdatedAt,
	}
}

// ToListDebtsResponse converts a slice of domain.AmortizedDebt.
func ToListDebtsResponse(debts []domain.AmortizedDebt) ListDebtsResponse {
	res := make([]DebtResponse, len(debts))
	for i := range debts {
		res[i] = ToDebtResponse(&debts[i])
	}
	return ListDebtsResponse{Debts: res}
}
