package dto

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// CreateCompanyRequest sets up the company profile for the authenticated company.
type CreateCompanyRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,oneof=BRL USD EUR"`
}

// UpdateCompanyRequest defines the profile fields that may be changed.
type UpdateCompanyRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=255"`
	CurrencyCode *string `json:"currencyCode" binding:"omitempty,oneof=BRL USD EUR"`
}

// CompanyResponse defines the data returned for the company profile.
type CompanyResponse struct {
	CompanyID     string    `json:"companyID"`
	Name          string    `json:"name"`
	CurrencyCode  string    `json:"currencyCode"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		CurrencyCode:  c.CurrencyCode,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}
