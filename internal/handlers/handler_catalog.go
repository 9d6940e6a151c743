package handlers

import (
	"net/http"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// getCatalog godoc
// @Summary List recommended labels
// @Description Categories, payment methods, recurrences, investment and debt types accepted by the API.
// @Tags catalog
// @Produce  json
// @Success 200 {object} dto.CatalogResponse
// @Security BearerAuth
// @Router /catalog [get]
func getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CatalogResponse{
		ExpenseCategories: domain.ExpenseCategories,
		IncomeCategories:  domain.IncomeCategories,
		PaymentMethods:    domain.PaymentMethods,
		Recurrences:       domain.Recurrences,
		InvestmentTypes:   domain.InvestmentTypes,
		DebtTypes:         domain.DebtTypes,
		Currencies:        domain.SupportedCurrencies,
	})
}
