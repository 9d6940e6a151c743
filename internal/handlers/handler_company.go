package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func registerCompanyRoutes(rg *gin.RouterGroup, cs portssvc.CompanySvcFacade) {
	h := &companyHandler{companyService: cs}

	company := rg.Group("/company")
	{
		company.GET("", h.getCompany)
		company.POST("", h.createCompany)
		company.PUT("", h.updateCompany)
	}
}

// getCompany godoc
// @Summary Get the company profile
// @Tags company
// @Produce  json
// @Success 200 {object} dto.CompanyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not created yet"
// @Failure 500 {object} map[string]string "Failed to retrieve company"
// @Security BearerAuth
// @Router /company [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		respondWithError(c, logger, err, "retrieve company")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// createCompany godoc
// @Summary Create the company profile
// @Description Sets the name and ledger currency of the authenticated company. Currency defaults to BRL.
// @Tags company
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company profile"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Profile already exists"
// @Failure 500 {object} map[string]string "Failed to create company"
// @Security BearerAuth
// @Router /company [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), companyID, req)
	if err != nil {
		respondWithError(c, logger, err, "create company")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// updateCompany godoc
// @Summary Update the company profile
// @Tags company
// @Accept  json
// @Produce  json
// @Param   company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not created yet"
// @Failure 500 {object} map[string]string "Failed to update company"
// @Security BearerAuth
// @Router /company [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), companyID, req)
	if err != nil {
		respondWithError(c, logger, err, "update company")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}
