package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investmentHandler handles HTTP requests related to investments.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

func registerInvestmentRoutes(rg *gin.RouterGroup, is portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(is)

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
		investments.GET("/:id", h.getInvestment)
		investments.PUT("/:id", h.updateInvestment)
		investments.DELETE("/:id", h.deleteInvestment)
	}
}

// createInvestment godoc
// @Summary Register an investment
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create investment"
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CreateInvestmentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	valued, err := h.investmentService.CreateInvestment(c.Request.Context(), companyID, req)
	if err != nil {
		respondWithError(c, logger, err, "create investment")
		return
	}

	logger.Info("Investment created successfully", slog.String("investment_id", valued.InvestmentID))
	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(valued))
}

// listInvestments godoc
// @Summary List investments
// @Description Lists holdings with purchase value, current value and performance, plus the portfolio totals.
// @Tags investments
// @Produce  json
// @Success 200 {object} dto.ListInvestmentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list investments"
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	valued, portfolio, err := h.investmentService.ListInvestments(c.Request.Context(), companyID)
	if err != nil {
		respondWithError(c, logger, err, "list investments")
		return
	}

	c.JSON(http.StatusOK, dto.ListInvestmentsResponse{
		Investments: dto.ToInvestmentResponses(valued),
		Portfolio:   portfolio,
	})
}

// getInvestment godoc
// @Summary Get an investment by ID
// @Tags investments
// @Produce  json
// @Param   id path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve investment"
// @Security BearerAuth
// @Router /investments/{id} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	investmentID := c.Param("id")

	valued, err := h.investmentService.GetInvestmentByID(c.Request.Context(), companyID, investmentID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("investment_id", investmentID)), err, "retrieve investment")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(valued))
}

// updateInvestment godoc
// @Summary Update an investment
// @Description Updates holding fields. Setting currentPrice records a market move.
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   id path string true "Investment ID"
// @Param   investment body dto.UpdateInvestmentRequest true "Fields to update"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to update investment"
// @Security BearerAuth
// @Router /investments/{id} [put]
func (h *investmentHandler) updateInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	investmentID := c.Param("id")

	var req dto.UpdateInvestmentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	valued, err := h.investmentService.UpdateInvestment(c.Request.Context(), companyID, investmentID, req)
	if err != nil {
		respondWithError(c, logger.With(slog.String("investment_id", investmentID)), err, "update investment")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(valued))
}

// deleteInvestment godoc
// @Summary Delete an investment
// @Tags investments
// @Param   id path string true "Investment ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to delete investment"
// @Security BearerAuth
// @Router /investments/{id} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	investmentID := c.Param("id")

	if err := h.investmentService.DeleteInvestment(c.Request.Context(), companyID, investmentID); err != nil {
		respondWithError(c, logger.With(slog.String("investment_id", investmentID)), err, "delete investment")
		return
	}

	c.Status(http.StatusNoContent)
}
