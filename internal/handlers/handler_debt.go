package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// debtHandler handles HTTP requests related to debts and their installments.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

func registerDebtRoutes(rg *gin.RouterGroup, ds portssvc.DebtSvcFacade) {
	h := newDebtHandler(ds)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:id", h.getDebt)
		debts.PUT("/:id", h.updateDebt)
		debts.DELETE("/:id", h.deleteDebt)
		debts.POST("/:id/payments", h.payInstallment)
	}
}

// createDebt godoc
// @Summary Register a debt
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create debt"
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CreateDebtRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), companyID, req)
	if err != nil {
		respondWithError(c, logger, err, "create debt")
		return
	}

	logger.Info("Debt created successfully", slog.String("debt_id", debt.DebtID))
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List debts
// @Description Lists debts with the amount paid so far, what remains and the paid percentage. Remaining goes negative when overpaid; the percentage stops at 100.
// @Tags debts
// @Produce  json
// @Success 200 {object} dto.ListDebtsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list debts"
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), companyID)
	if err != nil {
		respondWithError(c, logger, err, "list debts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDebtsResponse(debts))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve debt"
// @Security BearerAuth
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	debtID := c.Param("id")

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), companyID, debtID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("debt_id", debtID)), err, "retrieve debt")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// updateDebt godoc
// @Summary Update a debt
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   id path string true "Debt ID"
// @Param   debt body dto.UpdateDebtRequest true "Fields to update"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to update debt"
// @Security BearerAuth
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	debtID := c.Param("id")

	var req dto.UpdateDebtRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), companyID, debtID, req)
	if err != nil {
		respondWithError(c, logger.With(slog.String("debt_id", debtID)), err, "update debt")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// deleteDebt godoc
// @Summary Delete a debt
// @Description Deletes the debt. Installment transactions stay in the ledger and keep affecting cash.
// @Tags debts
// @Param   id path string true "Debt ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to delete debt"
// @Security BearerAuth
// @Router /debts/{id} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	debtID := c.Param("id")

	if err := h.debtService.DeleteDebt(c.Request.Context(), companyID, debtID); err != nil {
		respondWithError(c, logger.With(slog.String("debt_id", debtID)), err, "delete debt")
		return
	}

	c.Status(http.StatusNoContent)
}

// payInstallment godoc
// @Summary Pay a debt installment
// @Description Records a loan-payment expense linked to the debt. Cash decreases and the remaining amount drops by the same value.
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   id path string true "Debt ID"
// @Param   payment body dto.PayInstallmentRequest true "Installment"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to pay installment"
// @Security BearerAuth
// @Router /debts/{id}/payments [post]
func (h *debtHandler) payInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	debtID := c.Param("id")
	logger = logger.With(slog.String("debt_id", debtID))

	var req dto.PayInstallmentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	txn, err := h.debtService.PayInstallment(c.Request.Context(), companyID, debtID, req)
	if err != nil {
		respondWithError(c, logger, err, "pay installment")
		return
	}

	logger.Info("Installment paid", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
