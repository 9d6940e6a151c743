package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to payables and receivables.
type accountHandler struct {
	accountService portssvc.PayableReceivableSvcFacade
}

func newAccountHandler(as portssvc.PayableReceivableSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to payables and receivables.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.PayableReceivableSvcFacade) {
	h := newAccountHandler(as)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.PATCH("/:id/status", h.toggleAccountStatus)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Register a payable or receivable
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), companyID, req)
	if err != nil {
		respondWithError(c, logger, err, "create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List payables and receivables
// @Description Lists accounts, pending first and then by due date, with pending totals for the selection.
// @Tags accounts
// @Produce  json
// @Param   type query string false "payable or receivable"
// @Param   status query string false "pending or paid"
// @Param   dueFrom query string false "First due day (YYYY-MM-DD)"
// @Param   dueTo query string false "Last due day (YYYY-MM-DD)"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if !bindQuery(c, logger, &params) {
		return
	}

	accounts, totals, err := h.accountService.ListAccounts(c.Request.Context(), companyID, params)
	if err != nil {
		respondWithError(c, logger, err, "list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.ToAccountResponses(accounts),
		Totals:   totals,
	})
}

// getAccount godoc
// @Summary Get a payable or receivable by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	accountID := c.Param("id")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), companyID, accountID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("account_id", accountID)), err, "retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update a payable or receivable
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Security BearerAuth
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	accountID := c.Param("id")

	var req dto.UpdateAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), companyID, accountID, req)
	if err != nil {
		respondWithError(c, logger.With(slog.String("account_id", accountID)), err, "update account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// toggleAccountStatus godoc
// @Summary Toggle an account between pending and paid
// @Description Flips the status. This does NOT record a transaction; cash is only affected by transactions.
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to toggle account status"
// @Security BearerAuth
// @Router /accounts/{id}/status [patch]
func (h *accountHandler) toggleAccountStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	accountID := c.Param("id")

	account, err := h.accountService.ToggleAccountStatus(c.Request.Context(), companyID, accountID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("account_id", accountID)), err, "toggle account status")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete a payable or receivable
// @Tags accounts
// @Param   id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to delete account"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}
	accountID := c.Param("id")

	if err := h.accountService.DeleteAccount(c.Request.Context(), companyID, accountID); err != nil {
		respondWithError(c, logger.With(slog.String("account_id", accountID)), err, "delete account")
		return
	}

	c.Status(http.StatusNoContent)
}
