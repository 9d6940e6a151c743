package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizledger/internal/core/domain"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the derived financial state. Every request triggers a
// full recompute from the stored collections.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ls}

	rg.GET("/overview", h.getOverview)
	rg.GET("/summary", h.getFinancialSummary)
	rg.GET("/counterparties", h.listCounterparties)
	rg.GET("/achievements", h.listAchievements)
}

// getOverview godoc
// @Summary Get the dashboard overview
// @Description Returns net worth, period totals (current month unless from/to given), the six-month cash-flow trend, expenses by category, portfolio, amortized debts, client rollup, achievements and upcoming accounts. Amounts are rounded to the company currency.
// @Tags ledger
// @Produce  json
// @Param   from query string false "Period start (YYYY-MM-DD)"
// @Param   to query string false "Period end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.OverviewResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute overview"
// @Security BearerAuth
// @Router /overview [get]
func (h *ledgerHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.OverviewParams
	if !bindQuery(c, logger, &params) {
		return
	}

	state, currency, err := h.ledgerService.Overview(c.Request.Context(), companyID, params)
	if err != nil {
		respondWithError(c, logger, err, "compute overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(state, currency))
}

// getFinancialSummary godoc
// @Summary Get the net worth composition
// @Tags ledger
// @Produce  json
// @Success 200 {object} domain.FinancialSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute financial summary"
// @Security BearerAuth
// @Router /summary [get]
func (h *ledgerHandler) getFinancialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	summary, err := h.ledgerService.FinancialSummary(c.Request.Context(), companyID)
	if err != nil {
		respondWithError(c, logger, err, "compute financial summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// listCounterparties godoc
// @Summary List clients and suppliers
// @Description Rolls up transactions per client/supplier, ordered by total volume. q filters names case-insensitively.
// @Tags ledger
// @Produce  json
// @Param   q query string false "Name search"
// @Success 200 {object} dto.ListCounterpartiesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list counterparties"
// @Security BearerAuth
// @Router /counterparties [get]
func (h *ledgerHandler) listCounterparties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.CounterpartyParams
	if !bindQuery(c, logger, &params) {
		return
	}

	clients, err := h.ledgerService.Counterparties(c.Request.Context(), companyID, params)
	if err != nil {
		respondWithError(c, logger, err, "list counterparties")
		return
	}

	c.JSON(http.StatusOK, dto.ListCounterpartiesResponse{Clients: clients})
}

// listAchievements godoc
// @Summary List achievements
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.ListAchievementsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to evaluate achievements"
// @Security BearerAuth
// @Router /achievements [get]
func (h *ledgerHandler) listAchievements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := companyFromContext(c, logger)
	if !ok {
		return
	}

	achievements, err := h.ledgerService.Achievements(c.Request.Context(), companyID)
	if err != nil {
		respondWithError(c, logger, err, "evaluate achievements")
		return
	}

	unlocked := countUnlocked(achievements)
	logger.Debug("Achievements evaluated", slog.Int("unlocked", unlocked))
	c.JSON(http.StatusOK, dto.ListAchievementsResponse{Achievements: achievements, Unlocked: unlocked})
}

func countUnlocked(achievements []domain.Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}
