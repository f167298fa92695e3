package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/SscSPs/excise_register_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// masterLedgerHandler handles the Reg-78 daily ledger.
type masterLedgerHandler struct {
	service portssvc.MasterLedgerSvcFacade
}

func newMasterLedgerHandler(svc portssvc.MasterLedgerSvcFacade) *masterLedgerHandler {
	return &masterLedgerHandler{service: svc}
}

func registerMasterLedgerRoutes(rg *gin.RouterGroup, svc portssvc.MasterLedgerSvcFacade) {
	h := newMasterLedgerHandler(svc)

	ledger := rg.Group("/master-ledger")
	{
		ledger.GET("", h.listMasterLedger)
		ledger.GET("/:date", h.getMasterLedger)
		ledger.POST("/:date/aggregate", h.aggregateMasterLedger)
		ledger.POST("/:date/reconcile", middleware.RequireRoles(domain.RoleAdmin, domain.RoleExcise), h.reconcileMasterLedger)
	}
}

// aggregateMasterLedger godoc
// @Summary Aggregate a Reg-78 day
// @Description Recomputes the day from Reg-76, Reg-A and Reg-74 and stores it, replacing any earlier run
// @Tags reg78
// @Produce json
// @Param date path string true "Ledger date (YYYY-MM-DD)"
// @Success 200 {object} domain.MasterLedgerEntry
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Security BearerAuth
// @Router /master-ledger/{date}/aggregate [post]
func (h *masterLedgerHandler) aggregateMasterLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("date", c.Param("date")))
	date, ok := parseDateParam(c, logger, "date", c.Param("date"))
	if !ok {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.service.AggregateMasterLedger(c.Request.Context(), date, actor)
	if err != nil {
		writeError(c, logger, err, "aggregate master ledger")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// reconcileMasterLedger godoc
// @Summary Reconcile a Reg-78 day
// @Description Records the physical stock and compares it with the calculated AL closing. ADMIN or EXCISE only.
// @Tags reg78
// @Accept json
// @Produce json
// @Param date path string true "Ledger date (YYYY-MM-DD)"
// @Param count body dto.ReconcileMasterLedgerRequest true "Physical closing stock"
// @Success 200 {object} domain.MasterLedgerEntry
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 422 {object} dto.ErrorResponse "Day not aggregated yet"
// @Security BearerAuth
// @Router /master-ledger/{date}/reconcile [post]
func (h *masterLedgerHandler) reconcileMasterLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("date", c.Param("date")))
	date, ok := parseDateParam(c, logger, "date", c.Param("date"))
	if !ok {
		return
	}
	var req dto.ReconcileMasterLedgerRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.service.ReconcileMasterLedger(c.Request.Context(), date, req, actor)
	if err != nil {
		writeError(c, logger, err, "reconcile master ledger")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// getMasterLedger godoc
// @Summary Get a Reg-78 day
// @Tags reg78
// @Produce json
// @Param date path string true "Ledger date (YYYY-MM-DD)"
// @Success 200 {object} domain.MasterLedgerEntry
// @Failure 404 {object} dto.ErrorResponse "Day not aggregated"
// @Security BearerAuth
// @Router /master-ledger/{date} [get]
func (h *masterLedgerHandler) getMasterLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("date", c.Param("date")))
	date, ok := parseDateParam(c, logger, "date", c.Param("date"))
	if !ok {
		return
	}

	entry, err := h.service.GetMasterLedger(c.Request.Context(), date)
	if err != nil {
		writeError(c, logger, err, "retrieve master ledger")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// listMasterLedger godoc
// @Summary List Reg-78 days
// @Tags reg78
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListMasterLedgerResponse
// @Security BearerAuth
// @Router /master-ledger [get]
func (h *masterLedgerHandler) listMasterLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, logger, &params) {
		return
	}

	resp, err := h.service.ListMasterLedger(c.Request.Context(), params)
	if err != nil {
		writeError(c, logger, err, "list master ledger")
		return
	}
	c.JSON(http.StatusOK, resp)
}
