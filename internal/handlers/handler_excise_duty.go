package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/SscSPs/excise_register_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exciseDutyHandler handles the rate schedule and the monthly duty ledger.
type exciseDutyHandler struct {
	service portssvc.ExciseDutySvcFacade
	now     func() time.Time
}

func newExciseDutyHandler(svc portssvc.ExciseDutySvcFacade) *exciseDutyHandler {
	return &exciseDutyHandler{service: svc, now: time.Now}
}

func registerExciseDutyRoutes(rg *gin.RouterGroup, svc portssvc.ExciseDutySvcFacade) {
	h := newExciseDutyHandler(svc)

	rates := rg.Group("/duty-rates")
	{
		rates.POST("", middleware.RequireRoles(domain.RoleAdmin, domain.RoleExcise), h.createDutyRate)
		rates.GET("", h.listDutyRates)
		rates.GET("/current", h.getCurrentRate)
	}

	ledger := rg.Group("/duty-ledger")
	{
		ledger.POST("", h.createDutyLedger)
		ledger.GET("", h.listDutyLedger)
		ledger.GET("/:id", h.getDutyLedger)
		ledger.POST("/:id/payments", h.recordDutyPayment)
	}
}

// createDutyRate godoc
// @Summary Add a duty rate
// @Description Adds a schedule row. An overlapping active row for the same category is rejected. ADMIN or EXCISE only.
// @Tags duty
// @Accept json
// @Produce json
// @Param rate body dto.CreateDutyRateRequest true "Rate details"
// @Success 201 {object} domain.DutyRate
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Overlapping active rate"
// @Security BearerAuth
// @Router /duty-rates [post]
func (h *exciseDutyHandler) createDutyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDutyRateRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	rate, err := h.service.CreateDutyRate(c.Request.Context(), req, actor)
	if err != nil {
		writeError(c, logger, err, "create duty rate")
		return
	}
	c.JSON(http.StatusCreated, rate)
}

// listDutyRates godoc
// @Summary List duty rates
// @Tags duty
// @Produce json
// @Param category query string true "Category, e.g. CL"
// @Param subcategory query string true "Subcategory, e.g. 50UP"
// @Success 200 {array} domain.DutyRate
// @Security BearerAuth
// @Router /duty-rates [get]
func (h *exciseDutyHandler) listDutyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CurrentRateParams
	if !bindQuery(c, logger, &params) {
		return
	}

	rates, err := h.service.ListDutyRates(c.Request.Context(), params.Category, params.Subcategory)
	if err != nil {
		writeError(c, logger, err, "list duty rates")
		return
	}
	c.JSON(http.StatusOK, rates)
}

// getCurrentRate godoc
// @Summary Get the rate in effect
// @Tags duty
// @Produce json
// @Param category query string true "Category, e.g. CL"
// @Param subcategory query string true "Subcategory, e.g. 50UP"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.DutyRate
// @Failure 422 {object} dto.ErrorResponse "No rate in effect"
// @Security BearerAuth
// @Router /duty-rates/current [get]
func (h *exciseDutyHandler) getCurrentRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CurrentRateParams
	if !bindQuery(c, logger, &params) {
		return
	}
	date := h.now().UTC()
	if params.Date != "" {
		var ok bool
		if date, ok = parseDateParam(c, logger, "date", params.Date); !ok {
			return
		}
	}

	rate, err := h.service.GetCurrentRate(c.Request.Context(), params.Category, params.Subcategory, date)
	if err != nil {
		writeError(c, logger, err, "resolve duty rate")
		return
	}
	c.JSON(http.StatusOK, rate)
}

// createDutyLedger godoc
// @Summary Open a month in the duty ledger
// @Description Applies the rate in effect at the start of the month and carries the previous month's closing balance
// @Tags duty
// @Accept json
// @Produce json
// @Param entry body dto.CreateDutyLedgerRequest true "Month and units issued"
// @Success 201 {object} domain.DutyLedgerEntry
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Month already opened"
// @Failure 422 {object} dto.ErrorResponse "No rate in effect"
// @Security BearerAuth
// @Router /duty-ledger [post]
func (h *exciseDutyHandler) createDutyLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDutyLedgerRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.service.CreateDutyLedger(c.Request.Context(), req, actor)
	if err != nil {
		writeError(c, logger, err, "create duty ledger entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// recordDutyPayment godoc
// @Summary Record a duty payment
// @Description Stores a challan and recomputes the ledger balance and status
// @Tags duty
// @Accept json
// @Produce json
// @Param id path string true "Ledger entry ID"
// @Param payment body dto.RecordDutyPaymentRequest true "Challan"
// @Success 201 {object} dto.DutyLedgerResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Ledger entry not found"
// @Failure 409 {object} dto.ErrorResponse "Challan already recorded"
// @Security BearerAuth
// @Router /duty-ledger/{id}/payments [post]
func (h *exciseDutyHandler) recordDutyPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))
	var req dto.RecordDutyPaymentRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	resp, err := h.service.RecordDutyPayment(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		writeError(c, logger, err, "record duty payment")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// getDutyLedger godoc
// @Summary Get a duty ledger entry with its payments
// @Tags duty
// @Produce json
// @Param id path string true "Ledger entry ID"
// @Success 200 {object} dto.DutyLedgerResponse
// @Failure 404 {object} dto.ErrorResponse "Ledger entry not found"
// @Security BearerAuth
// @Router /duty-ledger/{id} [get]
func (h *exciseDutyHandler) getDutyLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))

	resp, err := h.service.GetDutyLedger(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, logger, err, "retrieve duty ledger entry")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listDutyLedger godoc
// @Summary List duty ledger months
// @Tags duty
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListDutyLedgerResponse
// @Security BearerAuth
// @Router /duty-ledger [get]
func (h *exciseDutyHandler) listDutyLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, logger, &params) {
		return
	}

	resp, err := h.service.ListDutyLedger(c.Request.Context(), params)
	if err != nil {
		writeError(c, logger, err, "list duty ledger")
		return
	}
	c.JSON(http.StatusOK, resp)
}
