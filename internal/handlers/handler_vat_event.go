package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/SscSPs/excise_register_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vatEventHandler handles the Reg-74 vat operations.
type vatEventHandler struct {
	service portssvc.VatEventSvcFacade
}

func newVatEventHandler(svc portssvc.VatEventSvcFacade) *vatEventHandler {
	return &vatEventHandler{service: svc}
}

func registerVatEventRoutes(rg *gin.RouterGroup, svc portssvc.VatEventSvcFacade) {
	h := newVatEventHandler(svc)

	rg.POST("/vat-events", h.recordVatEvent)
	rg.GET("/vat-events", h.listVatEvents)
	rg.GET("/vats/:vatCode/events", h.listVatHistory)
}

// recordVatEvent godoc
// @Summary Record a vat operation
// @Description Records a Reg-74 event. An ISSUE needs a QC clearance newer than the vat's last receipt.
// @Tags reg74
// @Accept json
// @Produce json
// @Param event body dto.RecordVatEventRequest true "Vat event"
// @Success 201 {object} domain.VatEvent
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 422 {object} dto.ErrorResponse "Issue without QC clearance"
// @Security BearerAuth
// @Router /vat-events [post]
func (h *vatEventHandler) recordVatEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordVatEventRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	event, err := h.service.RecordVatEvent(c.Request.Context(), req, actor)
	if err != nil {
		writeError(c, logger, err, "record vat event")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// listVatHistory godoc
// @Summary Vat history
// @Description Returns every event of one vat, oldest first
// @Tags reg74
// @Produce json
// @Param vatCode path string true "Vat code"
// @Success 200 {array} domain.VatEvent
// @Security BearerAuth
// @Router /vats/{vatCode}/events [get]
func (h *vatEventHandler) listVatHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("vat_code", c.Param("vatCode")))

	events, err := h.service.ListVatHistory(c.Request.Context(), c.Param("vatCode"))
	if err != nil {
		writeError(c, logger, err, "list vat history")
		return
	}
	c.JSON(http.StatusOK, events)
}

// listVatEvents godoc
// @Summary List vat events
// @Tags reg74
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param from query string false "First event date (YYYY-MM-DD)"
// @Param to query string false "Last event date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListVatEventsResponse
// @Security BearerAuth
// @Router /vat-events [get]
func (h *vatEventHandler) listVatEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, logger, &params) {
		return
	}

	resp, err := h.service.ListVatEvents(c.Request.Context(), params)
	if err != nil {
		writeError(c, logger, err, "list vat events")
		return
	}
	c.JSON(http.StatusOK, resp)
}
