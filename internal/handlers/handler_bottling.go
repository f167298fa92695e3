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

// bottlingHandler handles HTTP requests for the Reg-A production lifecycle.
type bottlingHandler struct {
	service portssvc.BottlingSvcFacade
}

func newBottlingHandler(svc portssvc.BottlingSvcFacade) *bottlingHandler {
	return &bottlingHandler{service: svc}
}

// registerBottlingRoutes registers the Reg-A routes.
func registerBottlingRoutes(rg *gin.RouterGroup, svc portssvc.BottlingSvcFacade) {
	h := newBottlingHandler(svc)

	sessions := rg.Group("/bottling")
	{
		sessions.POST("", h.createBottling)
		sessions.GET("", h.listBottling)
		sessions.GET("/:id", h.getBottling)
		sessions.POST("/:id/declare", h.declareBottling)
		sessions.POST("/:id/meter", h.linkMeterReading)
		sessions.POST("/:id/finalize", middleware.RequireRoles(domain.RoleAdmin, domain.RoleExcise), h.finalizeBottling)
	}
}

// createBottling godoc
// @Summary Plan a bottling session
// @Tags rega
// @Accept json
// @Produce json
// @Param session body dto.CreateBottlingRequest true "Batch and session"
// @Success 201 {object} domain.BottlingProductionEntry
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Session already exists"
// @Security BearerAuth
// @Router /bottling [post]
func (h *bottlingHandler) createBottling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBottlingRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.service.CreateBottling(c.Request.Context(), req, actor)
	if err != nil {
		writeError(c, logger, err, "create bottling session")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// declareBottling godoc
// @Summary Declare bottle counts
// @Description Records bottle counts and strength, moving the session to ACTIVE
// @Tags rega
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param declaration body dto.DeclareBottlingRequest true "Bottle counts by size (ml)"
// @Success 200 {object} domain.BottlingProductionEntry
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 422 {object} dto.ErrorResponse "Session already completed"
// @Security BearerAuth
// @Router /bottling/{id}/declare [post]
func (h *bottlingHandler) declareBottling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))
	var req dto.DeclareBottlingRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.service.DeclareBottling(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		writeError(c, logger, err, "declare bottling production")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// linkMeterReading godoc
// @Summary Link the MFM reading
// @Description Stores the supplied MFM total, or sums the batch's Reg-74 issue readings when none is given
// @Tags rega
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param reading body dto.LinkMeterRequest false "Manual MFM total"
// @Success 200 {object} domain.BottlingProductionEntry
// @Failure 422 {object} dto.ErrorResponse "No meter readings for the batch"
// @Security BearerAuth
// @Router /bottling/{id}/meter [post]
func (h *bottlingHandler) linkMeterReading(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))
	var req dto.LinkMeterRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.service.LinkMeterReading(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		writeError(c, logger, err, "link meter reading")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// finalizeBottling godoc
// @Summary Finalize a bottling session
// @Description Computes production wastage against the MFM reading and completes the session. ADMIN or EXCISE only.
// @Tags rega
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} domain.BottlingProductionEntry
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 422 {object} dto.ErrorResponse "Session not ready or already completed"
// @Security BearerAuth
// @Router /bottling/{id}/finalize [post]
func (h *bottlingHandler) finalizeBottling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.service.FinalizeBottling(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		writeError(c, logger, err, "finalize bottling session")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// getBottling godoc
// @Summary Get a bottling session
// @Tags rega
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} domain.BottlingProductionEntry
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /bottling/{id} [get]
func (h *bottlingHandler) getBottling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))

	entry, err := h.service.GetBottling(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, logger, err, "retrieve bottling session")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// listBottling godoc
// @Summary List bottling sessions
// @Tags rega
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param from query string false "First production date (YYYY-MM-DD)"
// @Param to query string false "Last production date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListBottlingResponse
// @Security BearerAuth
// @Router /bottling [get]
func (h *bottlingHandler) listBottling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, logger, &params) {
		return
	}

	resp, err := h.service.ListBottling(c.Request.Context(), params)
	if err != nil {
		writeError(c, logger, err, "list bottling sessions")
		return
	}
	c.JSON(http.StatusOK, resp)
}
