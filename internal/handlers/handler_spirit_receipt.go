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

// spiritReceiptHandler handles HTTP requests for the Reg-76 register.
type spiritReceiptHandler struct {
	service portssvc.SpiritReceiptSvcFacade
}

func newSpiritReceiptHandler(svc portssvc.SpiritReceiptSvcFacade) *spiritReceiptHandler {
	return &spiritReceiptHandler{service: svc}
}

// registerSpiritReceiptRoutes registers the Reg-76 routes.
func registerSpiritReceiptRoutes(rg *gin.RouterGroup, svc portssvc.SpiritReceiptSvcFacade) {
	h := newSpiritReceiptHandler(svc)

	receipts := rg.Group("/spirit-receipts")
	{
		receipts.POST("", h.createSpiritReceipt)
		receipts.GET("", h.listSpiritReceipts)
		receipts.GET("/:id", h.getSpiritReceipt)
		receipts.PATCH("/:id", middleware.RequireRoles(domain.RoleAdmin), h.amendSpiritReceipt)
	}
}

// createSpiritReceipt godoc
// @Summary Record a spirit receipt
// @Description Records a Reg-76 tanker receipt and derives mass, BL, AL and transit wastage
// @Tags reg76
// @Accept json
// @Produce json
// @Param receipt body dto.CreateSpiritReceiptRequest true "Receipt measurements"
// @Success 201 {object} domain.SpiritReceiptEntry
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to record spirit receipt"
// @Security BearerAuth
// @Router /spirit-receipts [post]
func (h *spiritReceiptHandler) createSpiritReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSpiritReceiptRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.service.CreateSpiritReceipt(c.Request.Context(), req, actor)
	if err != nil {
		writeError(c, logger, err, "record spirit receipt")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// amendSpiritReceipt godoc
// @Summary Amend a spirit receipt
// @Description Patches a Reg-76 receipt and recomputes every derived field. ADMIN only.
// @Tags reg76
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param amendment body dto.AmendSpiritReceiptRequest true "Changed fields and reason"
// @Success 200 {object} domain.SpiritReceiptEntry
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Receipt not found"
// @Security BearerAuth
// @Router /spirit-receipts/{id} [patch]
func (h *spiritReceiptHandler) amendSpiritReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))
	var req dto.AmendSpiritReceiptRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.service.AmendSpiritReceipt(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		writeError(c, logger, err, "amend spirit receipt")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// getSpiritReceipt godoc
// @Summary Get a spirit receipt
// @Tags reg76
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} domain.SpiritReceiptEntry
// @Failure 404 {object} dto.ErrorResponse "Receipt not found"
// @Security BearerAuth
// @Router /spirit-receipts/{id} [get]
func (h *spiritReceiptHandler) getSpiritReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))

	entry, err := h.service.GetSpiritReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, logger, err, "retrieve spirit receipt")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// listSpiritReceipts godoc
// @Summary List spirit receipts
// @Description Pages through Reg-76 receipts, newest first
// @Tags reg76
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param from query string false "First receipt date (YYYY-MM-DD)"
// @Param to query string false "Last receipt date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListSpiritReceiptsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /spirit-receipts [get]
func (h *spiritReceiptHandler) listSpiritReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, logger, &params) {
		return
	}

	resp, err := h.service.ListSpiritReceipts(c.Request.Context(), params)
	if err != nil {
		writeError(c, logger, err, "list spirit receipts")
		return
	}
	c.JSON(http.StatusOK, resp)
}
