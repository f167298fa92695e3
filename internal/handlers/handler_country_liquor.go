package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/excise_register_app/internal/core/ports/services"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/SscSPs/excise_register_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// countryLiquorHandler handles HTTP requests for the Reg-B register.
type countryLiquorHandler struct {
	service portssvc.CountryLiquorSvcFacade
}

func newCountryLiquorHandler(svc portssvc.CountryLiquorSvcFacade) *countryLiquorHandler {
	return &countryLiquorHandler{service: svc}
}

func registerCountryLiquorRoutes(rg *gin.RouterGroup, svc portssvc.CountryLiquorSvcFacade) {
	h := newCountryLiquorHandler(svc)

	issues := rg.Group("/country-liquor-issues")
	{
		issues.POST("", h.createCountryLiquorIssue)
		issues.GET("", h.listCountryLiquorIssues)
		issues.GET("/:id", h.getCountryLiquorIssue)
	}
}

// createCountryLiquorIssue godoc
// @Summary Record a Reg-B day
// @Description Totals the opening, receipt, issue and wastage sections and checks the balance.
// @Description Section counts are keyed by register column, e.g. {"count50_750": 100}.
// @Tags regb
// @Accept json
// @Produce json
// @Param entry body dto.CreateCountryLiquorIssueRequest true "Section counts"
// @Success 201 {object} domain.CountryLiquorIssueEntry
// @Failure 400 {object} dto.ErrorResponse "Validation error or balance violation"
// @Failure 422 {object} dto.ErrorResponse "Source Reg-A session not completed"
// @Security BearerAuth
// @Router /country-liquor-issues [post]
func (h *countryLiquorHandler) createCountryLiquorIssue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCountryLiquorIssueRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.service.CreateCountryLiquorIssue(c.Request.Context(), req, actor)
	if err != nil {
		writeError(c, logger, err, "record country liquor issue")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// getCountryLiquorIssue godoc
// @Summary Get a Reg-B day
// @Tags regb
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} domain.CountryLiquorIssueEntry
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /country-liquor-issues/{id} [get]
func (h *countryLiquorHandler) getCountryLiquorIssue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))

	entry, err := h.service.GetCountryLiquorIssue(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, logger, err, "retrieve country liquor issue")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// listCountryLiquorIssues godoc
// @Summary List Reg-B days
// @Tags regb
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param from query string false "First entry date (YYYY-MM-DD)"
// @Param to query string false "Last entry date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListCountryLiquorIssuesResponse
// @Security BearerAuth
// @Router /country-liquor-issues [get]
func (h *countryLiquorHandler) listCountryLiquorIssues(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, logger, &params) {
		return
	}

	resp, err := h.service.ListCountryLiquorIssues(c.Request.Context(), params)
	if err != nil {
		writeError(c, logger, err, "list country liquor issues")
		return
	}
	c.JSON(http.StatusOK, resp)
}
