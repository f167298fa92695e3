package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/SscSPs/excise_register_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// actorOrAbort resolves the caller, answering 401 when the auth middleware left nothing behind.
func actorOrAbort(c *gin.Context, logger *slog.Logger) (domain.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}

// bindJSON decodes and validates the body into req, answering 400 with the
// itemized field errors on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Invalid request format: " + err.Error(),
			Fields: dto.FieldErrors(err),
		})
		return false
	}
	return true
}

// bindQuery decodes and validates query parameters into req.
func bindQuery(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Invalid query parameters: " + err.Error(),
			Fields: dto.FieldErrors(err),
		})
		return false
	}
	return true
}

// parseDateParam reads a YYYY-MM-DD path or query value.
func parseDateParam(c *gin.Context, logger *slog.Logger, name, value string) (time.Time, bool) {
	date, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		logger.Warn("Invalid date parameter", slog.String("param", name), slog.String("value", value))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Invalid " + name + ": expected YYYY-MM-DD",
			Fields: []dto.FieldErrorResponse{{Field: name, Message: "expected YYYY-MM-DD"}},
		})
		return time.Time{}, false
	}
	return date, true
}

// writeError maps a service error to its HTTP status. Client errors carry the
// service message; server errors are logged and answered generically.
func writeError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: "Failed to " + action})
		return
	}

	logger.Warn("Rejected request to "+action, slog.Int("status", status), slog.String("error", err.Error()))
	resp := dto.ErrorResponse{Error: err.Error()}
	var verrs apperrors.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Fields = make([]dto.FieldErrorResponse, len(verrs))
		for i, fe := range verrs {
			resp.Fields[i] = dto.FieldErrorResponse{Field: fe.Field, Message: fe.Message}
		}
	}
	c.JSON(status, resp)
}
