package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/SscSPs/excise_register_app/internal/middleware"
	"github.com/SscSPs/excise_register_app/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Metrics *metrics.Metrics
	Clock   func() time.Time
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithMetrics records register outcomes on m.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *BaseService) {
		s.Metrics = m
	}
}

// WithClock replaces the wall clock used for audit timestamps.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func applyOptions(base *BaseService, options []ServiceOption) {
	for _, option := range options {
		option(base)
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the service clock, defaulting to UTC wall time.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

// AuthorizeRole checks that the actor holds one of the allowed roles.
func (s *BaseService) AuthorizeRole(ctx context.Context, actor domain.Actor, operation string, allowed ...domain.Role) error {
	if actor.Role.In(allowed...) {
		return nil
	}
	err := fmt.Errorf("role %s may not %s: %w", actor.Role, operation, apperrors.ErrForbidden)
	s.LogWarn(ctx, "Operation not permitted for role",
		slog.String("user_id", actor.UserID),
		slog.String("role", string(actor.Role)),
		slog.String("operation", operation))
	return err
}

// Reject logs and counts a rejected register write, then returns err unchanged.
func (s *BaseService) Reject(ctx context.Context, register string, err error, keyvals ...any) error {
	reason := rejectionReason(err)
	s.Metrics.RecordRejection(register, reason)
	args := append([]any{slog.String("register", register), slog.String("reason", reason), slog.String("error", err.Error())}, keyvals...)
	s.GetLogger(ctx).Warn("Register write rejected", args...)
	return err
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrBalanceViolation):
		return "balance"
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrPrecondition):
		return "precondition"
	case errors.Is(err, apperrors.ErrStateTransition):
		return "state_transition"
	case errors.Is(err, apperrors.ErrMissingRate):
		return "missing_rate"
	case errors.Is(err, apperrors.ErrDuplicate):
		return "duplicate"
	case errors.Is(err, apperrors.ErrForbidden):
		return "forbidden"
	}
	return "other"
}

// isRejection reports whether err is a business rejection rather than an infrastructure fault.
func isRejection(err error) bool {
	return rejectionReason(err) != "other"
}

// listRange parses the date bounds of a listing request.
func listRange(params dto.ListParams) (domain.DateRange, error) {
	rng, err := params.DateRange()
	if err != nil {
		return rng, apperrors.NewValidationError(err.Error())
	}
	return rng, nil
}

// nonNil keeps empty pages serialising as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func newAudit(actor domain.Actor, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actor.UserID,
	}
}

func touch(a *domain.AuditFields, actor domain.Actor, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = actor.UserID
}
