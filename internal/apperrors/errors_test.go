package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors_MatchesSentinel(t *testing.T) {
	var errs ValidationErrors
	assert.NoError(t, errs.Err())

	errs.Add("receivedStrength", "must be between 0 and 100, got %s", "104")
	errs.Add("avgDensity", "is required")

	err := errs.Err()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "receivedStrength: must be between 0 and 100, got 104")
	assert.Contains(t, err.Error(), "avgDensity: is required")

	var got ValidationErrors
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &got))
	assert.Len(t, got, 2)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", NewValidationError("bad"), http.StatusBadRequest},
		{"balance", &BalanceError{Difference: "1.00", Tolerance: "0.01"}, http.StatusBadRequest},
		{"forbidden", fmt.Errorf("finalize: %w", ErrForbidden), http.StatusForbidden},
		{"not found", NewNotFoundError("no entry"), http.StatusNotFound},
		{"duplicate", fmt.Errorf("%w: batch", ErrDuplicate), http.StatusConflict},
		{"precondition", NewPreconditionError("cannot finalize without linked meter data"), http.StatusUnprocessableEntity},
		{"state", NewStateTransitionError("entry is COMPLETED"), http.StatusUnprocessableEntity},
		{"missing rate", fmt.Errorf("%w: CL/50UP", ErrMissingRate), http.StatusUnprocessableEntity},
		{"other", errors.New("boom"), http.StatusInternalServerError},
		{"bad token", NewAppError(http.StatusBadRequest, "invalid nextToken", errors.New("split")), http.StatusBadRequest},
		{"db fault", NewAppError(http.StatusInternalServerError, "db", errors.New("conn reset")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
