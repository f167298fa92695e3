package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/SscSPs/excise_register_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

var (
	adminActor    = domain.Actor{UserID: "u-admin", Role: domain.RoleAdmin}
	exciseActor   = domain.Actor{UserID: "u-excise", Role: domain.RoleExcise}
	operatorActor = domain.Actor{UserID: "u-operator", Role: domain.RoleOperator}
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *dto.Date {
	return &dto.Date{Time: day(y, m, d)}
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}
