package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
)

// DateLayout is the calendar-day format accepted for register dates.
const DateLayout = "2006-01-02"

// Date is a register date. It accepts either a plain day ("2025-01-15") or an
// RFC3339 timestamp, and always marshals as a plain day.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// TimePtr returns the underlying time, or nil for a nil date.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// ListParams are the query parameters shared by every register listing.
type ListParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=0"`
	NextToken *string `form:"nextToken"`
	From      string  `form:"from"` // YYYY-MM-DD, inclusive
	To        string  `form:"to"`   // YYYY-MM-DD, inclusive
}

// DateRange parses From/To into a domain range.
func (p ListParams) DateRange() (domain.DateRange, error) {
	var rng domain.DateRange
	if p.From != "" {
		from, err := time.Parse(DateLayout, p.From)
		if err != nil {
			return rng, fmt.Errorf("invalid from date %q", p.From)
		}
		rng.From = &from
	}
	if p.To != "" {
		to, err := time.Parse(DateLayout, p.To)
		if err != nil {
			return rng, fmt.Errorf("invalid to date %q", p.To)
		}
		rng.To = &to
	}
	if rng.From != nil && rng.To != nil && rng.To.Before(*rng.From) {
		return rng, fmt.Errorf("to date must not be before from date")
	}
	return rng, nil
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string               `json:"error"`
	Fields []FieldErrorResponse `json:"fields,omitempty"`
}

// FieldErrorResponse is one itemized validation failure.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
