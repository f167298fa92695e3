package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Role is the caller role resolved by the auth layer.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleExcise   Role = "EXCISE"
	RoleOperator Role = "OPERATOR"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleExcise, RoleOperator:
		return true
	}
	return false
}

// In reports whether r is one of allowed.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// TruncateToDate drops the time-of-day so register dates compare by calendar day.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Actor is the authenticated caller of a write operation.
type Actor struct {
	UserID string
	Role   Role
}

// DateRange bounds a register listing by entry date; a nil end is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}
