package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "excise-register-app"
)

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(role string) Claims {
	now := time.Now()
	return Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func newAuthRouter(allowed ...domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(testSecret, testIssuer)}
	if len(allowed) > 0 {
		handlers = append(handlers, RequireRoles(allowed...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userID": actor.UserID, "role": actor.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	expired := validClaims("ADMIN")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongIssuer := validClaims("ADMIN")
	wrongIssuer.Issuer = "someone-else"
	noSubject := validClaims("ADMIN")
	noSubject.Subject = ""

	tests := []struct {
		name       string
		header     func(t *testing.T) string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			header:     func(t *testing.T) string { return "" },
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization header required",
		},
		{
			name:       "not bearer",
			header:     func(t *testing.T) string { return "Basic abc" },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid operator",
			header:     func(t *testing.T) string { return "Bearer " + signToken(t, validClaims("OPERATOR"), testSecret) },
			wantStatus: http.StatusOK,
			wantBody:   `"role":"OPERATOR"`,
		},
		{
			name:       "lowercase role accepted",
			header:     func(t *testing.T) string { return "Bearer " + signToken(t, validClaims("excise"), testSecret) },
			wantStatus: http.StatusOK,
			wantBody:   `"role":"EXCISE"`,
		},
		{
			name:       "expired",
			header:     func(t *testing.T) string { return "Bearer " + signToken(t, expired, testSecret) },
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token has expired",
		},
		{
			name:       "wrong secret",
			header:     func(t *testing.T) string { return "Bearer " + signToken(t, validClaims("ADMIN"), "other") },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong issuer",
			header:     func(t *testing.T) string { return "Bearer " + signToken(t, wrongIssuer, testSecret) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing subject",
			header:     func(t *testing.T) string { return "Bearer " + signToken(t, noSubject, testSecret) },
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token claims",
		},
		{
			name:       "unknown role",
			header:     func(t *testing.T) string { return "Bearer " + signToken(t, validClaims("AUDITOR"), testSecret) },
			wantStatus: http.StatusForbidden,
		},
	}

	router := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if h := tt.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	router := newAuthRouter(domain.RoleAdmin, domain.RoleExcise)

	for role, want := range map[string]int{
		"ADMIN":    http.StatusOK,
		"EXCISE":   http.StatusOK,
		"OPERATOR": http.StatusForbidden,
	} {
		t.Run(role, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(role), testSecret))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, want, w.Code)
		})
	}
}
