package middleware

import (
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is the type for values this package stores in a context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	userRoleKey  = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID := c.GetString(string(userIDKey)); userID != "" {
		return userID, true
	}
	// check in the request context as well
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserRoleFromContext retrieves the role resolved from the bearer token.
func GetUserRoleFromContext(c *gin.Context) (domain.Role, bool) {
	if role, ok := c.Get(string(userRoleKey)); ok {
		r, ok := role.(domain.Role)
		return r, ok
	}
	role, ok := c.Request.Context().Value(userRoleKey).(domain.Role)
	return role, ok
}

// ActorFromContext builds the actor for a write operation from the authenticated request.
func ActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	role, ok := GetUserRoleFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: userID, Role: role}, true
}
