package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/server/respond"
)

const userIDKey = "userId"

// SessionResolver reports the identity currently held by the session pointer.
type SessionResolver interface {
	CurrentUserID(ctx context.Context) (string, bool, error)
}

// Session resolves the active session pointer and stores the identity in
// context. Requests without an active session are rejected. Identity here is
// a lookup, not authentication: there is no credential to verify.
func Session(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		userID, ok, err := sessions.CurrentUserID(c.Request.Context())
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal", "session lookup failed", nil)
			return
		}
		if !ok {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the session middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
