package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/HarshAvichal/EventEase/internal/auth"
	"github.com/HarshAvichal/EventEase/internal/domain"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// Auth validates the Bearer access token and stores the caller's
// identity in the request context.
func Auth(tm *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"message": "Authentication token missing"},
			)
			return
		}

		claims, err := tm.ParseAccess(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, domain.ErrTokenExpired) {
				msg = "Token expired, please log in again"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"message": msg})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, string(claims.Role))
		c.Next()
	}
}

// RequireRole rejects callers whose role does not match. It must run
// after Auth.
func RequireRole(role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString(ContextUserRole) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"message": "Access denied: insufficient permissions"},
			)
			return
		}
		c.Next()
	}
}

func RequireOrganizer() ginext.HandlerFunc {
	return RequireRole(domain.RoleOrganizer)
}

func RequireParticipant() ginext.HandlerFunc {
	return RequireRole(domain.RoleParticipant)
}
