package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/services"
	"github.com/rs/zerolog"
)

// SessionKey is the context key for the resolved admin session
const SessionKey = "session"

// SessionToken extracts the session token from the Authorization header or the session cookie
func SessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	token, err := c.Cookie(services.SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

// RequireSession rejects requests without a live admin session
func RequireSession(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessions.Resolve(c.Request.Context(), SessionToken(c))
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": services.ErrUnauthorized.Message})
				return
			}
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// RequireRole rejects sessions whose role is not in roles; it must run after RequireSession
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": services.ErrUnauthorized.Message})
			return
		}
		if !session.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": services.ErrForbidden.Message})
			return
		}
		c.Next()
	}
}

// GetSession returns the session stored by RequireSession, nil when absent
func GetSession(c *gin.Context) *services.Session {
	if v, exists := c.Get(SessionKey); exists {
		if session, ok := v.(*services.Session); ok {
			return session
		}
	}
	return nil
}
