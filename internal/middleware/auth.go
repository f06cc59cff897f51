package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"quicktask/pkg/response"
)

// Auth rejects requests without a valid session with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id := m.sessionID(c)
		if id == "" || m.sessions == nil {
			response.Unauthorized(c)
			return
		}

		sc, err := m.sessions.Validate(ctx, id)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		SetScope(c, sc)
		c.Next()
	}
}

// OptionalAuth attaches the scope when a valid session is present and lets
// anonymous requests through otherwise.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := m.sessionID(c); id != "" && m.sessions != nil {
			if sc, err := m.sessions.Validate(c.Request.Context(), id); err == nil {
				SetScope(c, sc)
			}
		}
		c.Next()
	}
}

// sessionID reads the session cookie, falling back to a bearer token.
func (m Middleware) sessionID(c *gin.Context) string {
	if v, err := c.Cookie(m.cookieName); err == nil && v != "" {
		return v
	}
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
