package middleware

import (
	"github.com/gin-gonic/gin"

	"quicktask/internal/model"
)

const scopeKey = "scope"

// SetScope stores the caller's scope on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope set by Auth or OptionalAuth, or an anonymous scope.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
