package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"deal-tracker/internal/model"
	"deal-tracker/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth rejects requests without a valid session token (cookie or Authorization: Bearer) and
// stores the caller's model.Scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := m.tokenFromRequest(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.scopeManager.Verify(token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.NewScope(payload)
		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

func (m Middleware) tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	if m.cookieName != "" {
		if v, err := c.Cookie(m.cookieName); err == nil {
			return v
		}
	}
	return ""
}
