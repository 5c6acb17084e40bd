package http

import (
	"github.com/gin-gonic/gin"

	"deal-tracker/internal/middleware"
)

// RegisterRoutes maps the assistant routes. Questions are throttled per caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.Auth())
	{
		ai.POST("", mw.RateLimit(), h.Ask)
		ai.DELETE("/session", h.Reset)
	}
}
