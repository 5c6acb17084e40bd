package http

import (
	"github.com/gin-gonic/gin"

	"deal-tracker/internal/middleware"
)

// RegisterRoutes maps the auth flow (public) and user routes (session required).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.GET("/login", h.Login)
		auth.GET("/callback", h.Callback)
		auth.POST("/logout", h.Logout)
		auth.POST("/access", mw.RateLimit(), h.Access)
	}

	users := rg.Group("/users", mw.Auth())
	{
		users.GET("/me", h.Me)
		users.GET("/:id", h.Detail)
		users.GET("/:id/admin", h.IsAdmin)
	}
}
