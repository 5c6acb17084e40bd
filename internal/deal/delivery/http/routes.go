package http

import (
	"github.com/gin-gonic/gin"

	"deal-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every deal route requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	deals := rg.Group("/deals", mw.Auth())
	{
		deals.POST("", h.Create)
		deals.GET("", h.List)
		deals.GET("/stats", h.Stats)
		deals.GET("/:id", h.Detail)
		deals.PATCH("/:id", h.Update)
		deals.DELETE("/:id", h.Delete)
	}
}
