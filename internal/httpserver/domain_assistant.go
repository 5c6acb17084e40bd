package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "deal-tracker/internal/assistant/delivery/http"
	"deal-tracker/internal/assistant/memory"
	assistantUC "deal-tracker/internal/assistant/usecase"
	"deal-tracker/internal/deal"
	"deal-tracker/internal/middleware"
)

func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, deals deal.UseCase) error {
	uc := assistantUC.New(srv.l, srv.completer, deals, assistantUC.Config{
		Memory: memory.Config{
			Model:    srv.assistantCfg.Model,
			MaxSlots: srv.assistantCfg.MaxSlots,
		},
		SessionTTL:  srv.assistantCfg.SessionTTL,
		MaxSessions: srv.assistantCfg.MaxSessions,
	})

	h := assistantHTTP.New(srv.l, uc)
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered (max %d messages per conversation)", memoryOrDefault(srv.assistantCfg.MaxSlots))
	return nil
}

func memoryOrDefault(maxSlots int) int {
	if maxSlots <= 0 {
		return memory.DefaultMaxSlots
	}
	return maxSlots
}
