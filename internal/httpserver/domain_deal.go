package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"deal-tracker/internal/deal"
	dealHTTP "deal-tracker/internal/deal/delivery/http"
	dealRepo "deal-tracker/internal/deal/repository/sqlite"
	dealUC "deal-tracker/internal/deal/usecase"
	"deal-tracker/internal/middleware"
)

// setupDealDomain wires the deal domain and registers /api/v1/deals. The use case is returned
// because the assistant reads the portfolio through it.
func (srv *HTTPServer) setupDealDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (deal.UseCase, error) {
	repo := dealRepo.New(srv.db, srv.l)

	uc := dealUC.New(repo, srv.l, dealUC.ReminderConfig{
		Scheduler:  srv.calendar,
		CalendarID: srv.calendarCfg.CalendarID,
		Timezone:   srv.calendarCfg.Timezone,
		LeadDays:   srv.calendarCfg.LeadDays,
	})

	h := dealHTTP.New(srv.l, uc)
	dealHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar == nil {
		srv.l.Infof(ctx, "Deal domain registered (calendar reminders disabled)")
	} else {
		srv.l.Infof(ctx, "Deal domain registered")
	}
	return uc, nil
}
