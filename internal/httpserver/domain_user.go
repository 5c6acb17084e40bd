package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"deal-tracker/internal/middleware"
	userHTTP "deal-tracker/internal/user/delivery/http"
	userRepo "deal-tracker/internal/user/repository/sqlite"
	userUC "deal-tracker/internal/user/usecase"
)

func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := userRepo.New(srv.db, srv.l)

	uc := userUC.New(repo, srv.l, srv.scopeManager, userUC.Config{
		AdminEmails:    srv.authCfg.AdminEmails,
		AccessPassword: srv.authCfg.AccessPassword,
	})

	h := userHTTP.New(srv.l, uc, srv.auth0, userHTTP.CookieConfig{
		Name:        srv.authCfg.CookieName,
		Secure:      srv.authCfg.CookieSecure,
		TTL:         srv.authCfg.SessionTTL,
		RedirectURL: srv.authCfg.PostLoginRedirect,
	})
	userHTTP.RegisterRoutes(api, h, mw)

	if srv.auth0 == nil {
		srv.l.Warnf(ctx, "Auth0 not configured, /auth/login is disabled")
	}
	srv.l.Infof(ctx, "User domain registered")
	return nil
}
