package middleware

import (
	"deal-tracker/config"
	"deal-tracker/pkg/log"
	"deal-tracker/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
	cookieName   string
	limiter      *rateLimiter
}

// New builds the shared middleware set. rateLimitPerMin <= 0 disables throttling.
func New(l log.Logger, scopeManager scope.Manager, authCfg config.AuthConfig, rateLimitPerMin int) Middleware {
	return Middleware{
		l:            l,
		scopeManager: scopeManager,
		cookieName:   authCfg.CookieName,
		limiter:      newRateLimiter(rateLimitPerMin),
	}
}
