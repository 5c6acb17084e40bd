package http

import (
	"time"

	"deal-tracker/internal/user"
	"deal-tracker/pkg/auth0"
	"deal-tracker/pkg/log"
)

// CookieConfig controls the session cookie the auth routes set.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
	// RedirectURL is where the browser goes after login and logout.
	RedirectURL string
}

type handler struct {
	l      log.Logger
	uc     user.UseCase
	auth0  auth0.IAuth0
	cookie CookieConfig
}

// New creates a new HTTP handler for the user domain. authClient may be nil when Auth0 is not
// configured; the login routes then answer 503.
func New(l log.Logger, uc user.UseCase, authClient auth0.IAuth0, cookie CookieConfig) *handler {
	if cookie.RedirectURL == "" {
		cookie.RedirectURL = "/"
	}
	return &handler{
		l:      l,
		uc:     uc,
		auth0:  authClient,
		cookie: cookie,
	}
}
