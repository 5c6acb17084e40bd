package auth0

import "context"

//go:generate mockery --name IAuth0
type IAuth0 interface {
	// AuthCodeURL is where the browser is redirected to log in; state is echoed back on callback.
	AuthCodeURL(state string) string
	// Exchange trades the callback code for tokens and fetches the user's profile.
	Exchange(ctx context.Context, code string) (Profile, error)
	// LogoutURL ends the Auth0 session and returns the browser to returnTo.
	LogoutURL(returnTo string) string
}
