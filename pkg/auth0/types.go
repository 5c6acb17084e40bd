package auth0

// Config holds the Auth0 application settings.
type Config struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
	// Scopes default to openid, profile and email.
	Scopes []string
}

// Profile is the subset of the Auth0 userinfo response the service keeps.
type Profile struct {
	Sub      string `json:"sub"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Picture  string `json:"picture"`
}
