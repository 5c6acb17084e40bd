package auth0

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

var (
	ErrMissingConfig = errors.New("auth0: domain and client id are required")
	ErrNoSubject     = errors.New("auth0: userinfo has no sub")
)

// Client runs the Auth0 authorization code flow.
type Client struct {
	oauth    *oauth2.Config
	baseURL  string
	clientID string
}

var _ IAuth0 = (*Client)(nil)

// New builds a Client. Domain may be a bare host ("tenant.us.auth0.com") or a full URL.
func New(cfg Config) (*Client, error) {
	if cfg.Domain == "" || cfg.ClientID == "" {
		return nil, ErrMissingConfig
	}

	base := strings.TrimRight(cfg.Domain, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{"openid", "profile", "email"}
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  base + "/authorize",
				TokenURL: base + "/oauth/token",
			},
		},
		baseURL:  base,
		clientID: cfg.ClientID,
	}, nil
}

func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

func (c *Client) Exchange(ctx context.Context, code string) (Profile, error) {
	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("auth0: exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/userinfo", nil)
	if err != nil {
		return Profile{}, fmt.Errorf("auth0: build userinfo request: %w", err)
	}

	resp, err := c.oauth.Client(ctx, tok).Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("auth0: userinfo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Profile{}, fmt.Errorf("auth0: read userinfo: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("auth0: userinfo status %d: %s", resp.StatusCode, string(body))
	}

	var p Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return Profile{}, fmt.Errorf("auth0: decode userinfo: %w", err)
	}
	if p.Sub == "" {
		return Profile{}, ErrNoSubject
	}
	return p, nil
}

func (c *Client) LogoutURL(returnTo string) string {
	q := url.Values{}
	q.Set("client_id", c.clientID)
	if returnTo != "" {
		q.Set("returnTo", returnTo)
	}
	return c.baseURL + "/v2/logout?" + q.Encode()
}
