package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// ErrNoAccessToken signals that the authorization-code exchange did not
// yield a usable access token.
var ErrNoAccessToken = errors.New("authentication did not yield an access token")

// exchangeTimeout bounds both outbound calls; the upstream providers
// occasionally hang and a request must never wait on them forever.
const exchangeTimeout = 15 * time.Second

// Provider performs the two-step OAuth2 exchange against one platform:
// POST the authorization code to the token endpoint, then GET the
// profile endpoint with the bearer token. It keeps no local state.
type Provider struct {
	Name       string
	Config     *oauth2.Config
	ProfileURL string
}

// Identify exchanges code for a token and decodes the profile response
// into dst. dst decides the provider-specific shape; callers validate it.
func (p *Provider) Identify(ctx context.Context, code string, dst interface{}) error {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: exchangeTimeout})
	ctx, cancel := context.WithTimeout(ctx, 2*exchangeTimeout)
	defer cancel()

	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", p.Name, ErrNoAccessToken, err)
	}
	if token.AccessToken == "" {
		return fmt.Errorf("%s: %w", p.Name, ErrNoAccessToken)
	}

	resp, err := p.Config.Client(ctx, token).Get(p.ProfileURL)
	if err != nil {
		return fmt.Errorf("%s: profile fetch failed: %w", p.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: profile endpoint returned %d", p.Name, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s: failed to decode profile: %w", p.Name, err)
	}
	return nil
}
