// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package oauth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/geliogabalus/pf2e-ratings/cliparse"
	"github.com/geliogabalus/pf2e-ratings/models"
)

// Endpoints are the provider URLs the gateway talks to. Injectable so tests
// can point the gateway at a fake provider.
type Endpoints struct {
	Authorize string
	Token     string
	Profile   string
}

// DiscordEndpoints returns the endpoints of the production provider.
func DiscordEndpoints() Endpoints {
	return Endpoints{
		Authorize: "https://discord.com/oauth2/authorize",
		Token:     "https://discord.com/api/oauth2/token",
		Profile:   "https://discord.com/api/users/@me",
	}
}

// Gateway trades an authorization code for the external profile behind it.
// Its only state is configuration; all session state lives in the session
// store, all durable state in the rating store.
type Gateway struct {
	client       *resty.Client
	endpoints    Endpoints
	clientID     string
	clientSecret string
	redirectURL  string
}

func New(cfg cliparse.Config, endpoints Endpoints) *Gateway {
	client := resty.New().
		SetTimeout(10 * time.Second)

	return &Gateway{
		client:       client,
		endpoints:    endpoints,
		clientID:     cfg.OAuthClientID,
		clientSecret: cfg.OAuthClientSecret,
		redirectURL:  cfg.PublicBaseURL + "/oauth2",
	}
}

// AuthorizeURL builds the provider authorization page URL carrying the state
// token and the fixed redirect target.
func (g *Gateway) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("client_id", g.clientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", g.redirectURL)
	q.Set("scope", "identify")
	q.Set("state", state)
	return g.endpoints.Authorize + "?" + q.Encode()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Exchange performs the single server-to-server code-for-token exchange and
// then fetches the profile with the resulting access token. Any failure
// aborts the link; the caller logs it and the waiting client simply times out.
func (g *Gateway) Exchange(ctx context.Context, code string) (models.Profile, error) {
	var token tokenResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":     g.clientID,
			"client_secret": g.clientSecret,
			"grant_type":    "authorization_code",
			"code":          code,
			"redirect_uri":  g.redirectURL,
		}).
		SetResult(&token).
		Post(g.endpoints.Token)
	if err != nil {
		return models.Profile{}, fmt.Errorf("token exchange failed: %w", err)
	}
	if resp.IsError() {
		return models.Profile{}, fmt.Errorf("token exchange failed: provider returned %s", resp.Status())
	}
	if token.AccessToken == "" {
		return models.Profile{}, fmt.Errorf("token exchange failed: empty access token")
	}

	var profile models.Profile
	resp, err = g.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&profile).
		Get(g.endpoints.Profile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile fetch failed: %w", err)
	}
	if resp.IsError() {
		return models.Profile{}, fmt.Errorf("profile fetch failed: provider returned %s", resp.Status())
	}
	if profile.ID == "" {
		return models.Profile{}, fmt.Errorf("profile fetch failed: profile has no id")
	}

	return profile, nil
}
