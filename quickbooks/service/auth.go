package service

import (
	"context"
	"fmt"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// RefreshAccessToken exchanges the refresh token for a new token pair at the
// Intuit OAuth2 bearer endpoint. On success the client adopts the new pair
// for the remainder of the invocation.
//
// The refreshed pair lives only on this client instance. Durable token
// storage is outside this service's boundary, so every invocation starts
// again from the tokens in the environment.
func (c *Client) RefreshAccessToken(ctx context.Context) error {
	l := c.loggerProvider(ctx)

	var token tokenResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": c.cfg.RefreshToken,
		}).
		SetResult(&token).
		Post(c.tokenURL)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrTokenRefresh, err)
	}

	if resp.IsError() {
		return fmt.Errorf("%w: %s: %s", ErrTokenRefresh, resp.Status(), resp.String())
	}

	c.cfg.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		c.cfg.RefreshToken = token.RefreshToken
	}

	l.Info("QuickBooks access token refreshed successfully")

	return nil
}
