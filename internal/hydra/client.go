// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hydra

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

var ErrNotConfigured = errors.New("oauth2 server is not configured")

var _ ClientInterface = (*Client)(nil)

type Config struct {
	AdminURL     string
	TokenURL     string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type Client struct {
	admin      *ory.APIClient
	oauth2     *oauth2.Config
	httpClient *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) Introspect(ctx context.Context, token string) (*Introspection, error) {
	ctx, span := c.tracer.Start(ctx, "hydra.Client.Introspect")
	defer span.End()

	if c.admin == nil {
		return nil, ErrNotConfigured
	}

	res, _, err := c.admin.OAuth2API.IntrospectOAuth2Token(ctx).Token(token).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to introspect token: %w", err)
	}

	i := &Introspection{Active: res.Active}
	if res.Sub != nil {
		i.Subject = *res.Sub
	}
	if res.ClientId != nil {
		i.ClientID = *res.ClientId
	}

	return i, nil
}

// Refresh trades a refresh token for a fresh token pair at the token endpoint.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	ctx, span := c.tracer.Start(ctx, "hydra.Client.Refresh")
	defer span.End()

	if c.oauth2 == nil {
		return nil, ErrNotConfigured
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauth2.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	return token, nil
}

// Exchange redeems an authorization code returned to the callback.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx, span := c.tracer.Start(ctx, "hydra.Client.Exchange")
	defer span.End()

	if c.oauth2 == nil {
		return nil, ErrNotConfigured
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauth2.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	return token, nil
}

// NewClient builds the OAuth2 client; parts left unconfigured return ErrNotConfigured.
func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	if cfg.AdminURL != "" {
		conf := ory.NewConfiguration()
		conf.Servers = ory.ServerConfigurations{{URL: cfg.AdminURL}}
		conf.HTTPClient = c.httpClient
		c.admin = ory.NewAPIClient(conf)
	}

	if cfg.TokenURL != "" && cfg.ClientID != "" {
		c.oauth2 = &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		}
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
