// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

const (
	defaultSchemaID = "default"
	stateActive     = "active"
)

var _ ClientInterface = (*Client)(nil)

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	conf.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

// CreateIdentity registers a password-less identity; the pending tenant travels
// in the public metadata until the invitation is accepted.
func (c *Client) CreateIdentity(ctx context.Context, email, name, tenantID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateIdentity")
	defer span.End()

	traits := map[string]interface{}{
		"email": email,
	}
	if name != "" {
		traits["name"] = name
	}

	body := ory.CreateIdentityBody{
		SchemaId: defaultSchemaID,
		Traits:   traits,
	}
	if tenantID != "" {
		body.MetadataPublic = map[string]interface{}{"client_id": tenantID}
	}

	identity, _, err := c.client.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

func (c *Client) ListIdentities(ctx context.Context) ([]ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.ListIdentities")
	defer span.End()

	ids, _, err := c.client.IdentityAPI.ListIdentities(ctx).PageToken("").Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	return ids, nil
}

// UpdatePassword replaces the password credential, keeping traits and metadata as they are.
func (c *Client) UpdatePassword(ctx context.Context, id, password string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.UpdatePassword")
	defer span.End()

	current, err := c.GetIdentity(ctx, id)
	if err != nil {
		return nil, err
	}

	traits, _ := current.Traits.(map[string]interface{})

	state := stateActive
	if current.State != nil {
		state = *current.State
	}

	body := ory.UpdateIdentityBody{
		SchemaId:       current.SchemaId,
		State:          state,
		Traits:         traits,
		MetadataPublic: current.MetadataPublic,
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
	}

	updated, _, err := c.client.IdentityAPI.UpdateIdentity(ctx, id).UpdateIdentityBody(body).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	return updated, nil
}

func (c *Client) DeleteIdentity(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.DeleteIdentity")
	defer span.End()

	r, err := c.client.IdentityAPI.DeleteIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	return nil
}

// Ping reports whether the admin API answers, used by the status endpoint.
func (c *Client) Ping(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Ping")
	defer span.End()

	if _, _, err := c.client.IdentityAPI.ListIdentities(ctx).PerPage(1).PageToken("").Execute(); err != nil {
		return fmt.Errorf("kratos unreachable: %w", err)
	}

	return nil
}
