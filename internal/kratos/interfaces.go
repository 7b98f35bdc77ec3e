// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"

	ory "github.com/ory/client-go"
)

type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email, name, tenantID string) (string, error)
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	ListIdentities(ctx context.Context) ([]ory.Identity, error)
	UpdatePassword(ctx context.Context, id, password string) (*ory.Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
