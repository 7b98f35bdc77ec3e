// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hydra

import (
	"context"

	"golang.org/x/oauth2"
)

type ClientInterface interface {
	Introspect(ctx context.Context, token string) (*Introspection, error)
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

// Introspection is the subset of RFC 7662 fields the portal relies on.
type Introspection struct {
	Active   bool
	Subject  string
	ClientID string
}
