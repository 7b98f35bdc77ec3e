// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/client-portal/internal/types"
)

// caller sources
const (
	SourceSession = "session"
	SourceHeader  = "header"
	SourceBearer  = "bearer"
)

// Capabilities is what the caller may do, resolved once per request.
type Capabilities struct {
	IdentityID string `json:"user_id"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role"`
	Source     string `json:"-"`
}

func (c *Capabilities) IsAdmin() bool {
	return c != nil && c.Role == types.GlobalRoleAdmin
}

type contextKey struct{}

var capabilitiesContextKey = contextKey{}

func WithCapabilities(ctx context.Context, c *Capabilities) context.Context {
	return context.WithValue(ctx, capabilitiesContextKey, c)
}

// FromContext returns nil for anonymous requests.
func FromContext(ctx context.Context) *Capabilities {
	c, _ := ctx.Value(capabilitiesContextKey).(*Capabilities)
	return c
}

// GetUserID retrieves the caller identity ID from the context.
// Returns an empty string and false if the request is anonymous.
func GetUserID(ctx context.Context) (string, bool) {
	c := FromContext(ctx)
	if c == nil || c.IdentityID == "" {
		return "", false
	}
	return c.IdentityID, true
}
