// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
)

// Session is the browser session issued once an identity proved itself.
type Session struct {
	IdentityID string
	Email      string
	// TenantID is the pending tenant carried between the callback and the password step.
	TenantID string
	// TenantTrusted is true when TenantID came from a source the issuer vouched for.
	TenantTrusted bool
	Method        string
}

type contextKey struct{}

var sessionContextKey = contextKey{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// FromContext returns nil when the request carries no session.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionContextKey).(*Session)
	return s
}
