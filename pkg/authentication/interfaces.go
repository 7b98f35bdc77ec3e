// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

// TokenVerifierInterface authenticates service clients by bearer token.
type TokenVerifierInterface interface {
	// VerifyToken returns the token subject when the signature verifies and
	// the subject or scope policy lets it through.
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

// RoleReaderInterface is the global role subset of internal/storage.
type RoleReaderInterface interface {
	GetGlobalRole(ctx context.Context, userID string) (string, error)
}
