// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provider

import (
	"context"

	"github.com/canonical/client-portal/internal/types"
)

// StorageInterface is the one-time token subset of internal/storage.
type StorageInterface interface {
	CreateOneTimeToken(ctx context.Context, t *types.OneTimeToken) error
	ConsumeOneTimeToken(ctx context.Context, tokenHash string, tokenTypes []string) (*types.OneTimeToken, error)
}

// LinkSenderInterface issues one-time links outside of the linking flow.
type LinkSenderInterface interface {
	SendInvitation(ctx context.Context, identityID, email, company, tenantID string) error
	SendMagicLink(ctx context.Context, identityID, email, tenantID string) error
}
