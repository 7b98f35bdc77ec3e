// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"
	ory "github.com/ory/client-go"

	"github.com/canonical/client-portal/internal/types"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	EnsureGlobalRole(ctx context.Context, userID, role string) error
	UpsertMembership(ctx context.Context, tenantID, userID, role string) (bool, error)
	ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.Membership, error)
	FirstUnclaimedInvitation(ctx context.Context, email string) (*types.PendingInvitation, error)
}

type KratosClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity *KratosIdentity) error
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
