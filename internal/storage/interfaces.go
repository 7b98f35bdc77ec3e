// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/client-portal/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error

	UpsertMembership(ctx context.Context, tenantID, userID, role string) (bool, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.Membership, error)
	DeleteMembershipsByUserID(ctx context.Context, userID string) error

	EnsureGlobalRole(ctx context.Context, userID, role string) error
	SetGlobalRole(ctx context.Context, userID, role string) error
	GetGlobalRole(ctx context.Context, userID string) (string, error)
	ListGlobalRoles(ctx context.Context) (map[string]string, error)
	DeleteGlobalRole(ctx context.Context, userID string) error

	CreateInvitation(ctx context.Context, inv *types.PendingInvitation) (*types.PendingInvitation, error)
	ClaimInvitation(ctx context.Context, tenantID, email, userID string) (bool, error)
	ListInvitations(ctx context.Context, tenantID string) ([]*types.PendingInvitation, error)
	FirstUnclaimedInvitation(ctx context.Context, email string) (*types.PendingInvitation, error)

	CreateOneTimeToken(ctx context.Context, t *types.OneTimeToken) error
	ConsumeOneTimeToken(ctx context.Context, tokenHash string, tokenTypes []string) (*types.OneTimeToken, error)
}
