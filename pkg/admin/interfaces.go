// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/canonical/client-portal/internal/types"
)

type ServiceInterface interface {
	InviteUser(ctx context.Context, actorID string, inv *Invitation) (*InviteResult, error)
	AddUserToCompany(ctx context.Context, actorID, userID, tenantID, role string) (bool, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	DeleteUser(ctx context.Context, actorID, userID string) error
	SetUserRole(ctx context.Context, actorID, userID, role string) error
	ListInvitations(ctx context.Context, tenantID string) ([]*types.PendingInvitation, error)
}

// StorageInterface is the subset of internal/storage the admin service writes through.
type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)

	UpsertMembership(ctx context.Context, tenantID, userID, role string) (bool, error)
	DeleteMembershipsByUserID(ctx context.Context, userID string) error

	EnsureGlobalRole(ctx context.Context, userID, role string) error
	SetGlobalRole(ctx context.Context, userID, role string) error
	ListGlobalRoles(ctx context.Context) (map[string]string, error)
	DeleteGlobalRole(ctx context.Context, userID string) error

	CreateInvitation(ctx context.Context, inv *types.PendingInvitation) (*types.PendingInvitation, error)
	ListInvitations(ctx context.Context, tenantID string) ([]*types.PendingInvitation, error)
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email, name, tenantID string) (string, error)
	ListIdentities(ctx context.Context) ([]ory.Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
}

// LinkSenderInterface mails one-time links, see internal/provider.
type LinkSenderInterface interface {
	SendInvitation(ctx context.Context, identityID, email, company, tenantID string) error
	SendMagicLink(ctx context.Context, identityID, email, tenantID string) error
}

type GuardInterface interface {
	RequireAdmin(next http.Handler) http.Handler
}
