// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/canonical/client-portal/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, tenant *types.Tenant) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
}

type KratosClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
}

// GuardInterface gates routes on the caller capabilities.
type GuardInterface interface {
	RequireAuthenticated(next http.Handler) http.Handler
	RequireAdmin(next http.Handler) http.Handler
}
