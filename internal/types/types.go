// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Membership roles scoped to a single tenant.
const (
	MembershipRoleAdmin  = "admin"
	MembershipRoleMember = "member"
	MembershipRoleViewer = "viewer"
)

// Global roles, independent of tenant membership.
const (
	GlobalRoleAdmin = "admin"
	GlobalRoleUser  = "user"
)

// One-time token types.
const (
	TokenTypeInvite    = "invite"
	TokenTypeRecovery  = "recovery"
	TokenTypeMagicLink = "magiclink"
)

// Tenant is a company record grouping users.
type Tenant struct {
	ID          string    `db:"id" json:"id"`
	Company     string    `db:"company" json:"company"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email,omitempty"`
	Phone       string    `db:"phone" json:"phone,omitempty"`
	Description string    `db:"description" json:"description,omitempty"`
	OwnerID     string    `db:"owner_id" json:"owner_id,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Membership struct {
	ID               string    `db:"id" json:"id"`
	TenantID         string    `db:"tenant_id" json:"tenant_id"`
	KratosIdentityID string    `db:"kratos_identity_id" json:"user_id"`
	Role             string    `db:"role" json:"role"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

type GlobalRole struct {
	KratosIdentityID string    `db:"kratos_identity_id" json:"user_id"`
	Role             string    `db:"role" json:"role"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

type PendingInvitation struct {
	ID        string     `db:"id" json:"id"`
	TenantID  string     `db:"tenant_id" json:"tenant_id"`
	Email     string     `db:"email" json:"email"`
	Role      string     `db:"role" json:"role"`
	InvitedBy string     `db:"invited_by" json:"invited_by,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	ExpiresAt time.Time  `db:"expires_at" json:"expires_at"`
	ClaimedAt *time.Time `db:"claimed_at" json:"claimed_at,omitempty"`
	ClaimedBy *string    `db:"claimed_by" json:"claimed_by,omitempty"`
}

// Claimed reports whether the invitation reached its terminal state.
func (p *PendingInvitation) Claimed() bool {
	return p.ClaimedAt != nil
}

// OneTimeToken is the stored half of a single-use link. Only the hash of
// the secret is persisted.
type OneTimeToken struct {
	ID               string     `db:"id"`
	TokenHash        string     `db:"token_hash"`
	Type             string     `db:"type"`
	KratosIdentityID string     `db:"kratos_identity_id"`
	Email            string     `db:"email"`
	TenantID         string     `db:"tenant_id"`
	CreatedAt        time.Time  `db:"created_at"`
	ExpiresAt        time.Time  `db:"expires_at"`
	UsedAt           *time.Time `db:"used_at"`
}

type TenantUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// User is an identity as seen by administrators.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	Companies []*Tenant `json:"companies"`
	CreatedAt time.Time `json:"created_at"`
}
