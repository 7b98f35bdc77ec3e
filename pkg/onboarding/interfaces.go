// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"net/url"
)

// ProviderInterface is the identity provider surface the flow consumes.
type ProviderInterface interface {
	// GetSession returns nil, nil when the request is unauthenticated.
	GetSession(ctx context.Context) (*Session, error)
	ExchangeCode(ctx context.Context, code string) (*Session, error)
	VerifyOneTimeToken(ctx context.Context, token, tokenType string) (*Session, error)
	SetSessionFromTokenPair(ctx context.Context, accessToken, refreshToken string) (*Session, error)
	UpdatePassword(ctx context.Context, session *Session, password string) (*Identity, error)
	// SendOneTimeLink reports success whether or not email is registered.
	SendOneTimeLink(ctx context.Context, email, redirectTarget string) error
}

// StorageInterface is the subset of internal/storage used by the tenant linker.
type StorageInterface interface {
	UpsertMembership(ctx context.Context, tenantID, userID, role string) (bool, error)
	EnsureGlobalRole(ctx context.Context, userID, role string) error
	ClaimInvitation(ctx context.Context, tenantID, email, userID string) (bool, error)
}

// TokenVerifierInterface checks an access token signature against the issuer keys.
type TokenVerifierInterface interface {
	VerifySignature(ctx context.Context, token string) (bool, error)
}

type EstablisherInterface interface {
	Establish(ctx context.Context, intent *Intent) (*SessionResult, error)
}

type CredentialSetterInterface interface {
	SetPassword(ctx context.Context, session *Session, newPassword, confirmPassword string) (*Identity, error)
}

type LinkerInterface interface {
	LinkTenant(ctx context.Context, identity *Identity, tenantID string) LinkResult
}

type RouterInterface interface {
	Begin(ctx context.Context, query url.Values, fragment string) *Flow
	BeginIntent(ctx context.Context, intent *Intent) *Flow
	SubmitPassword(ctx context.Context, tenantID, password, confirmPassword string) *Flow
	Resend(ctx context.Context, email, tenantID string)
}
