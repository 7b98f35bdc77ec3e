// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	ory "github.com/ory/client-go"

	"github.com/canonical/client-portal/internal/hydra"
	"github.com/canonical/client-portal/internal/kratos"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/mail"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/session"
	"github.com/canonical/client-portal/internal/storage"
	"github.com/canonical/client-portal/internal/tracing"
	"github.com/canonical/client-portal/internal/types"
	"github.com/canonical/client-portal/pkg/onboarding"
)

var (
	ErrInvalidToken     = errors.New("link is invalid or has expired")
	ErrInactiveToken    = errors.New("access token is not active")
	ErrInactiveIdentity = errors.New("identity is not active")
)

var (
	_ onboarding.ProviderInterface = (*Provider)(nil)
	_ LinkSenderInterface          = (*Provider)(nil)
)

// Provider backs the linking flow with Kratos identities, Hydra tokens and
// the portal's own one-time tokens.
type Provider struct {
	kratos  kratos.ClientInterface
	hydra   hydra.ClientInterface
	storage StorageInterface
	mailer  mail.MailerInterface

	callbackURL   string
	tokenLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetSession reads the browser session from the request context. Missing
// sessions and deleted or disabled identities are reported as nil, nil.
func (p *Provider) GetSession(ctx context.Context) (*onboarding.Session, error) {
	ctx, span := p.tracer.Start(ctx, "provider.Provider.GetSession")
	defer span.End()

	s := session.FromContext(ctx)
	if s == nil {
		return nil, nil
	}

	identity, err := p.kratos.GetIdentity(ctx, s.IdentityID)
	if errors.Is(err, kratos.ErrIdentityNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !kratos.IsActive(identity) {
		return nil, nil
	}

	// a tenant in the cookie keeps the trust it was written with; the one in
	// the identity metadata was recorded by the portal itself
	tenantID, trusted := s.TenantID, s.TenantTrusted
	if tenantID == "" {
		tenantID, trusted = kratos.PendingTenantID(identity), true
	}

	return &onboarding.Session{
		Identity:      toIdentity(identity),
		Method:        onboarding.MethodExistingSession,
		TenantID:      tenantID,
		TenantTrusted: trusted && tenantID != "",
	}, nil
}

func (p *Provider) ExchangeCode(ctx context.Context, code string) (*onboarding.Session, error) {
	ctx, span := p.tracer.Start(ctx, "provider.Provider.ExchangeCode")
	defer span.End()

	token, err := p.hydra.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	s, err := p.adoptTokenPair(ctx, token.AccessToken, token.RefreshToken)
	if err != nil {
		return nil, err
	}

	s.Method = onboarding.MethodCode

	return s, nil
}

// VerifyOneTimeToken redeems a link secret. A token can only be redeemed once.
func (p *Provider) VerifyOneTimeToken(ctx context.Context, token, tokenType string) (*onboarding.Session, error) {
	ctx, span := p.tracer.Start(ctx, "provider.Provider.VerifyOneTimeToken")
	defer span.End()

	ott, err := p.storage.ConsumeOneTimeToken(ctx, HashToken(token), []string{tokenType})
	if errors.Is(err, storage.ErrNotFound) {
		p.logger.Security().AuthnFailure("one_time_token", ErrInvalidToken.Error())
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}

	identity, err := p.activeIdentity(ctx, ott.KratosIdentityID)
	if err != nil {
		return nil, err
	}

	tenantID := ott.TenantID
	if tenantID == "" {
		tenantID = kratos.PendingTenantID(identity)
	}

	return &onboarding.Session{
		Identity:      toIdentity(identity),
		Method:        onboarding.MethodOneTimeToken,
		TenantID:      tenantID,
		TenantTrusted: tenantID != "",
	}, nil
}

func (p *Provider) SetSessionFromTokenPair(ctx context.Context, accessToken, refreshToken string) (*onboarding.Session, error) {
	ctx, span := p.tracer.Start(ctx, "provider.Provider.SetSessionFromTokenPair")
	defer span.End()

	return p.adoptTokenPair(ctx, accessToken, refreshToken)
}

// adoptTokenPair introspects the access token, refreshing the pair once when
// it is no longer active, and resolves its subject to an identity.
func (p *Provider) adoptTokenPair(ctx context.Context, accessToken, refreshToken string) (*onboarding.Session, error) {
	introspection, err := p.hydra.Introspect(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if !introspection.Active {
		if refreshToken == "" {
			return nil, ErrInactiveToken
		}

		token, err := p.hydra.Refresh(ctx, refreshToken)
		if err != nil {
			return nil, err
		}

		accessToken = token.AccessToken
		if token.RefreshToken != "" {
			refreshToken = token.RefreshToken
		}

		if introspection, err = p.hydra.Introspect(ctx, accessToken); err != nil {
			return nil, err
		}

		if !introspection.Active {
			return nil, ErrInactiveToken
		}
	}

	identity, err := p.activeIdentity(ctx, introspection.Subject)
	if err != nil {
		return nil, err
	}

	tenantID := kratos.PendingTenantID(identity)

	return &onboarding.Session{
		Identity:      toIdentity(identity),
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		Method:        onboarding.MethodTokenPair,
		TokenVerified: true,
		TenantID:      tenantID,
		TenantTrusted: tenantID != "",
	}, nil
}

func (p *Provider) UpdatePassword(ctx context.Context, s *onboarding.Session, password string) (*onboarding.Identity, error) {
	ctx, span := p.tracer.Start(ctx, "provider.Provider.UpdatePassword")
	defer span.End()

	if s == nil || s.Identity == nil {
		return nil, onboarding.ErrNoCredential
	}

	identity, err := p.kratos.UpdatePassword(ctx, s.Identity.ID, password)
	if err != nil {
		return nil, err
	}

	return toIdentity(identity), nil
}

// SendOneTimeLink mails a sign-in link to a registered address. Unknown
// addresses are not an error.
func (p *Provider) SendOneTimeLink(ctx context.Context, email, redirectTarget string) error {
	ctx, span := p.tracer.Start(ctx, "provider.Provider.SendOneTimeLink")
	defer span.End()

	id, err := p.kratos.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return err
	}

	if id == "" {
		p.logger.Debugf("not sending a one-time link to an unregistered address")
		return nil
	}

	link, err := p.issue(ctx, id, email, "", types.TokenTypeMagicLink, redirectTarget)
	if err != nil {
		return err
	}

	msg, err := mail.SignInMessage(email, link)
	if err != nil {
		return err
	}

	return p.mailer.Send(ctx, msg)
}

// SendInvitation mails an invite link carrying the tenant to a new identity.
func (p *Provider) SendInvitation(ctx context.Context, identityID, email, company, tenantID string) error {
	ctx, span := p.tracer.Start(ctx, "provider.Provider.SendInvitation")
	defer span.End()

	link, err := p.issue(ctx, identityID, email, tenantID, types.TokenTypeInvite, p.callbackURL)
	if err != nil {
		return err
	}

	msg, err := mail.InvitationMessage(email, company, link)
	if err != nil {
		return err
	}

	return p.mailer.Send(ctx, msg)
}

// SendMagicLink mails a sign-in link to an identity that already exists.
func (p *Provider) SendMagicLink(ctx context.Context, identityID, email, tenantID string) error {
	ctx, span := p.tracer.Start(ctx, "provider.Provider.SendMagicLink")
	defer span.End()

	link, err := p.issue(ctx, identityID, email, tenantID, types.TokenTypeMagicLink, p.callbackURL)
	if err != nil {
		return err
	}

	msg, err := mail.SignInMessage(email, link)
	if err != nil {
		return err
	}

	return p.mailer.Send(ctx, msg)
}

// issue stores a new one-time token and returns target with the link
// parameters added.
func (p *Provider) issue(ctx context.Context, identityID, email, tenantID, tokenType, target string) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid link target %q: %w", target, err)
	}

	token, hash, err := NewToken()
	if err != nil {
		return "", err
	}

	err = p.storage.CreateOneTimeToken(ctx, &types.OneTimeToken{
		TokenHash:        hash,
		Type:             tokenType,
		KratosIdentityID: identityID,
		Email:            strings.ToLower(email),
		TenantID:         tenantID,
		ExpiresAt:        time.Now().Add(p.tokenLifetime),
	})
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("token", token)
	q.Set("type", tokenType)
	q.Set("email", email)
	if tenantID != "" {
		q.Set("client_id", tenantID)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (p *Provider) activeIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	identity, err := p.kratos.GetIdentity(ctx, id)
	if err != nil {
		return nil, err
	}

	if !kratos.IsActive(identity) {
		return nil, ErrInactiveIdentity
	}

	return identity, nil
}

func toIdentity(i *ory.Identity) *onboarding.Identity {
	if i == nil {
		return nil
	}

	return &onboarding.Identity{
		ID:    i.Id,
		Email: kratos.Email(i),
		Name:  kratos.Name(i),
	}
}

func NewProvider(
	kratosClient kratos.ClientInterface,
	hydraClient hydra.ClientInterface,
	store StorageInterface,
	mailer mail.MailerInterface,
	callbackURL string,
	tokenLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Provider {
	p := new(Provider)

	p.kratos = kratosClient
	p.hydra = hydraClient
	p.storage = store
	p.mailer = mailer
	p.callbackURL = callbackURL
	p.tokenLifetime = tokenLifetime
	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
