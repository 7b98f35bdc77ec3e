// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provider

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	ory "github.com/ory/client-go"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"

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

//go:generate mockgen -build_flags=--mod=mod -package provider -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package provider -destination ./mock_kratos.go -source=../kratos/interfaces.go -mock_names ClientInterface=MockKratosClientInterface
//go:generate mockgen -build_flags=--mod=mod -package provider -destination ./mock_hydra.go -source=../hydra/interfaces.go -mock_names ClientInterface=MockHydraClientInterface
//go:generate mockgen -build_flags=--mod=mod -package provider -destination ./mock_mail.go -source=../mail/interfaces.go MailerInterface
//go:generate mockgen -build_flags=--mod=mod -package provider -destination ./mock_logger.go -source=../logging/interfaces.go

const callbackURL = "https://portal.example.com/auth/callback"

type mocks struct {
	kratos  *MockKratosClientInterface
	hydra   *MockHydraClientInterface
	storage *MockStorageInterface
	mailer  *MockMailerInterface
}

func newTestProvider(ctrl *gomock.Controller) (*Provider, *mocks) {
	m := &mocks{
		kratos:  NewMockKratosClientInterface(ctrl),
		hydra:   NewMockHydraClientInterface(ctrl),
		storage: NewMockStorageInterface(ctrl),
		mailer:  NewMockMailerInterface(ctrl),
	}

	p := NewProvider(m.kratos, m.hydra, m.storage, m.mailer, callbackURL, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	return p, m
}

func identity(id, email, tenantID string, active bool) *ory.Identity {
	i := &ory.Identity{
		Id:     id,
		Traits: map[string]interface{}{"email": email},
	}
	if tenantID != "" {
		i.MetadataPublic = map[string]interface{}{"client_id": tenantID}
	}
	if !active {
		state := "inactive"
		i.State = &state
	}
	return i
}

func TestGetSession(t *testing.T) {
	tests := []struct {
		name            string
		cookie          *session.Session
		setupMocks      func(*mocks)
		expectedID      string
		expectedTenant  string
		expectedTrusted bool
		expectErr       bool
	}{
		{
			name: "no cookie",
		},
		{
			name:   "identity deleted",
			cookie: &session.Session{IdentityID: "id-1"},
			setupMocks: func(m *mocks) {
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(nil, kratos.ErrIdentityNotFound)
			},
		},
		{
			name:   "identity disabled",
			cookie: &session.Session{IdentityID: "id-1"},
			setupMocks: func(m *mocks) {
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(identity("id-1", "a@b.com", "", false), nil)
			},
		},
		{
			name:   "kratos unreachable",
			cookie: &session.Session{IdentityID: "id-1"},
			setupMocks: func(m *mocks) {
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(nil, errors.New("connection refused"))
			},
			expectErr: true,
		},
		{
			name:   "untrusted tenant from cookie",
			cookie: &session.Session{IdentityID: "id-1", TenantID: "T1"},
			setupMocks: func(m *mocks) {
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(identity("id-1", "a@b.com", "T2", true), nil)
			},
			expectedID:     "id-1",
			expectedTenant: "T1",
		},
		{
			name:   "trusted tenant from cookie",
			cookie: &session.Session{IdentityID: "id-1", TenantID: "T1", TenantTrusted: true},
			setupMocks: func(m *mocks) {
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(identity("id-1", "a@b.com", "", true), nil)
			},
			expectedID:      "id-1",
			expectedTenant:  "T1",
			expectedTrusted: true,
		},
		{
			name:   "tenant from identity metadata",
			cookie: &session.Session{IdentityID: "id-1"},
			setupMocks: func(m *mocks) {
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(identity("id-1", "a@b.com", "T2", true), nil)
			},
			expectedID:      "id-1",
			expectedTenant:  "T2",
			expectedTrusted: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, m := newTestProvider(ctrl)
			if test.setupMocks != nil {
				test.setupMocks(m)
			}

			ctx := context.Background()
			if test.cookie != nil {
				ctx = session.WithSession(ctx, test.cookie)
			}

			s, err := p.GetSession(ctx)

			if test.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if test.expectedID == "" {
				if s != nil {
					t.Errorf("expected no session, got %+v", s)
				}
				return
			}

			if s == nil || s.Identity.ID != test.expectedID || s.TenantID != test.expectedTenant {
				t.Fatalf("unexpected session %+v", s)
			}

			if s.Method != onboarding.MethodExistingSession || s.TokenVerified {
				t.Errorf("unexpected method %s verified=%v", s.Method, s.TokenVerified)
			}

			if s.TenantTrusted != test.expectedTrusted {
				t.Errorf("expected tenant trusted=%v, got %v", test.expectedTrusted, s.TenantTrusted)
			}
		})
	}
}

func TestVerifyOneTimeToken(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks)
		expectedErr    error
		expectedTenant string
	}{
		{
			name: "unknown, used or expired token",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ConsumeOneTimeToken(gomock.Any(), HashToken("X"), []string{"invite"}).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "disabled identity",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ConsumeOneTimeToken(gomock.Any(), HashToken("X"), []string{"invite"}).Return(&types.OneTimeToken{KratosIdentityID: "id-1"}, nil)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(identity("id-1", "a@b.com", "", false), nil)
			},
			expectedErr: ErrInactiveIdentity,
		},
		{
			name: "tenant from token row",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ConsumeOneTimeToken(gomock.Any(), HashToken("X"), []string{"invite"}).Return(&types.OneTimeToken{KratosIdentityID: "id-1", TenantID: "T1"}, nil)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(identity("id-1", "a@b.com", "T2", true), nil)
			},
			expectedTenant: "T1",
		},
		{
			name: "tenant from identity metadata",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ConsumeOneTimeToken(gomock.Any(), HashToken("X"), []string{"invite"}).Return(&types.OneTimeToken{KratosIdentityID: "id-1"}, nil)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(identity("id-1", "a@b.com", "T2", true), nil)
			},
			expectedTenant: "T2",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, m := newTestProvider(ctrl)
			test.setupMocks(m)

			s, err := p.VerifyOneTimeToken(context.Background(), "X", "invite")

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if s.Method != onboarding.MethodOneTimeToken || s.Identity.Email != "a@b.com" || s.TenantID != test.expectedTenant || !s.TenantTrusted {
				t.Errorf("unexpected session %+v", s)
			}
		})
	}
}

func TestSetSessionFromTokenPair(t *testing.T) {
	tests := []struct {
		name            string
		refreshToken    string
		setupMocks      func(*mocks)
		expectedErr     error
		expectedAccess  string
		expectedRefresh string
	}{
		{
			name:         "active access token",
			refreshToken: "R",
			setupMocks: func(m *mocks) {
				m.hydra.EXPECT().Introspect(gomock.Any(), "A").Return(&hydra.Introspection{Active: true, Subject: "id-1"}, nil)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(identity("id-1", "a@b.com", "T1", true), nil)
			},
			expectedAccess:  "A",
			expectedRefresh: "R",
		},
		{
			name: "inactive without refresh token",
			setupMocks: func(m *mocks) {
				m.hydra.EXPECT().Introspect(gomock.Any(), "A").Return(&hydra.Introspection{Active: false}, nil)
			},
			expectedErr: ErrInactiveToken,
		},
		{
			name:         "inactive access token is refreshed",
			refreshToken: "R",
			setupMocks: func(m *mocks) {
				gomock.InOrder(
					m.hydra.EXPECT().Introspect(gomock.Any(), "A").Return(&hydra.Introspection{Active: false}, nil),
					m.hydra.EXPECT().Refresh(gomock.Any(), "R").Return(&oauth2.Token{AccessToken: "A2", RefreshToken: "R2"}, nil),
					m.hydra.EXPECT().Introspect(gomock.Any(), "A2").Return(&hydra.Introspection{Active: true, Subject: "id-1"}, nil),
				)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(identity("id-1", "a@b.com", "T1", true), nil)
			},
			expectedAccess:  "A2",
			expectedRefresh: "R2",
		},
		{
			name:         "refresh rejected",
			refreshToken: "R",
			setupMocks: func(m *mocks) {
				m.hydra.EXPECT().Introspect(gomock.Any(), "A").Return(&hydra.Introspection{Active: false}, nil)
				m.hydra.EXPECT().Refresh(gomock.Any(), "R").Return(nil, errors.New("invalid_grant"))
			},
			expectedErr: errors.New("invalid_grant"),
		},
		{
			name:         "oauth2 server not configured",
			refreshToken: "R",
			setupMocks: func(m *mocks) {
				m.hydra.EXPECT().Introspect(gomock.Any(), "A").Return(nil, hydra.ErrNotConfigured)
			},
			expectedErr: hydra.ErrNotConfigured,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, m := newTestProvider(ctrl)
			test.setupMocks(m)

			s, err := p.SetSessionFromTokenPair(context.Background(), "A", test.refreshToken)

			if test.expectedErr != nil {
				if err == nil || (!errors.Is(err, test.expectedErr) && err.Error() != test.expectedErr.Error()) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !s.TokenVerified || s.Method != onboarding.MethodTokenPair {
				t.Errorf("expected a verified token pair session, got %+v", s)
			}

			if s.AccessToken != test.expectedAccess || s.RefreshToken != test.expectedRefresh {
				t.Errorf("unexpected pair %s/%s", s.AccessToken, s.RefreshToken)
			}

			if s.TenantID != "T1" || !s.TenantTrusted {
				t.Errorf("expected tenant from identity metadata, got %q", s.TenantID)
			}
		})
	}
}

func TestExchangeCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestProvider(ctrl)

	m.hydra.EXPECT().Exchange(gomock.Any(), "C").Return(&oauth2.Token{AccessToken: "A", RefreshToken: "R"}, nil)
	m.hydra.EXPECT().Introspect(gomock.Any(), "A").Return(&hydra.Introspection{Active: true, Subject: "id-1"}, nil)
	m.kratos.EXPECT().GetIdentity(gomock.Any(), "id-1").Return(identity("id-1", "a@b.com", "", true), nil)

	s, err := p.ExchangeCode(context.Background(), "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Method != onboarding.MethodCode || !s.TokenVerified {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestUpdatePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestProvider(ctrl)

	if _, err := p.UpdatePassword(context.Background(), nil, "longenough1"); !errors.Is(err, onboarding.ErrNoCredential) {
		t.Errorf("expected ErrNoCredential, got %v", err)
	}

	m.kratos.EXPECT().UpdatePassword(gomock.Any(), "id-1", "longenough1").Return(identity("id-1", "a@b.com", "", true), nil)

	i, err := p.UpdatePassword(context.Background(), &onboarding.Session{Identity: &onboarding.Identity{ID: "id-1"}}, "longenough1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if i.ID != "id-1" || i.Email != "a@b.com" {
		t.Errorf("unexpected identity %+v", i)
	}
}

func TestSendOneTimeLink(t *testing.T) {
	t.Run("unregistered address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		p, m := newTestProvider(ctrl)
		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "nobody@example.com").Return("", nil)

		if err := p.SendOneTimeLink(context.Background(), "nobody@example.com", callbackURL); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("registered address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		p, m := newTestProvider(ctrl)

		var stored *types.OneTimeToken

		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "User@example.com").Return("id-1", nil)
		m.storage.EXPECT().CreateOneTimeToken(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tok *types.OneTimeToken) error {
				stored = tok
				return nil
			},
		)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg *mail.Message) error {
				if msg.To != "User@example.com" {
					t.Errorf("unexpected recipient %s", msg.To)
				}
				return nil
			},
		)

		if err := p.SendOneTimeLink(context.Background(), "User@example.com", callbackURL+"?client_id=T1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if stored == nil {
			t.Fatal("expected a token to be stored")
		}

		if stored.Type != types.TokenTypeMagicLink || stored.KratosIdentityID != "id-1" || stored.Email != "user@example.com" || stored.TenantID != "" {
			t.Errorf("unexpected token row %+v", stored)
		}

		if time.Until(stored.ExpiresAt) <= 0 {
			t.Error("expected the token to expire in the future")
		}
	})
}

func TestSendInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newTestProvider(ctrl)

	var hash string

	m.storage.EXPECT().CreateOneTimeToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tok *types.OneTimeToken) error {
			hash = tok.TokenHash
			return nil
		},
	)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *mail.Message) error {
			var link *url.URL
			for _, word := range strings.Fields(msg.Text) {
				if u, err := url.Parse(word); err == nil && u.Scheme == "https" {
					link = u
				}
			}

			if link == nil {
				t.Fatalf("no link in %q", msg.Text)
			}

			q := link.Query()
			if q.Get("type") != "invite" || q.Get("client_id") != "T1" || q.Get("email") != "new@example.com" {
				t.Errorf("unexpected link %s", link)
			}

			if HashToken(q.Get("token")) != hash {
				t.Error("the mailed token does not match the stored hash")
			}
			return nil
		},
	)

	if err := p.SendInvitation(context.Background(), "id-1", "new@example.com", "Acme", "T1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewToken(t *testing.T) {
	token, hash, err := NewToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(token) != 43 {
		t.Errorf("expected 43 characters, got %d", len(token))
	}

	if hash != HashToken(token) || len(hash) != 64 {
		t.Errorf("unexpected hash %s", hash)
	}

	other, _, _ := NewToken()
	if other == token {
		t.Error("expected distinct tokens")
	}
}
