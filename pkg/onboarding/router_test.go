// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
)

const callbackURL = "https://portal.example.com/auth/callback"

const (
	tenantOne   = "0190c2f4-6f1a-7b3c-9d2e-1a2b3c4d5e01"
	tenantThree = "0190c2f4-6f1a-7b3c-9d2e-1a2b3c4d5e03"
	tenantFive  = "0190c2f4-6f1a-7b3c-9d2e-1a2b3c4d5e05"
	tenantNine  = "0190c2f4-6f1a-7b3c-9d2e-1a2b3c4d5e09"
)

type routerMocks struct {
	provider *MockProviderInterface
	storage  *MockStorageInterface
	verifier *MockTokenVerifierInterface
}

// newTestRouter wires the real establisher, credential setter and linker
// over mocked provider and storage.
func newTestRouter(ctrl *gomock.Controller, withVerifier bool) (*Router, *routerMocks) {
	m := &routerMocks{
		provider: NewMockProviderInterface(ctrl),
		storage:  NewMockStorageInterface(ctrl),
		verifier: NewMockTokenVerifierInterface(ctrl),
	}

	tracer := spanTracer(ctrl)
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	var verifier TokenVerifierInterface
	if withVerifier {
		verifier = m.verifier
	}

	r := NewRouter(
		NewSessionEstablisher(m.provider, tracer, monitor, logger),
		NewCredentialSetter(m.provider, tracer, monitor, logger),
		NewTenantLinker(m.storage, tracer, monitor, logger),
		m.provider,
		verifier,
		callbackURL,
		tracer,
		monitor,
		logger,
	)

	return r, m
}

func assertStates(t *testing.T, f *Flow, expected ...State) {
	t.Helper()

	if !reflect.DeepEqual(f.Transitions, expected) {
		t.Errorf("expected transitions %v, got %v", expected, f.Transitions)
	}
}

func TestScenarioInviteTokenPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRouter(ctrl, false)

	token := jwtWithPayload(`{"sub":"id-1","user_metadata":{"client_id":"0190c2f4-6f1a-7b3c-9d2e-1a2b3c4d5e01"}}`)
	fragment := "access_token=" + token + "&refresh_token=R&type=invite"

	adopted := &Session{
		Identity:      &Identity{ID: "id-1", Email: "new@example.com"},
		AccessToken:   token,
		RefreshToken:  "R",
		Method:        MethodTokenPair,
		TokenVerified: true,
	}

	m.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	m.provider.EXPECT().SetSessionFromTokenPair(gomock.Any(), token, "R").Return(adopted, nil)

	f := r.Begin(context.TODO(), url.Values{}, fragment)

	assertStates(t, f, StateStart, StateParsingLink, StateEstablishingSession, StateAwaitingPassword)

	if f.TenantID != tenantOne || !f.TenantTrusted {
		t.Fatalf("expected trusted tenant %s, got %q trusted=%v", tenantOne, f.TenantID, f.TenantTrusted)
	}

	next, err := url.Parse(f.NextPath())
	if err != nil {
		t.Fatalf("invalid next path: %v", err)
	}
	if next.Path != PathSetupPassword || next.Query().Get("client_id") != tenantOne || next.Query().Get("from") != "invite" || next.Query().Get("email") != "new@example.com" {
		t.Errorf("unexpected next path %s", f.NextPath())
	}

	// the password page runs on the session persisted above
	persisted := &Session{Identity: adopted.Identity, Method: MethodTokenPair, TenantID: tenantOne, TenantTrusted: true}

	m.provider.EXPECT().GetSession(gomock.Any()).Return(persisted, nil)
	m.provider.EXPECT().UpdatePassword(gomock.Any(), persisted, "longenough1").Return(&Identity{ID: "id-1", Email: "new@example.com"}, nil)
	m.storage.EXPECT().UpsertMembership(gomock.Any(), tenantOne, "id-1", "member").Return(true, nil)
	m.storage.EXPECT().EnsureGlobalRole(gomock.Any(), "id-1", "user").Return(nil)
	m.storage.EXPECT().ClaimInvitation(gomock.Any(), tenantOne, "new@example.com", "id-1").Return(true, nil)

	f = r.SubmitPassword(context.TODO(), "", "longenough1", "longenough1")

	assertStates(t, f, StateStart, StateAwaitingPassword, StateLinkingTenant, StateDone)

	if f.Link == nil || !f.Link.MembershipCreated || !f.Link.RoleEnsured || !f.Link.InvitationClaimed {
		t.Errorf("unexpected link result %+v", f.Link)
	}

	if f.NextPath() != PathDashboard {
		t.Errorf("expected %s, got %s", PathDashboard, f.NextPath())
	}
}

func TestScenarioRecoveryToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRouter(ctrl, false)

	verified := &Session{Identity: &Identity{ID: "id-2", Email: "old@example.com"}, Method: MethodOneTimeToken}

	m.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	m.provider.EXPECT().VerifyOneTimeToken(gomock.Any(), "X", TokenTypeRecovery).Return(verified, nil)

	f := r.Begin(context.TODO(), url.Values{"token": {"X"}, "type": {"recovery"}}, "")

	assertStates(t, f, StateStart, StateParsingLink, StateEstablishingSession, StateAwaitingPassword)

	if f.TenantID != "" {
		t.Errorf("expected no tenant, got %s", f.TenantID)
	}

	m.provider.EXPECT().GetSession(gomock.Any()).Return(verified, nil)
	m.provider.EXPECT().UpdatePassword(gomock.Any(), verified, "longenough1").Return(verified.Identity, nil)

	// no storage expectations: the linker must not run without a tenant
	f = r.SubmitPassword(context.TODO(), "", "longenough1", "longenough1")

	assertStates(t, f, StateStart, StateAwaitingPassword, StateDone)

	if f.Link != nil {
		t.Errorf("expected the linker not to run, got %+v", f.Link)
	}
}

func TestScenarioEmailOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRouter(ctrl, false)

	m.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)

	f := r.Begin(context.TODO(), url.Values{"email": {"a@b.com"}}, "")

	assertStates(t, f, StateStart, StateParsingLink, StateEstablishingSession, StateFailed)

	if f.Reason != ReasonNoCredential || !errors.Is(f.Err, ErrNoCredential) {
		t.Errorf("expected no credential failure, got %s %v", f.Reason, f.Err)
	}

	if !f.CanResend {
		t.Error("expected the resend affordance")
	}

	next, _ := url.Parse(f.NextPath())
	if next.Path != PathSetupPassword || next.Query().Get("error") != string(ReasonNoCredential) {
		t.Errorf("unexpected next path %s", f.NextPath())
	}

	m.provider.EXPECT().SendOneTimeLink(gomock.Any(), "a@b.com", callbackURL).Return(nil)

	r.Resend(context.TODO(), "a@b.com", "")
}

func TestBeginWithoutAnything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRouter(ctrl, false)

	m.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)

	f := r.Begin(context.TODO(), nil, "")

	if f.State != StateFailed || f.Reason != ReasonNoCredential {
		t.Errorf("expected failed(no_credential), got %s(%s)", f.State, f.Reason)
	}

	if f.CanResend {
		t.Error("resend needs an email")
	}

	if f.NextPath() != PathLogin {
		t.Errorf("expected %s, got %s", PathLogin, f.NextPath())
	}
}

func TestBeginProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRouter(ctrl, false)

	m.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	m.provider.EXPECT().VerifyOneTimeToken(gomock.Any(), "X", TokenTypeInvite).Return(nil, errors.New("token has expired"))

	f := r.Begin(context.TODO(), url.Values{"token": {"X"}, "type": {"invite"}, "email": {"a@b.com"}, "client_id": {tenantOne}}, "")

	if f.State != StateFailed || f.Reason != ReasonProviderError {
		t.Fatalf("expected failed(provider_error), got %s(%s)", f.State, f.Reason)
	}

	if f.Message() != "token has expired" {
		t.Errorf("expected the provider message, got %q", f.Message())
	}

	if !f.CanResend || f.TenantID != tenantOne {
		t.Errorf("expected resend for a@b.com in %s, got %+v", tenantOne, f)
	}
}

func TestTenantFromUnverifiedToken(t *testing.T) {
	token := jwtWithPayload(`{"user_metadata":{"client_id":"0190c2f4-6f1a-7b3c-9d2e-1a2b3c4d5e09"}}`)
	existing := &Session{Identity: &Identity{ID: "id-1", Email: "user@example.com"}, Method: MethodExistingSession}

	tests := []struct {
		name         string
		withVerifier bool
		setupMocks   func(*routerMocks)
		expected     string
	}{
		{
			name:     "dropped without a verifier",
			expected: "",
		},
		{
			name:         "dropped when the signature does not verify",
			withVerifier: true,
			setupMocks: func(m *routerMocks) {
				m.verifier.EXPECT().VerifySignature(gomock.Any(), token).Return(false, errors.New("signature mismatch"))
			},
			expected: "",
		},
		{
			name:         "kept when the signature verifies",
			withVerifier: true,
			setupMocks: func(m *routerMocks) {
				m.verifier.EXPECT().VerifySignature(gomock.Any(), token).Return(true, nil)
			},
			expected: tenantNine,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, m := newTestRouter(ctrl, test.withVerifier)

			m.provider.EXPECT().GetSession(gomock.Any()).Return(existing, nil)
			if test.setupMocks != nil {
				test.setupMocks(m)
			}

			// an access token alone is not a pair, the session comes from the cookie
			f := r.Begin(context.TODO(), nil, "access_token="+token)

			if f.State != StateAwaitingPassword {
				t.Fatalf("expected awaiting_password, got %s", f.State)
			}

			if f.TenantID != test.expected {
				t.Errorf("expected tenant %q, got %q", test.expected, f.TenantID)
			}

			if f.TenantTrusted != (test.expected != "") {
				t.Errorf("unexpected trust %v", f.TenantTrusted)
			}
		})
	}
}

func TestTenantRecordedOnSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRouter(ctrl, false)

	verified := &Session{Identity: &Identity{ID: "id-1"}, Method: MethodOneTimeToken, TenantID: tenantThree, TenantTrusted: true}

	m.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	m.provider.EXPECT().VerifyOneTimeToken(gomock.Any(), "X", TokenTypeInvite).Return(verified, nil)

	f := r.Begin(context.TODO(), url.Values{"token": {"X"}}, "")

	if f.TenantID != tenantThree || !f.TenantTrusted {
		t.Errorf("expected trusted tenant %s, got %q trusted=%v", tenantThree, f.TenantID, f.TenantTrusted)
	}
}

func TestSubmitPassword(t *testing.T) {
	s := &Session{Identity: &Identity{ID: "id-1", Email: "user@example.com"}, Method: MethodOneTimeToken}

	tests := []struct {
		name       string
		tenantID   string
		password   string
		confirm    string
		setupMocks func(*routerMocks)
		states     []State
		reason     Reason
		field      string
	}{
		{
			name:     "no session",
			password: "longenough1",
			confirm:  "longenough1",
			setupMocks: func(m *routerMocks) {
				m.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
			},
			states: []State{StateStart, StateAwaitingPassword, StateFailed},
			reason: ReasonNoCredential,
		},
		{
			name:     "session lookup error",
			password: "longenough1",
			confirm:  "longenough1",
			setupMocks: func(m *routerMocks) {
				m.provider.EXPECT().GetSession(gomock.Any()).Return(nil, errors.New("boom"))
			},
			states: []State{StateStart, StateAwaitingPassword, StateFailed},
			reason: ReasonNoCredential,
		},
		{
			name:     "mismatch re-prompts",
			password: "longenough1",
			confirm:  "different",
			setupMocks: func(m *routerMocks) {
				m.provider.EXPECT().GetSession(gomock.Any()).Return(s, nil)
			},
			states: []State{StateStart, StateAwaitingPassword, StateAwaitingPassword},
			field:  "confirm_password",
		},
		{
			name:     "too short re-prompts",
			password: "short1",
			confirm:  "short1",
			setupMocks: func(m *routerMocks) {
				m.provider.EXPECT().GetSession(gomock.Any()).Return(s, nil)
			},
			states: []State{StateStart, StateAwaitingPassword, StateAwaitingPassword},
			field:  "password",
		},
		{
			name:     "provider failure",
			password: "longenough1",
			confirm:  "longenough1",
			setupMocks: func(m *routerMocks) {
				m.provider.EXPECT().GetSession(gomock.Any()).Return(s, nil)
				m.provider.EXPECT().UpdatePassword(gomock.Any(), s, "longenough1").Return(nil, errors.New("breached password"))
			},
			states: []State{StateStart, StateAwaitingPassword, StateFailed},
			reason: ReasonProviderError,
		},
		{
			name:     "tenant from request when the session has none",
			tenantID: tenantFive,
			password: "longenough1",
			confirm:  "longenough1",
			setupMocks: func(m *routerMocks) {
				m.provider.EXPECT().GetSession(gomock.Any()).Return(s, nil)
				m.provider.EXPECT().UpdatePassword(gomock.Any(), s, "longenough1").Return(&Identity{ID: "id-1"}, nil)
				m.storage.EXPECT().UpsertMembership(gomock.Any(), tenantFive, "id-1", "member").Return(true, nil)
				m.storage.EXPECT().EnsureGlobalRole(gomock.Any(), "id-1", "user").Return(nil)
				m.storage.EXPECT().ClaimInvitation(gomock.Any(), tenantFive, "user@example.com", "id-1").Return(false, nil)
			},
			states: []State{StateStart, StateAwaitingPassword, StateLinkingTenant, StateDone},
		},
		{
			name:     "linker failures still reach done",
			tenantID: tenantFive,
			password: "longenough1",
			confirm:  "longenough1",
			setupMocks: func(m *routerMocks) {
				m.provider.EXPECT().GetSession(gomock.Any()).Return(s, nil)
				m.provider.EXPECT().UpdatePassword(gomock.Any(), s, "longenough1").Return(s.Identity, nil)
				m.storage.EXPECT().UpsertMembership(gomock.Any(), tenantFive, "id-1", "member").Return(false, errors.New("db down"))
				m.storage.EXPECT().EnsureGlobalRole(gomock.Any(), "id-1", "user").Return(errors.New("db down"))
				m.storage.EXPECT().ClaimInvitation(gomock.Any(), tenantFive, "user@example.com", "id-1").Return(false, errors.New("db down"))
			},
			states: []State{StateStart, StateAwaitingPassword, StateLinkingTenant, StateDone},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, m := newTestRouter(ctrl, false)
			test.setupMocks(m)

			f := r.SubmitPassword(context.TODO(), test.tenantID, test.password, test.confirm)

			assertStates(t, f, test.states...)

			if f.Reason != test.reason {
				t.Errorf("expected reason %q, got %q", test.reason, f.Reason)
			}

			if test.field != "" {
				if f.Validation == nil || f.Validation.Field != test.field {
					t.Errorf("expected validation error on %s, got %+v", test.field, f.Validation)
				}
			}
		})
	}
}

func TestResendSwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRouter(ctrl, false)

	m.provider.EXPECT().SendOneTimeLink(gomock.Any(), "unknown@example.com", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, target string) error {
			u, err := url.Parse(target)
			if err != nil || !strings.HasPrefix(target, callbackURL) || u.Query().Get("client_id") != tenantOne {
				t.Errorf("unexpected redirect target %s", target)
			}
			return errors.New("mail provider down")
		},
	)

	r.Resend(context.TODO(), " unknown@example.com ", tenantOne)

	// blank email sends nothing
	r.Resend(context.TODO(), " ", "")
}

func TestFlowOutcomeIsRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	tracer := spanTracer(ctrl)
	logger := logging.NewNoopLogger()

	r := NewRouter(
		NewSessionEstablisher(mockProvider, tracer, mockMonitor, logger),
		NewCredentialSetter(mockProvider, tracer, mockMonitor, logger),
		NewTenantLinker(NewMockStorageInterface(ctrl), tracer, mockMonitor, logger),
		mockProvider,
		nil,
		callbackURL,
		tracer,
		mockMonitor,
		logger,
	)

	mockProvider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)
	mockMonitor.EXPECT().IncFlowOutcome(map[string]string{"state": "failed", "reason": "no_credential"}).Return(nil)

	r.Begin(context.TODO(), nil, "")
}

func TestLinkTenantStaysUntrustedUntilLinked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)
	tracer := spanTracer(ctrl)
	monitor := monitoring.NewNoopMonitor("test")
	noop := logging.NewNoopLogger()

	r := NewRouter(
		NewSessionEstablisher(mockProvider, tracer, monitor, noop),
		NewCredentialSetter(mockProvider, tracer, monitor, noop),
		NewTenantLinker(mockStorage, tracer, monitor, noop),
		mockProvider,
		nil,
		callbackURL,
		tracer,
		monitor,
		mockLogger,
	)

	mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockSecurity.EXPECT().AuthnSuccess("id-1", MethodExistingSession).AnyTimes()

	existing := &Session{Identity: &Identity{ID: "id-1", Email: "user@example.com"}, Method: MethodExistingSession}
	mockProvider.EXPECT().GetSession(gomock.Any()).Return(existing, nil)

	f := r.Begin(context.TODO(), url.Values{"client_id": {tenantOne}}, "")

	if f.State != StateAwaitingPassword || f.TenantID != tenantOne || f.TenantTrusted {
		t.Fatalf("expected untrusted tenant %s awaiting password, got %s %q trusted=%v", tenantOne, f.State, f.TenantID, f.TenantTrusted)
	}

	// the next request reads the tenant back from the cookie with its trust
	persisted := &Session{Identity: existing.Identity, Method: MethodExistingSession, TenantID: f.TenantID, TenantTrusted: f.TenantTrusted}

	mockProvider.EXPECT().GetSession(gomock.Any()).Return(persisted, nil)
	mockProvider.EXPECT().UpdatePassword(gomock.Any(), persisted, "longenough1").Return(existing.Identity, nil)
	mockSecurity.EXPECT().UntrustedClaim("client_id", gomock.Any()).Times(1)
	mockStorage.EXPECT().UpsertMembership(gomock.Any(), tenantOne, "id-1", "member").Return(true, nil)
	mockStorage.EXPECT().EnsureGlobalRole(gomock.Any(), "id-1", "user").Return(nil)
	mockStorage.EXPECT().ClaimInvitation(gomock.Any(), tenantOne, "user@example.com", "id-1").Return(true, nil)

	f = r.SubmitPassword(context.TODO(), "", "longenough1", "longenough1")

	if f.State != StateDone || f.TenantTrusted {
		t.Errorf("expected done with an untrusted tenant, got %s trusted=%v", f.State, f.TenantTrusted)
	}
}

func TestMalformedTenantNeverReachesStorage(t *testing.T) {
	existing := &Session{Identity: &Identity{ID: "id-1", Email: "user@example.com"}, Method: MethodExistingSession}

	t.Run("link parameter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r, m := newTestRouter(ctrl, false)
		m.provider.EXPECT().GetSession(gomock.Any()).Return(existing, nil)

		f := r.Begin(context.TODO(), url.Values{"client_id": {"acme'; drop table tenants"}}, "")

		if f.State != StateAwaitingPassword || f.TenantID != "" {
			t.Errorf("expected no tenant, got %s %q", f.State, f.TenantID)
		}
	})

	t.Run("failed link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r, m := newTestRouter(ctrl, false)
		m.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)

		f := r.Begin(context.TODO(), url.Values{"email": {"a@b.com"}, "client_id": {"T1"}}, "")

		if f.State != StateFailed || f.TenantID != "" {
			t.Errorf("expected failure without tenant, got %s %q", f.State, f.TenantID)
		}
	})

	t.Run("password request and cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r, m := newTestRouter(ctrl, false)

		s := &Session{Identity: existing.Identity, Method: MethodExistingSession, TenantID: "not-a-uuid"}
		m.provider.EXPECT().GetSession(gomock.Any()).Return(s, nil)
		m.provider.EXPECT().UpdatePassword(gomock.Any(), s, "longenough1").Return(existing.Identity, nil)

		// no storage expectations: nothing is linked
		f := r.SubmitPassword(context.TODO(), "acme", "longenough1", "longenough1")

		assertStates(t, f, StateStart, StateAwaitingPassword, StateDone)
	})
}

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		query    url.Values
		expected string
	}{
		{
			name:     "link without credentials",
			query:    url.Values{"email": {"a@b.com"}},
			expected: "no valid session or link found, request a new link",
		},
		{
			name:     "access token without refresh token",
			fragment: "access_token=" + jwtWithPayload(`{"sub":"id-1"}`),
			expected: "this link is incomplete or no longer valid, request a new link",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, m := newTestRouter(ctrl, false)
			m.provider.EXPECT().GetSession(gomock.Any()).Return(nil, nil)

			f := r.Begin(context.TODO(), test.query, test.fragment)

			if f.Reason != ReasonNoCredential {
				t.Fatalf("expected no_credential, got %s", f.Reason)
			}

			if f.Message() != test.expected {
				t.Errorf("expected %q, got %q", test.expected, f.Message())
			}
		})
	}
}
