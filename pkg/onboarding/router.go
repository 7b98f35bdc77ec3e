// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

type State string

const (
	StateStart               State = "start"
	StateParsingLink         State = "parsing_link"
	StateEstablishingSession State = "establishing_session"
	StateAwaitingPassword    State = "awaiting_password"
	StateLinkingTenant       State = "linking_tenant"
	StateDone                State = "done"
	StateFailed              State = "failed"
)

type Reason string

const (
	ReasonNoCredential  Reason = "no_credential"
	ReasonProviderError Reason = "provider_error"
)

const (
	PathSetupPassword = "/auth/setup-password"
	PathDashboard     = "/dashboard"
	PathLogin         = "/login"
)

// Flow is one run of the identity linking state machine. It lives for a
// single request and is re-derived from the link on every page load.
type Flow struct {
	State  State
	Reason Reason
	Err    error

	Intent  *Intent
	Session *Session

	Email    string
	TenantID string
	// TenantTrusted is false for a tenant taken from link parameters.
	TenantTrusted bool

	// CanResend offers a fresh one-time link to Email.
	CanResend bool

	Validation *ValidationError
	Link       *LinkResult

	Transitions []State
}

func newFlow() *Flow {
	f := new(Flow)
	f.State = StateStart
	f.Transitions = []State{StateStart}
	return f
}

func (f *Flow) to(s State) {
	f.State = s
	f.Transitions = append(f.Transitions, s)
}

func (f *Flow) fail(reason Reason, err error) {
	f.Reason = reason
	f.Err = err
	f.CanResend = f.Email != ""
	f.to(StateFailed)
}

// Message is the user facing description of the flow outcome.
func (f *Flow) Message() string {
	switch {
	case f.Validation != nil:
		return f.Validation.Message
	case f.State == StateFailed && f.Reason == ReasonProviderError:
		var perr *ProviderError
		if errors.As(f.Err, &perr) && perr.Err != nil {
			return perr.Err.Error()
		}
		return "authentication provider error"
	case f.State == StateFailed && f.Intent != nil && f.Intent.HasToken():
		return "this link is incomplete or no longer valid, request a new link"
	case f.State == StateFailed:
		return "no valid session or link found, request a new link"
	case f.State == StateDone:
		return "account ready"
	default:
		return ""
	}
}

// NextPath is the navigation target for the current state.
func (f *Flow) NextPath() string {
	switch f.State {
	case StateDone:
		return PathDashboard
	case StateAwaitingPassword:
		return f.setupPath(nil)
	case StateFailed:
		if f.Email == "" {
			return PathLogin
		}
		return f.setupPath(url.Values{"error": {string(f.Reason)}})
	default:
		return PathLogin
	}
}

func (f *Flow) setupPath(extra url.Values) string {
	q := url.Values{"from": {"invite"}}
	if f.TenantID != "" {
		q.Set(paramClientID, f.TenantID)
	}
	if f.Email != "" {
		q.Set(paramEmail, f.Email)
	}
	for k, v := range extra {
		q[k] = v
	}

	return PathSetupPassword + "?" + q.Encode()
}

// Router sequences the link parser, session establisher, credential setter
// and tenant linker.
type Router struct {
	establisher EstablisherInterface
	credentials CredentialSetterInterface
	linker      LinkerInterface
	provider    ProviderInterface
	verifier    TokenVerifierInterface

	callbackURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Router) Begin(ctx context.Context, query url.Values, fragment string) *Flow {
	return r.BeginIntent(ctx, ParseLink(query, fragment))
}

// BeginIntent runs ParsingLink and EstablishingSession for an already
// parsed intent, ending in AwaitingPassword or Failed.
func (r *Router) BeginIntent(ctx context.Context, intent *Intent) *Flow {
	ctx, span := r.tracer.Start(ctx, "onboarding.Router.BeginIntent")
	defer span.End()

	f := newFlow()
	f.to(StateParsingLink)

	if intent == nil {
		intent = new(Intent)
	}
	f.Intent = intent
	f.Email = intent.Email

	f.to(StateEstablishingSession)

	result, err := r.establisher.Establish(ctx, intent)
	if err != nil {
		reason := ReasonProviderError
		if errors.Is(err, ErrNoCredential) {
			reason = ReasonNoCredential
		}

		if !intent.TenantFromToken && r.validTenantID(intent.TenantID) {
			f.TenantID = intent.TenantID
		}

		r.logger.Security().AuthnFailure(f.Email, string(reason))
		f.fail(reason, err)
		r.record(f)

		return f
	}

	f.Session = result.Session
	if f.Email == "" {
		f.Email = result.Session.Identity.Email
	}

	f.TenantID, f.TenantTrusted = r.resolveTenant(ctx, intent, result.Session)

	r.logger.Security().AuthnSuccess(result.Session.Identity.ID, result.Method)
	f.to(StateAwaitingPassword)
	r.record(f)

	return f
}

// resolveTenant picks the tenant to link. A link parameter is used as given
// but stays untrusted. A tenant read from the access token payload is used
// only when the issuer accepted that token in this flow or its signature
// verifies. Otherwise the session's own tenant, with the trust it carries.
func (r *Router) resolveTenant(ctx context.Context, intent *Intent, s *Session) (string, bool) {
	tenantID := intent.TenantID
	if !r.validTenantID(tenantID) {
		tenantID = ""
	}

	if tenantID != "" && !intent.TenantFromToken {
		if s.TenantID != "" && s.TenantID != tenantID {
			r.logger.Warnf("link client_id %s differs from tenant %s recorded for identity %s", tenantID, s.TenantID, s.Identity.ID)
		}
		r.logger.Infof("using client_id %s from link parameters for identity %s", tenantID, s.Identity.ID)
		return tenantID, false
	}

	if tenantID != "" {
		if r.tokenTrusted(ctx, intent.AccessToken, s) {
			return tenantID, true
		}
		r.logger.Security().UntrustedClaim("user_metadata.client_id", "access token was not verified")
	}

	if r.validTenantID(s.TenantID) {
		return s.TenantID, s.TenantTrusted
	}

	return "", false
}

// validTenantID drops anything that is not a tenant id before it reaches storage.
func (r *Router) validTenantID(id string) bool {
	if id == "" {
		return false
	}

	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		r.logger.Warnf("ignoring malformed client_id %q", id)
		return false
	}

	return true
}

func (r *Router) tokenTrusted(ctx context.Context, token string, s *Session) bool {
	if s.Method == MethodTokenPair && s.TokenVerified {
		return true
	}

	if r.verifier == nil || token == "" {
		return false
	}

	ok, err := r.verifier.VerifySignature(ctx, token)
	if err != nil {
		r.logger.Debugf("access token signature check failed: %v", err)
		return false
	}

	return ok
}

// SubmitPassword runs AwaitingPassword onwards for the current session.
// tenantID is only used when the session carries no tenant of its own.
func (r *Router) SubmitPassword(ctx context.Context, tenantID, password, confirmPassword string) *Flow {
	ctx, span := r.tracer.Start(ctx, "onboarding.Router.SubmitPassword")
	defer span.End()

	f := newFlow()

	s, err := r.provider.GetSession(ctx)
	if err != nil {
		r.logger.Debugf("failed to read session: %v", err)
	}

	f.to(StateAwaitingPassword)

	if s == nil || s.Identity == nil {
		f.fail(ReasonNoCredential, ErrNoCredential)
		r.record(f)
		return f
	}

	f.Session = s
	f.Email = s.Identity.Email

	switch {
	case r.validTenantID(s.TenantID):
		f.TenantID, f.TenantTrusted = s.TenantID, s.TenantTrusted
	case r.validTenantID(tenantID):
		r.logger.Infof("using client_id %s from request for identity %s", tenantID, s.Identity.ID)
		f.TenantID = tenantID
	}

	identity, err := r.credentials.SetPassword(ctx, s, password, confirmPassword)

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		f.Validation = verr
		f.to(StateAwaitingPassword)
		return f
	case errors.Is(err, ErrNoCredential):
		f.fail(ReasonNoCredential, err)
		r.record(f)
		return f
	case err != nil:
		f.fail(ReasonProviderError, err)
		r.record(f)
		return f
	}

	if identity.Email == "" {
		identity.Email = s.Identity.Email
	}

	if f.TenantID != "" {
		if !f.TenantTrusted {
			r.logger.Security().UntrustedClaim("client_id", "tenant taken from link parameters")
		}
		f.to(StateLinkingTenant)
		result := r.linker.LinkTenant(ctx, identity, f.TenantID)
		f.Link = &result
	}

	f.to(StateDone)
	r.record(f)

	return f
}

// Resend mails a fresh one-time link. Errors are logged and never reported,
// so the caller cannot tell registered addresses apart.
func (r *Router) Resend(ctx context.Context, email, tenantID string) {
	ctx, span := r.tracer.Start(ctx, "onboarding.Router.Resend")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" {
		return
	}

	if err := r.provider.SendOneTimeLink(ctx, email, r.redirectTarget(tenantID)); err != nil {
		r.logger.Errorf("failed to send one-time link: %v", err)
	}
}

func (r *Router) redirectTarget(tenantID string) string {
	if tenantID == "" {
		return r.callbackURL
	}

	u, err := url.Parse(r.callbackURL)
	if err != nil {
		return r.callbackURL
	}

	q := u.Query()
	q.Set(paramClientID, tenantID)
	u.RawQuery = q.Encode()

	return u.String()
}

func (r *Router) record(f *Flow) {
	tags := map[string]string{"state": string(f.State), "reason": string(f.Reason)}

	if err := r.monitor.IncFlowOutcome(tags); err != nil {
		r.logger.Debugf("failed to record flow outcome: %v", err)
	}
}

// NewRouter builds the flow router; verifier may be nil, in which case only
// issuer accepted tokens are trusted for their embedded tenant.
func NewRouter(
	establisher EstablisherInterface,
	credentials CredentialSetterInterface,
	linker LinkerInterface,
	provider ProviderInterface,
	verifier TokenVerifierInterface,
	callbackURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Router {
	r := new(Router)

	r.establisher = establisher
	r.credentials = credentials
	r.linker = linker
	r.provider = provider
	r.verifier = verifier
	r.callbackURL = callbackURL
	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
