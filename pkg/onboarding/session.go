// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

// attempt tries one way of obtaining a session. applies reports whether the
// intent carries what the attempt needs.
type attempt struct {
	name    string
	applies func(*Intent) bool
	run     func(context.Context, *Intent) (*Session, error)
}

// SessionEstablisher runs the ordered session attempts.
type SessionEstablisher struct {
	provider ProviderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *SessionEstablisher) attempts() []attempt {
	return []attempt{
		{
			name:    MethodExistingSession,
			applies: func(*Intent) bool { return true },
			run: func(ctx context.Context, _ *Intent) (*Session, error) {
				return s.provider.GetSession(ctx)
			},
		},
		{
			name:    MethodCode,
			applies: func(i *Intent) bool { return i.Code != "" },
			run: func(ctx context.Context, i *Intent) (*Session, error) {
				return s.provider.ExchangeCode(ctx, i.Code)
			},
		},
		{
			name:    MethodOneTimeToken,
			applies: func(i *Intent) bool { return i.OneTimeToken != "" && oneTimeTokenType(i.TokenType) != "" },
			run: func(ctx context.Context, i *Intent) (*Session, error) {
				return s.provider.VerifyOneTimeToken(ctx, i.OneTimeToken, oneTimeTokenType(i.TokenType))
			},
		},
		{
			name:    MethodTokenPair,
			applies: func(i *Intent) bool { return i.AccessToken != "" && i.RefreshToken != "" },
			run: func(ctx context.Context, i *Intent) (*Session, error) {
				return s.provider.SetSessionFromTokenPair(ctx, i.AccessToken, i.RefreshToken)
			},
		},
	}
}

// Establish returns the first session obtained from the attempts, in order.
// A failed attempt is logged and the next one tried; only the error of the
// last applicable attempt is returned, as a *ProviderError. An existing
// session lookup never surfaces its error. ErrNoCredential is returned when
// nothing produced a session.
func (s *SessionEstablisher) Establish(ctx context.Context, intent *Intent) (*SessionResult, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.SessionEstablisher.Establish")
	defer span.End()

	if intent == nil {
		intent = new(Intent)
	}

	all := s.attempts()

	last := -1
	for n, a := range all {
		if a.applies(intent) {
			last = n
		}
	}

	result := new(SessionResult)
	var lastErr error

	for n, a := range all {
		if !a.applies(intent) {
			continue
		}

		session, err := a.run(ctx, intent)

		if err == nil && session != nil && session.Identity != nil {
			if session.Method == "" {
				session.Method = a.name
			}
			result.Session = session
			result.Method = session.Method
			return result, nil
		}

		if err == nil {
			// nothing to adopt, e.g. no browser session yet
			continue
		}

		if a.name == MethodExistingSession {
			s.logger.Debugf("ignoring session lookup failure: %v", err)
			continue
		}

		result.Skipped = append(result.Skipped, a.name)
		lastErr = err

		if n == last {
			break
		}

		s.logger.Warnf("session attempt %s failed, trying next: %v", a.name, err)
	}

	if lastErr != nil {
		var perr *ProviderError
		if errors.As(lastErr, &perr) {
			return nil, perr
		}
		return nil, &ProviderError{Op: fmt.Sprintf("%s attempt", result.Skipped[len(result.Skipped)-1]), Err: lastErr}
	}

	return nil, ErrNoCredential
}

// oneTimeTokenType maps the link type to the verification type, "" when the
// type cannot be redeemed as a one-time token.
func oneTimeTokenType(t string) string {
	switch t {
	case "", TokenTypeInvite:
		return TokenTypeInvite
	case TokenTypeRecovery:
		return TokenTypeRecovery
	case TokenTypeEmail, TokenTypeMagicLink:
		return TokenTypeMagicLink
	default:
		return ""
	}
}

func NewSessionEstablisher(provider ProviderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionEstablisher {
	s := new(SessionEstablisher)

	s.provider = provider
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
