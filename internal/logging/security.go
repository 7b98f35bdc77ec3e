// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup  = "sys_startup"
	eventSystemShutdown = "sys_shutdown"
	eventAuthnSuccess   = "authn_login_success"
	eventAuthnFailure   = "authn_login_fail"
	eventAuthzFailure   = "authz_fail"
	eventUntrustedClaim = "input_validation_fail"
	eventAdminAction    = "privilege_permissions_changed"
)

// SecurityLogger writes security events in the OWASP logging vocabulary
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name, level string, fields ...zap.Field) {
	fields = append(fields, zap.String("event", name), zap.String("type", "security"))

	switch level {
	case "warn":
		s.l.Warn(name, fields...)
	default:
		s.l.Info(name, fields...)
	}
}

func (s *SecurityLogger) SystemStartup() {
	s.event(eventSystemStartup, "info")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event(eventSystemShutdown, "info")
}

// AuthnSuccess records a session established for an identity through method.
func (s *SecurityLogger) AuthnSuccess(identityID, method string) {
	s.event(eventAuthnSuccess, "info", zap.String("identity_id", identityID), zap.String("method", method))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.event(eventAuthnFailure, "warn", zap.String("subject", subject), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.event(eventAuthzFailure, "warn", zap.String("subject", subject), zap.String("resource", resource))
}

// UntrustedClaim records a claim that was discarded because its origin could
// not be verified.
func (s *SecurityLogger) UntrustedClaim(claim, reason string) {
	s.event(eventUntrustedClaim, "warn", zap.String("claim", claim), zap.String("reason", reason))
}

func (s *SecurityLogger) AdminAction(actor, action, target string) {
	s.event(eventAdminAction, "info", zap.String("actor", actor), zap.String("action", action), zap.String("target", target))
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named("security")}
}
