// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"
	"strings"

	httptypes "github.com/canonical/client-portal/internal/http/types"
	"github.com/canonical/client-portal/internal/identity"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/session"
	"github.com/canonical/client-portal/internal/storage"
	"github.com/canonical/client-portal/internal/tracing"
	"github.com/canonical/client-portal/internal/types"
)

type Middleware struct {
	verifier TokenVerifierInterface
	roles    RoleReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate resolves the caller capabilities from, in order, the browser
// session, the proxy identity header and a bearer token. Anonymous requests
// pass through; an invalid bearer token is rejected.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			var caps *Capabilities

			if s := session.FromContext(ctx); s != nil && s.IdentityID != "" {
				caps = &Capabilities{IdentityID: s.IdentityID, Email: s.Email, Source: SourceSession}
			} else if id := identity.FromContext(ctx); id != "" {
				caps = &Capabilities{IdentityID: id, Source: SourceHeader}
			} else if token, found := m.getBearerToken(r.Header); found {
				subject, err := m.verifier.VerifyToken(ctx, token)
				if err != nil {
					m.logger.Debugf("JWT verification failed: %v", err)
					m.unauthorizedResponse(w, "invalid token")
					return
				}

				// a token that passed the subject or scope policy belongs to a trusted service client
				caps = &Capabilities{IdentityID: subject, Role: types.GlobalRoleAdmin, Source: SourceBearer}
			}

			if caps != nil && caps.Role == "" {
				caps.Role = m.role(ctx, caps.IdentityID)
			}

			if caps != nil {
				ctx = WithCapabilities(ctx, caps)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthenticated rejects anonymous requests.
func (m *Middleware) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserID(r.Context()); !ok {
			m.unauthorizedResponse(w, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects callers without the admin global role.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caps := FromContext(r.Context())
		if caps == nil {
			m.unauthorizedResponse(w, "authentication required")
			return
		}

		if !caps.IsAdmin() {
			m.logger.Security().AuthzFailure(caps.IdentityID, r.Method+" "+r.URL.Path)
			if err := httptypes.WriteError(w, http.StatusForbidden, "admin role required"); err != nil {
				m.logger.Errorf("failed to encode forbidden response: %v", err)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

// role defaults to user when the identity has no recorded global role.
func (m *Middleware) role(ctx context.Context, userID string) string {
	role, err := m.roles.GetGlobalRole(ctx, userID)

	if errors.Is(err, storage.ErrNotFound) {
		return types.GlobalRoleUser
	}

	if err != nil {
		m.logger.Errorf("failed to read global role of %s: %v", userID, err)
		return types.GlobalRoleUser
	}

	return role
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	if err := httptypes.WriteError(w, http.StatusUnauthorized, message); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

func NewMiddleware(verifier TokenVerifierInterface, roles RoleReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		roles:    roles,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
