// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

const (
	// HeaderName is the header an upstream proxy uses to pass the authenticated identity ID
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
)

type contextKey struct{}

var identityContextKey = contextKey{}

// FromContext returns the identity ID set by the proxy, "" when absent.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(identityContextKey).(string)
	return id
}

func WithIdentityID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

type Middleware struct {
	trusted bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HTTPMiddleware reads the identity header. When the proxy is not trusted the
// header is dropped and the attempt logged.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderName))
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !m.trusted {
			m.logger.Security().UntrustedClaim(HeaderName, "identity header is not trusted")
			r.Header.Del(HeaderName)
			next.ServeHTTP(w, r)
			return
		}

		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		next.ServeHTTP(w, r.WithContext(WithIdentityID(ctx, userID)))
	})
}

func NewMiddleware(trusted bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		trusted: trusted,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
