// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/client-portal/internal/db"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
	"github.com/canonical/client-portal/pkg/metrics"
	"github.com/canonical/client-portal/pkg/status"
)

const (
	adminPrefix       = "/api/v0/admin/"
	invitationsPrefix = "/api/v0/admin/invitations"
)

// API is a set of endpoints mounted on the root router.
type API interface {
	RegisterEndpoints(mux *chi.Mux)
}

// Middlewares resolve who is calling, in the order they are applied.
type Middlewares struct {
	Session      func(http.Handler) http.Handler
	Identity     func(http.Handler) http.Handler
	Capabilities func(http.Handler) http.Handler
}

func NewRouter(
	apis []API,
	mws Middlewares,
	dependencies map[string]status.PingerInterface,
	dbClient db.DBClientInterface,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	for _, mw := range []func(http.Handler) http.Handler{mws.Session, mws.Identity, mws.Capabilities} {
		if mw != nil {
			middlewares = append(middlewares, mw)
		}
	}

	if dbClient != nil {
		middlewares = append(middlewares, adminTransactions(dbClient, logger))
	}

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dependencies, tracer, monitor, logger).RegisterEndpoints(router)

	for _, api := range apis {
		api.RegisterEndpoints(router)
	}

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

// adminTransactions runs admin writes in one database transaction. Invitations
// are left out, they mail a link halfway through and keep what they wrote.
func adminTransactions(dbClient db.DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	tx := db.TransactionMiddleware(dbClient, logger)

	return func(next http.Handler) http.Handler {
		wrapped := tx(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, adminPrefix) && !strings.HasPrefix(r.URL.Path, invitationsPrefix) {
				wrapped.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
