// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/client-portal/internal/http/types"
	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
	"github.com/canonical/client-portal/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status       string          `json:"status"`
	Version      string          `json:"version"`
	Dependencies map[string]bool `json:"dependencies,omitempty"`
}

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	s := Status{Status: "ok", Version: version.Version, Dependencies: a.check(ctx)}

	code := http.StatusOK
	for _, up := range s.Dependencies {
		if !up {
			s.Status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	if err := httptypes.WriteJSON(w, code, s); err != nil {
		a.logger.Errorf("failed to encode status: %v", err)
	}
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	if err := httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok", Version: version.Version}); err != nil {
		a.logger.Errorf("failed to encode version: %v", err)
	}
}

// check pings every dependency and reports its availability to the monitor.
func (a *API) check(ctx context.Context) map[string]bool {
	names := make([]string, 0, len(a.dependencies))
	for name := range a.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make(map[string]bool, len(names))
	for _, name := range names {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := a.dependencies[name].Ping(pctx)
		cancel()

		available := 1.0
		if err != nil {
			a.logger.Warnf("dependency %s unavailable: %v", name, err)
			available = 0
		}

		result[name] = err == nil

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); err != nil {
			a.logger.Debugf("error setting dependency metric: %v", err)
		}
	}

	return result
}

// NewAPI probes the named dependencies on every status request.
func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
