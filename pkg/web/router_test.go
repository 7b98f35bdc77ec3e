// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
	"github.com/canonical/client-portal/pkg/status"
)

//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_db.go -source=../../internal/db/interfaces.go DBClientInterface

// okAPI answers 200 on every route the portal mounts writes under.
type okAPI struct{}

func (okAPI) RegisterEndpoints(mux *chi.Mux) {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	mux.Get("/api/v0/admin/users", ok)
	mux.Post("/api/v0/admin/companies", ok)
	mux.Post("/api/v0/admin/invitations", ok)
	mux.Post("/api/v0/auth/password", ok)
}

func newTestRouter(dbClient *MockDBClientInterface, origins []string) http.Handler {
	return NewRouter(
		[]API{okAPI{}},
		Middlewares{},
		map[string]status.PingerInterface{"database": dbClient},
		dbClient,
		origins,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("client-portal"),
		logging.NewNoopLogger(),
	)
}

func TestRouterAdminTransactions(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		wantTx bool
	}{
		{"admin write", http.MethodPost, "/api/v0/admin/companies", true},
		{"admin read", http.MethodGet, "/api/v0/admin/users", false},
		{"invitation", http.MethodPost, "/api/v0/admin/invitations", false},
		{"onboarding write", http.MethodPost, "/api/v0/auth/password", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dbClient := NewMockDBClientInterface(ctrl)
			if tt.wantTx {
				dbClient.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					},
				)
			}

			rr := httptest.NewRecorder()
			newTestRouter(dbClient, []string{"*"}).ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			if rr.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", rr.Code)
			}
		})
	}
}

func TestRouterCORS(t *testing.T) {
	tests := []struct {
		name            string
		origins         []string
		origin          string
		wantOrigin      string
		wantCredentials string
	}{
		{"allowed origin", []string{"https://portal.example.com"}, "https://portal.example.com", "https://portal.example.com", "true"},
		{"unknown origin", []string{"https://portal.example.com"}, "https://evil.example.com", "", ""},
		{"wildcard", []string{"*"}, "https://portal.example.com", "*", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			req := httptest.NewRequest(http.MethodOptions, "/api/v0/admin/companies", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)

			rr := httptest.NewRecorder()
			newTestRouter(NewMockDBClientInterface(ctrl), tt.origins).ServeHTTP(rr, req)

			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("expected allowed origin %q, got %q", tt.wantOrigin, got)
			}

			if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != tt.wantCredentials {
				t.Errorf("expected credentials %q, got %q", tt.wantCredentials, got)
			}
		})
	}
}

func TestRouterStatusAndMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbClient := NewMockDBClientInterface(ctrl)
	dbClient.EXPECT().Ping(gomock.Any()).Return(nil)

	router := newTestRouter(dbClient, []string{"*"})

	for _, path := range []string{"/api/v0/status", "/api/v0/metrics", "/api/v0/version"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		if rr.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, rr.Code)
		}
	}
}
