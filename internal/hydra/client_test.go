// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package hydra

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

func newTestClient(cfg Config) *Client {
	return NewClient(cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestUnconfiguredClient(t *testing.T) {
	c := newTestClient(Config{})

	if _, err := c.Introspect(context.Background(), "token"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := c.Refresh(context.Background(), "refresh"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := c.Exchange(context.Background(), "code"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestIntrospect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/oauth2/introspect" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = r.ParseForm()
		active := r.PostForm.Get("token") == "good"

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"active":    active,
			"sub":       "identity-1",
			"client_id": "portal",
		})
	}))
	defer srv.Close()

	c := newTestClient(Config{AdminURL: srv.URL})

	i, err := c.Introspect(context.Background(), "good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !i.Active || i.Subject != "identity-1" || i.ClientID != "portal" {
		t.Errorf("unexpected introspection: %+v", i)
	}

	i, err = c.Introspect(context.Background(), "bad")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.Active {
		t.Error("expected inactive token")
	}
}

func TestRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("grant_type") != "refresh_token" || r.PostForm.Get("refresh_token") != "refresh-1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "access-2",
			"refresh_token": "refresh-2",
			"token_type":    "bearer",
			"expires_in":    3600,
		})
	}))
	defer srv.Close()

	c := newTestClient(Config{TokenURL: srv.URL, ClientID: "portal", ClientSecret: "secret"})

	token, err := c.Refresh(context.Background(), "refresh-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.AccessToken != "access-2" || token.RefreshToken != "refresh-2" {
		t.Errorf("unexpected token: %+v", token)
	}
}
