// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNoopTracerStartsSpans(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNoopTracerStartsSpans")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.IsRecording() {
		t.Error("noop span must not record")
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, "otel:4317", "", nil)

	if !cfg.Enabled || cfg.OtelGRPCEndpoint != "otel:4317" {
		t.Errorf("unexpected config %+v", cfg)
	}

	if cfg.ServiceName != defaultServiceName {
		t.Errorf("expected service name %q, got %q", defaultServiceName, cfg.ServiceName)
	}

	if NewNoopConfig().Enabled {
		t.Error("noop config must be disabled")
	}
}

func TestSpanNameSkipsQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/auth/callback?token=secret&type=invite", nil)

	if got := spanName("", req); got != "GET /auth/callback" {
		t.Errorf("unexpected span name %q", got)
	}
}
