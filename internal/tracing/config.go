// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/client-portal/internal/logging"
)

const defaultServiceName = "client-portal"

// Config picks the span exporter: OTLP over gRPC, else OTLP over HTTP, else
// stdout when neither endpoint is set.
type Config struct {
	ServiceName      string
	OtelGRPCEndpoint string
	OtelHTTPEndpoint string
	Enabled          bool

	Logger logging.LoggerInterface
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	c := NewNoopConfig()

	c.Enabled = enabled
	c.OtelGRPCEndpoint = otelGRPCEndpoint
	c.OtelHTTPEndpoint = otelHTTPEndpoint
	c.Logger = logger

	return c
}

func NewNoopConfig() *Config {
	c := new(Config)
	c.ServiceName = defaultServiceName

	return c
}
