// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	HydraAdminURL     string `envconfig:"hydra_admin_url"`
	HydraTokenURL     string `envconfig:"hydra_token_url"`
	HydraClientID     string `envconfig:"hydra_client_id"`
	HydraClientSecret string `envconfig:"hydra_client_secret"`

	// JWTIssuer enables signature verification of access tokens carried by
	// legacy invite links, and bearer authentication of service clients.
	JWTIssuer          string   `envconfig:"jwt_issuer"`
	JWKSURL            string   `envconfig:"jwks_url"`
	JWTAllowedSubjects []string `envconfig:"jwt_allowed_subjects"`
	JWTRequiredScope   string   `envconfig:"jwt_required_scope"`

	PublicURL string `envconfig:"public_url" default:"http://localhost:8080"`

	SessionSecret string        `envconfig:"session_secret" required:"true"`
	SessionMaxAge time.Duration `envconfig:"session_max_age" default:"24h"`

	OneTimeTokenLifetime time.Duration `envconfig:"one_time_token_lifetime" default:"1h"`
	InvitationLifetime   time.Duration `envconfig:"invitation_lifetime" default:"168h"`

	SendgridAPIKey  string `envconfig:"sendgrid_api_key"`
	MailFromAddress string `envconfig:"mail_from_address" default:"no-reply@example.com"`
	MailFromName    string `envconfig:"mail_from_name" default:"Client Portal"`

	TrustIdentityHeader bool     `envconfig:"trust_identity_header" default:"false"`
	CORSAllowedOrigins  []string `envconfig:"cors_allowed_origins" default:"*"`
}
