// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

var ErrNoIssuer = errors.New("issuer is required for JWT authentication")

var keysClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// NewJWTAuthenticator fetches the issuer keys from jwksURL when set, through
// OIDC discovery otherwise. Audience is not checked, service tokens are
// minted for the issuer's own clients.
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*JWTVerifier, error) {
	if issuer == "" {
		return nil, ErrNoIssuer
	}

	ctx = oidc.ClientContext(ctx, keysClient)
	config := &oidc.Config{SkipClientIDCheck: true}

	var verifier *oidc.IDTokenVerifier

	if jwksURL != "" {
		logger.Infof("JWT verification against JWKS %s", jwksURL)
		verifier = oidc.NewVerifier(issuer, oidc.NewRemoteKeySet(ctx, jwksURL), config)
	} else {
		provider, err := oidc.NewProvider(ctx, issuer)
		if err != nil {
			return nil, fmt.Errorf("oidc discovery for %s: %w", issuer, err)
		}

		logger.Infof("JWT verification against discovered issuer %s", issuer)
		verifier = provider.Verifier(config)
	}

	if len(allowedSubjects) == 0 && requiredScope == "" {
		logger.Warn("no JWT_ALLOWED_SUBJECTS or JWT_REQUIRED_SCOPE, every bearer token will be refused")
	}

	return NewJWTVerifier(verifier, allowedSubjects, requiredScope, tracer, monitor, logger), nil
}
