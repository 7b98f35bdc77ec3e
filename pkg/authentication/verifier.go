// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

var (
	ErrNoAccessPolicy = errors.New("no service access policy configured")
	ErrNotAllowed     = errors.New("subject not allowed and required scope missing")
)

// serviceClaims are the claims a client credentials access token carries.
type serviceClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c *serviceClaims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

// JWTVerifier checks tokens against the issuer keys. VerifyToken also applies
// the service client policy, VerifySignature does not.
type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier

	allowedSubjects []string
	requiredScope   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	claims := new(serviceClaims)
	if err := token.Claims(claims); err != nil {
		return "", fmt.Errorf("failed to read token claims: %w", err)
	}

	if err := v.authorize(claims); err != nil {
		v.logger.Security().AuthzFailure(claims.Subject, "service_api_access")
		return "", err
	}

	return claims.Subject, nil
}

// authorize lets a token through on either an allowed subject or the
// required scope.
func (v *JWTVerifier) authorize(c *serviceClaims) error {
	if len(v.allowedSubjects) == 0 && v.requiredScope == "" {
		return ErrNoAccessPolicy
	}

	if slices.Contains(v.allowedSubjects, c.Subject) {
		return nil
	}

	if v.requiredScope != "" && c.hasScope(v.requiredScope) {
		return nil
	}

	return ErrNotAllowed
}

// VerifySignature checks the token against the issuer keys, expiry included.
func (v *JWTVerifier) VerifySignature(ctx context.Context, rawToken string) (bool, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifySignature")
	defer span.End()

	if _, err := v.verifier.Verify(ctx, rawToken); err != nil {
		return false, err
	}

	return true, nil
}

func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.allowedSubjects = allowedSubjects
	v.requiredScope = requiredScope
	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
