// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

const minPasswordLength = 8

type CredentialSetter struct {
	provider ProviderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SetPassword validates the pair and commits it to the identity behind session.
// It knows nothing about tenants.
func (c *CredentialSetter) SetPassword(ctx context.Context, session *Session, newPassword, confirmPassword string) (*Identity, error) {
	ctx, span := c.tracer.Start(ctx, "onboarding.CredentialSetter.SetPassword")
	defer span.End()

	if err := ValidatePassword(newPassword, confirmPassword); err != nil {
		return nil, err
	}

	if session == nil || session.Identity == nil {
		return nil, ErrNoCredential
	}

	identity, err := c.provider.UpdatePassword(ctx, session, newPassword)
	if err != nil {
		c.logger.Errorf("failed to update password for identity %s: %v", session.Identity.ID, err)

		var perr *ProviderError
		if errors.As(err, &perr) {
			return nil, perr
		}
		return nil, &ProviderError{Op: "update password", Err: err}
	}

	if identity == nil {
		identity = session.Identity
	}

	return identity, nil
}

// ValidatePassword checks confirmation first, then length in characters.
func ValidatePassword(password, confirm string) error {
	if password != confirm {
		return &ValidationError{Field: "confirm_password", Message: "passwords do not match"}
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}

	return nil
}

func NewCredentialSetter(provider ProviderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *CredentialSetter {
	c := new(CredentialSetter)

	c.provider = provider
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
