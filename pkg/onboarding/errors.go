// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedLink is part of the taxonomy but never returned: the link
	// parser degrades to a partial Intent instead.
	ErrMalformedLink = errors.New("malformed link")
	ErrNoCredential  = errors.New("no usable session or token found")
)

// ProviderError wraps a failure from the identity or data provider.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// LinkingPartialFailure collects the tenant linker writes that failed.
// It is logged, never returned to a caller.
type LinkingPartialFailure struct {
	TenantID   string
	IdentityID string
	Errs       map[string]error
}

func (e *LinkingPartialFailure) Error() string {
	steps := make([]string, 0, len(e.Errs))
	for _, step := range linkSteps {
		if err, ok := e.Errs[step]; ok {
			steps = append(steps, fmt.Sprintf("%s: %v", step, err))
		}
	}

	return fmt.Sprintf("linking identity %s to tenant %s partially failed: %s", e.IdentityID, e.TenantID, strings.Join(steps, "; "))
}

func (e *LinkingPartialFailure) Unwrap() []error {
	errs := make([]error, 0, len(e.Errs))
	for _, step := range linkSteps {
		if err, ok := e.Errs[step]; ok {
			errs = append(errs, err)
		}
	}
	return errs
}
