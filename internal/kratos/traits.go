// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"errors"

	ory "github.com/ory/client-go"
)

var ErrIdentityNotFound = errors.New("identity not found")

func stringFrom(m interface{}, key string) string {
	values, ok := m.(map[string]interface{})
	if !ok {
		return ""
	}

	v, _ := values[key].(string)
	return v
}

// Email extracts the email trait.
func Email(i *ory.Identity) string {
	if i == nil {
		return ""
	}
	return stringFrom(i.Traits, "email")
}

func Name(i *ory.Identity) string {
	if i == nil {
		return ""
	}
	return stringFrom(i.Traits, "name")
}

// PendingTenantID returns the tenant recorded in the public metadata at invitation time.
func PendingTenantID(i *ory.Identity) string {
	if i == nil {
		return ""
	}
	return stringFrom(i.MetadataPublic, "client_id")
}

// IsActive treats a missing state as active, matching Kratos defaults.
func IsActive(i *ory.Identity) bool {
	if i == nil {
		return false
	}
	return i.State == nil || *i.State == stateActive
}
