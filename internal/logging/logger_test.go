// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerSecurityEvents(t *testing.T) {
	logger := NewNoopLogger()

	logger.Security().SystemStartup()
	logger.Security().AuthnSuccess("identity-1", "one_time_token")
	logger.Security().AuthnFailure("user@example.com", "no_credential")
	logger.Security().UntrustedClaim("user_metadata.client_id", "signature not verified")
	logger.Security().AdminAction("admin-1", "invite_user", "user@example.com")
	logger.Security().SystemShutdown()

	if err := logger.Sync(); err != nil {
		t.Errorf("unexpected error syncing noop logger: %v", err)
	}
}
