// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/client-portal/internal/logging"
)

// NoopMailer only logs the outgoing message, used when no mail provider is configured.
type NoopMailer struct {
	logger logging.LoggerInterface
}

func (m *NoopMailer) Send(_ context.Context, msg *Message) error {
	m.logger.Infof("mail delivery disabled, dropping %q to %s", msg.Subject, msg.To)
	return nil
}

func NewNoopMailer(logger logging.LoggerInterface) *NoopMailer {
	return &NoopMailer{logger: logger}
}
