// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
	"github.com/canonical/client-portal/internal/tracing"
)

var _ MailerInterface = (*SendgridMailer)(nil)

type SendgridMailer struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *SendgridMailer) Send(ctx context.Context, msg *Message) error {
	ctx, span := m.tracer.Start(ctx, "mail.SendgridMailer.Send")
	defer span.End()

	if msg.To == "" {
		return fmt.Errorf("recipient address is empty")
	}

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(m.fromName, m.fromAddr),
		msg.Subject,
		sgmail.NewEmail("", msg.To),
		msg.Text,
		msg.HTML,
	)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	m.logger.Debugf("mail sent: status=%d subject=%s", response.StatusCode, msg.Subject)

	return nil
}

func NewSendgridMailer(apiKey, fromName, fromAddr string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SendgridMailer {
	m := new(SendgridMailer)

	m.client = sendgrid.NewSendClient(apiKey)
	m.fromName = fromName
	m.fromAddr = fromAddr

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
