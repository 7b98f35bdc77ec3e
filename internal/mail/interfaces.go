// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type MailerInterface interface {
	Send(ctx context.Context, msg *Message) error
}

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}
