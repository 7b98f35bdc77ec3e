// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

var linkTemplate = template.Must(template.New("link").Parse(`<p>{{.Intro}}</p>
<p><a href="{{.Link}}">{{.Action}}</a></p>
<p>If the button does not work, copy this address into your browser:<br>{{.Link}}</p>
`))

type linkData struct {
	Intro  string
	Action string
	Link   string
}

// InvitationMessage is sent to a newly invited identity.
func InvitationMessage(to, company, link string) (*Message, error) {
	intro := "You have been invited to the client portal."
	if company != "" {
		intro = fmt.Sprintf("You have been invited to join %s on the client portal.", company)
	}

	return linkMessage(to, "You're invited to the client portal", intro, "Accept invitation", link)
}

// SignInMessage carries a magic link or a recovery link.
func SignInMessage(to, link string) (*Message, error) {
	return linkMessage(to, "Your sign-in link", "Use the link below to sign in and finish setting up your account.", "Sign in", link)
}

func linkMessage(to, subject, intro, action, link string) (*Message, error) {
	var html bytes.Buffer
	if err := linkTemplate.Execute(&html, linkData{Intro: intro, Action: action, Link: link}); err != nil {
		return nil, fmt.Errorf("failed to render mail: %w", err)
	}

	return &Message{
		To:      to,
		Subject: subject,
		Text:    fmt.Sprintf("%s\n\n%s\n", intro, link),
		HTML:    html.String(),
	}, nil
}
