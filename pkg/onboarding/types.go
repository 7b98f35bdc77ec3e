// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

// token types accepted in links
const (
	TokenTypeInvite    = "invite"
	TokenTypeRecovery  = "recovery"
	TokenTypeEmail     = "email"
	TokenTypeMagicLink = "magiclink"
)

// methods a session can be established with
const (
	MethodExistingSession = "existing_session"
	MethodCode            = "code"
	MethodOneTimeToken    = "one_time_token"
	MethodTokenPair       = "token_pair"
)

// Intent is the canonical record extracted from an inbound link.
// Absent signals are empty strings.
type Intent struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
	OneTimeToken string `json:"-"`
	Code         string `json:"-"`
	TokenType    string `json:"type,omitempty"`
	Email        string `json:"email,omitempty"`
	TenantID     string `json:"client_id,omitempty"`

	// TenantFromToken is set when TenantID was read from the unverified
	// access token payload rather than from the link parameters.
	TenantFromToken bool `json:"-"`
}

func (i *Intent) HasToken() bool {
	return i.Code != "" || i.OneTimeToken != "" || i.AccessToken != "" || i.RefreshToken != ""
}

type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session proves requests are made on behalf of Identity.
type Session struct {
	Identity     *Identity
	AccessToken  string
	RefreshToken string
	Method       string

	// TokenVerified is true when the issuer accepted AccessToken during this flow.
	TokenVerified bool

	// TenantID is the tenant carried by the session: recorded server side on
	// the redeemed one-time token or in the identity metadata, or kept in the
	// cookie from an earlier step of the flow.
	TenantID string
	// TenantTrusted is false when TenantID came from link parameters.
	TenantTrusted bool
}

// SessionResult is the outcome of a successful Establish.
type SessionResult struct {
	Session *Session
	Method  string
	// Skipped lists the attempts that applied but failed before the one that succeeded.
	Skipped []string
}

// LinkResult reports which of the three linker writes went through.
type LinkResult struct {
	TenantID          string `json:"client_id"`
	MembershipCreated bool   `json:"membership_created"`
	MembershipLinked  bool   `json:"membership_linked"`
	RoleEnsured       bool   `json:"role_ensured"`
	InvitationClaimed bool   `json:"invitation_claimed"`

	Failure *LinkingPartialFailure `json:"-"`
}
