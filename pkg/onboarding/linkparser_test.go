// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"encoding/base64"
	"math/rand"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtWithPayload(payload string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`)) + "." +
		enc.EncodeToString([]byte(payload)) + "." +
		enc.EncodeToString([]byte("signature"))
}

func TestParseLinkEmpty(t *testing.T) {
	intent := ParseLink(nil, "")

	require.NotNil(t, intent)
	assert.Equal(t, Intent{}, *intent)
	assert.False(t, intent.HasToken())
}

func TestParseLinkQuery(t *testing.T) {
	query := url.Values{
		"code":      {"auth-code"},
		"token":     {"ott"},
		"type":      {"Recovery"},
		"client_id": {"tenant-1"},
		"email":     {"user@example.com"},
	}

	intent := ParseLink(query, "")

	assert.Equal(t, "auth-code", intent.Code)
	assert.Equal(t, "ott", intent.OneTimeToken)
	assert.Equal(t, TokenTypeRecovery, intent.TokenType)
	assert.Equal(t, "tenant-1", intent.TenantID)
	assert.Equal(t, "user@example.com", intent.Email)
	assert.False(t, intent.TenantFromToken)
}

func TestParseLinkFragmentTakesPrecedenceForTokens(t *testing.T) {
	query := url.Values{
		"access_token": {"query-access"},
		"token":        {"query-token"},
		"type":         {"recovery"},
		"client_id":    {"query-tenant"},
	}
	fragment := "#access_token=frag-access&refresh_token=frag-refresh&token=frag-token&type=invite&client_id=frag-tenant"

	intent := ParseLink(query, fragment)

	assert.Equal(t, "frag-access", intent.AccessToken)
	assert.Equal(t, "frag-refresh", intent.RefreshToken)
	assert.Equal(t, "frag-token", intent.OneTimeToken)
	assert.Equal(t, TokenTypeInvite, intent.TokenType)
	assert.Equal(t, "query-tenant", intent.TenantID, "tenant is preferred from the query")
}

func TestParseLinkTenantFromFragmentWhenQueryHasNone(t *testing.T) {
	intent := ParseLink(url.Values{}, "client_id=frag-tenant&email=a%40b.com")

	assert.Equal(t, "frag-tenant", intent.TenantID)
	assert.Equal(t, "a@b.com", intent.Email)
}

func TestParseLinkInviteToken(t *testing.T) {
	intent := ParseLink(url.Values{"invite_token": {"inv"}, "type": {"recovery"}}, "")

	assert.Equal(t, "inv", intent.OneTimeToken)
	assert.Equal(t, TokenTypeInvite, intent.TokenType)

	intent = ParseLink(url.Values{"invite_token": {"inv"}, "token": {"tok"}, "type": {"recovery"}}, "")

	assert.Equal(t, "tok", intent.OneTimeToken)
	assert.Equal(t, TokenTypeRecovery, intent.TokenType)
}

func TestParseLinkTenantFromJWT(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{
			name:     "user_metadata client_id",
			token:    jwtWithPayload(`{"sub":"id-1","user_metadata":{"client_id":"T1"}}`),
			expected: "T1",
		},
		{
			name:     "hydra ext claims",
			token:    jwtWithPayload(`{"sub":"id-1","ext":{"user_metadata":{"client_id":"T2"}}}`),
			expected: "T2",
		},
		{
			name:     "padded segment",
			token:    "e30." + base64.URLEncoding.EncodeToString([]byte(`{"user_metadata":{"client_id":"T3"}}`)) + ".c2ln",
			expected: "T3",
		},
		{
			name:  "no client_id",
			token: jwtWithPayload(`{"sub":"id-1","user_metadata":{}}`),
		},
		{
			name:  "client_id is not a string",
			token: jwtWithPayload(`{"user_metadata":{"client_id":42}}`),
		},
		{
			name:  "user_metadata is not an object",
			token: jwtWithPayload(`{"user_metadata":"T1"}`),
		},
		{
			name:  "payload is not json",
			token: jwtWithPayload(`user_metadata.client_id=T1`),
		},
		{
			name:  "payload is not base64",
			token: "header.!!!not-base64!!!.signature",
		},
		{
			name:  "two segments",
			token: "header.payload",
		},
		{
			name:  "opaque token",
			token: "ory_at_abcdef",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			intent := ParseLink(nil, "access_token="+url.QueryEscape(test.token)+"&refresh_token=R")

			require.NotNil(t, intent)
			assert.Equal(t, test.token, intent.AccessToken)
			assert.Equal(t, "R", intent.RefreshToken)
			assert.Equal(t, test.expected, intent.TenantID)
			assert.Equal(t, test.expected != "", intent.TenantFromToken)
		})
	}
}

func TestParseLinkQueryTenantWinsOverJWT(t *testing.T) {
	token := jwtWithPayload(`{"user_metadata":{"client_id":"from-token"}}`)

	intent := ParseLink(url.Values{"client_id": {"from-query"}}, "access_token="+token)

	assert.Equal(t, "from-query", intent.TenantID)
	assert.False(t, intent.TenantFromToken)
}

func TestParseLinkNeverFailsOnArbitraryInput(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	alphabet := []byte("abcXYZ019-_.=&#%+/ {}\":")

	random := func() string {
		b := make([]byte, r.Intn(64))
		for i := range b {
			b[i] = alphabet[r.Intn(len(alphabet))]
		}
		return string(b)
	}

	for i := 0; i < 500; i++ {
		fragment := random()
		token := random() + "." + random() + "." + random()

		assert.NotPanics(t, func() {
			intent := ParseLink(url.Values{"access_token": {token}}, fragment)
			require.NotNil(t, intent)
		})

		assert.NotPanics(t, func() {
			require.NotNil(t, ParseURL("http://portal/auth/callback?"+random()+"#"+fragment))
		})
	}
}

func TestParseURL(t *testing.T) {
	token := jwtWithPayload(`{"user_metadata":{"client_id":"T1"}}`)

	intent := ParseURL("https://portal.example.com/login#access_token=" + token + "&refresh_token=R&type=invite")

	assert.Equal(t, token, intent.AccessToken)
	assert.Equal(t, "R", intent.RefreshToken)
	assert.Equal(t, TokenTypeInvite, intent.TokenType)
	assert.Equal(t, "T1", intent.TenantID)
	assert.True(t, intent.TenantFromToken)
}

func TestParseURLSalvagesInvalidURL(t *testing.T) {
	intent := ParseURL("http://portal/%zz?token=abc&type=recovery#email=a%40b.com")

	assert.Equal(t, "abc", intent.OneTimeToken)
	assert.Equal(t, TokenTypeRecovery, intent.TokenType)
	assert.Equal(t, "a@b.com", intent.Email)
}
