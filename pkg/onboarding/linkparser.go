// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// link parameters
const (
	paramCode         = "code"
	paramToken        = "token"
	paramInviteToken  = "invite_token"
	paramType         = "type"
	paramClientID     = "client_id"
	paramEmail        = "email"
	paramAccessToken  = "access_token"
	paramRefreshToken = "refresh_token"
)

// ParseLink builds an Intent from the query and fragment of a link.
// Token fields prefer the fragment, the tenant prefers the query. It has no
// side effects and never fails: anything it cannot read is left empty.
func ParseLink(query url.Values, fragment string) *Intent {
	frag := parseFragment(fragment)

	intent := new(Intent)
	intent.AccessToken = first(frag, query, paramAccessToken)
	intent.RefreshToken = first(frag, query, paramRefreshToken)
	intent.OneTimeToken = first(frag, query, paramToken)
	intent.TokenType = strings.ToLower(first(frag, query, paramType))
	intent.Code = value(query, paramCode)
	intent.Email = first(query, frag, paramEmail)
	intent.TenantID = first(query, frag, paramClientID)

	if intent.OneTimeToken == "" {
		if t := first(query, frag, paramInviteToken); t != "" {
			intent.OneTimeToken = t
			intent.TokenType = TokenTypeInvite
		}
	}

	if intent.TenantID == "" && intent.AccessToken != "" {
		if tenantID := tenantFromJWT(intent.AccessToken); tenantID != "" {
			intent.TenantID = tenantID
			intent.TenantFromToken = true
		}
	}

	return intent
}

// ParseURL is ParseLink over a raw URL, used for links posted by the browser.
func ParseURL(raw string) *Intent {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		// salvage whatever sits after the separators
		query, fragment := raw, ""
		if i := strings.Index(query, "#"); i >= 0 {
			query, fragment = query[:i], query[i+1:]
		}
		if i := strings.Index(query, "?"); i >= 0 {
			query = query[i+1:]
		} else {
			query = ""
		}
		values, _ := url.ParseQuery(query)
		return ParseLink(values, fragment)
	}

	return ParseLink(u.Query(), u.EscapedFragment())
}

func parseFragment(fragment string) url.Values {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return url.Values{}
	}

	// ParseQuery keeps every well formed pair even when it returns an error
	values, _ := url.ParseQuery(fragment)
	return values
}

func value(v url.Values, key string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(v.Get(key))
}

func first(primary, secondary url.Values, key string) string {
	if s := value(primary, key); s != "" {
		return s
	}
	return value(secondary, key)
}

// tenantFromJWT reads user_metadata.client_id from the payload of a JWT
// shaped token. The signature is not checked here.
func tenantFromJWT(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ""
	}

	payload, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(parts[1])
	if err != nil {
		return ""
	}

	var claims struct {
		UserMetadata metadataClaims `json:"user_metadata"`
		Ext          struct {
			UserMetadata metadataClaims `json:"user_metadata"`
		} `json:"ext"`
	}

	if err := json.Unmarshal(payload, &claims); err != nil {
		return ""
	}

	if id := claims.UserMetadata.clientID(); id != "" {
		return id
	}

	return claims.Ext.UserMetadata.clientID()
}

type metadataClaims struct {
	ClientID any `json:"client_id"`
}

func (m metadataClaims) clientID() string {
	s, _ := m.ClientID.(string)
	return strings.TrimSpace(s)
}
