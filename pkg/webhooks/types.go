// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// KratosIdentity is the after-registration hook payload.
type KratosIdentity struct {
	ID             string         `json:"id"`
	Traits         KratosTraits   `json:"traits"`
	MetadataPublic KratosMetadata `json:"metadata_public"`
}

type KratosTraits struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type KratosMetadata struct {
	ClientID string `json:"client_id,omitempty"`
}

// TokenHookResponse holds the claims hydra merges into the issued tokens.
type TokenHookResponse struct {
	Session struct {
		IDToken     map[string]interface{} `json:"id_token,omitempty"`
		AccessToken map[string]interface{} `json:"access_token,omitempty"`
	} `json:"session"`
}
