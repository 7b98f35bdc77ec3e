// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	httptypes "github.com/canonical/client-portal/internal/http/types"
	"github.com/canonical/client-portal/internal/identity"
)

// portalClient calls the admin API the way a service client would.
type portalClient struct {
	endpoint string
	userID   string
	client   *http.Client
}

func newPortalClient(ctx context.Context) (*portalClient, error) {
	c := new(portalClient)

	c.endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(c.endpoint, "http") {
		c.endpoint = "http://" + c.endpoint
	}

	c.userID = userID
	c.client = http.DefaultClient

	switch {
	case accessToken != "":
		c.client = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}))
	case clientID != "" && clientSecret != "":
		ts, err := clientCredentials(ctx)
		if err != nil {
			return nil, err
		}
		c.client = oauth2.NewClient(ctx, ts)
	}

	return c, nil
}

// do sends in as json and decodes the data field of the answer into out.
func (c *portalClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set(identity.HeaderName, c.userID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		e := new(httptypes.ErrorResponse)
		if err := json.NewDecoder(resp.Body).Decode(e); err != nil || e.Message == "" {
			return fmt.Errorf("api error (status %d)", resp.StatusCode)
		}
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, e.Message)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	envelope := new(struct {
		Data json.RawMessage `json:"data"`
	})
	if err := json.NewDecoder(resp.Body).Decode(envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}

	return nil
}
