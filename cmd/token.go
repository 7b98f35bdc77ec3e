// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get a service access token using the client credentials flow",
	Long:  `Get a service access token. The token authenticates against the admin API when its subject is in JWT_ALLOWED_SUBJECTS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if clientID == "" || clientSecret == "" {
			return fmt.Errorf("--oauth-client-id and --oauth-client-secret are required")
		}

		ts, err := clientCredentials(cmd.Context())
		if err != nil {
			return err
		}

		token, err := ts.Token()
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		fmt.Println(token.AccessToken)
		return nil
	},
}

// clientCredentials resolves the token endpoint, through discovery when only
// the issuer is known.
func clientCredentials(ctx context.Context) (oauth2.TokenSource, error) {
	endpoint := tokenURL

	if endpoint == "" {
		if issuerURL == "" {
			return nil, fmt.Errorf("either --token-url or --issuer-url must be provided")
		}

		provider, err := oidc.NewProvider(ctx, issuerURL)
		if err != nil {
			return nil, fmt.Errorf("failed to discover issuer %s: %w", issuerURL, err)
		}
		endpoint = provider.Endpoint().TokenURL
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     endpoint,
		Scopes:       scopes,
	}

	return config.TokenSource(ctx), nil
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	rootCmd.PersistentFlags().StringVar(&clientID, "oauth-client-id", "", "OAuth2 client ID of the service client")
	rootCmd.PersistentFlags().StringVar(&clientSecret, "oauth-client-secret", "", "OAuth2 client secret of the service client")
	rootCmd.PersistentFlags().StringVar(&tokenURL, "token-url", "", "Token URL")
	rootCmd.PersistentFlags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	rootCmd.PersistentFlags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")
}
