// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/client-portal/internal/types"
	"github.com/canonical/client-portal/pkg/admin"
)

var inviteRequest admin.InviteRequest

var inviteCmd = &cobra.Command{
	Use:   "invite [email]",
	Short: "Invite a user into a company",
	Long:  `Invite a user into an existing company (--client-id) or a new one (--company). The user is mailed a link into the portal.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		inviteRequest.Email = args[0]

		if inviteRequest.Company == "" && inviteRequest.ClientID == "" {
			return fmt.Errorf("one of --company or --client-id is required")
		}

		result := new(admin.InviteResult)
		client, err := newPortalClient(ctx)
		if err != nil {
			return err
		}

		if err := client.do(ctx, http.MethodPost, "/api/v0/admin/invitations", &inviteRequest, result); err != nil {
			return fmt.Errorf("failed to invite user: %w", err)
		}

		kind := "new"
		if result.Existing {
			kind = "existing"
		}

		fmt.Printf("Invited %s user %s (ID: %s) into company %s\n", kind, args[0], result.UserID, result.TenantID)
		return nil
	},
}

var listInvitationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending invitations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		path := "/api/v0/admin/invitations"
		if inviteRequest.ClientID != "" {
			path += "?" + url.Values{"client_id": {inviteRequest.ClientID}}.Encode()
		}

		var invitations []*types.PendingInvitation
		client, err := newPortalClient(ctx)
		if err != nil {
			return err
		}

		if err := client.do(ctx, http.MethodGet, path, nil, &invitations); err != nil {
			return fmt.Errorf("failed to list invitations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tCLIENT_ID\tROLE\tEXPIRES_AT\tCLAIMED")
		for _, i := range invitations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", i.Email, i.TenantID, i.Role, i.ExpiresAt.Format(time.RFC3339), i.ClaimedAt != nil)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inviteCmd)
	inviteCmd.AddCommand(listInvitationsCmd)

	inviteCmd.Flags().StringVar(&inviteRequest.Name, "name", "", "Full name of the user")
	inviteCmd.Flags().StringVar(&inviteRequest.Company, "company", "", "Create a new company with this name")
	inviteCmd.PersistentFlags().StringVar(&inviteRequest.ClientID, "client-id", "", "ID of an existing company")
}
