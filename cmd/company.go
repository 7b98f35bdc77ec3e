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
	"github.com/canonical/client-portal/pkg/tenant"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage client companies",
}

var companyRequest tenant.CompanyRequest

var createCompanyCmd = &cobra.Command{
	Use:   "create [company]",
	Short: "Create a new company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		companyRequest.Company = args[0]

		company := new(types.Tenant)
		client, err := newPortalClient(ctx)
		if err != nil {
			return err
		}

		if err := client.do(ctx, http.MethodPost, "/api/v0/admin/companies", &companyRequest, company); err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		fmt.Printf("Company created: %s (ID: %s)\n", company.Company, company.ID)
		return nil
	},
}

var deleteCompanyCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client, err := newPortalClient(ctx)
		if err != nil {
			return err
		}

		if err := client.do(ctx, http.MethodDelete, "/api/v0/admin/companies/"+url.PathEscape(args[0]), nil, nil); err != nil {
			return fmt.Errorf("failed to delete company: %w", err)
		}

		fmt.Printf("Company deleted: %s\n", args[0])
		return nil
	},
}

var listCompaniesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all companies",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var companies []*types.Tenant
		client, err := newPortalClient(ctx)
		if err != nil {
			return err
		}

		if err := client.do(ctx, http.MethodGet, "/api/v0/admin/companies", nil, &companies); err != nil {
			return fmt.Errorf("failed to list companies: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tCOMPANY\tNAME\tCREATED_AT")
		for _, c := range companies {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Company, c.Name, c.CreatedAt.Format(time.RFC3339))
		}
		w.Flush()
		return nil
	},
}

var listCompanyUsersCmd = &cobra.Command{
	Use:   "users [id]",
	Short: "List the users of a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var users []*types.TenantUser
		client, err := newPortalClient(ctx)
		if err != nil {
			return err
		}

		if err := client.do(ctx, http.MethodGet, "/api/v0/admin/companies/"+url.PathEscape(args[0])+"/users", nil, &users); err != nil {
			return fmt.Errorf("failed to list company users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.UserID, u.Email, u.Role)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(companyCmd)
	companyCmd.AddCommand(createCompanyCmd)
	companyCmd.AddCommand(deleteCompanyCmd)
	companyCmd.AddCommand(listCompaniesCmd)
	companyCmd.AddCommand(listCompanyUsersCmd)

	createCompanyCmd.Flags().StringVar(&companyRequest.Name, "name", "", "Display name, defaults to the company")
	createCompanyCmd.Flags().StringVar(&companyRequest.Email, "email", "", "Contact email")
	createCompanyCmd.Flags().StringVar(&companyRequest.Phone, "phone", "", "Contact phone")
	createCompanyCmd.Flags().StringVar(&companyRequest.Description, "description", "", "Description")
}
