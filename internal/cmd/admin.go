package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/authz"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Platform-level administration",
	Long: `Platform-level administration.

These commands operate across tenants and require a platform operator
account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminTenantsCmd = &cobra.Command{
	Use:   "tenants",
	Short: "Manage tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminTenantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.SuperAdmin)); err != nil {
			return err
		}

		tenants, err := a.client.AdminTenants(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(tenants))
		for _, t := range tenants {
			rows = append(rows, []string{t.ID, t.Slug, t.Name, t.Plan})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"ID", "SLUG", "NAME", "PLAN"}, rows))
		return nil
	},
}

var adminTenantsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.SuperAdmin)); err != nil {
			return err
		}

		var t api.Tenant
		t.Name, _ = cmd.Flags().GetString("name")
		t.Slug, _ = cmd.Flags().GetString("slug")
		t.Plan, _ = cmd.Flags().GetString("plan")

		created, err := a.client.CreateTenant(cmd.Context(), t)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Tenant %s created (%s)", created.Slug, created.ID)))
		return nil
	},
}

var adminTenantsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.SuperAdmin)); err != nil {
			return err
		}

		var t api.Tenant
		t.Name, _ = cmd.Flags().GetString("name")
		t.Plan, _ = cmd.Flags().GetString("plan")

		updated, err := a.client.UpdateTenant(cmd.Context(), args[0], t)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Tenant %s updated", updated.ID)))
		return nil
	},
}

var adminDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the platform tenant overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.SuperAdmin)); err != nil {
			return err
		}
		return renderPlatformDashboard(cmd)
	},
}

func renderPlatformDashboard(cmd *cobra.Command) error {
	a := getApp()

	tenants, err := a.client.AdminTenants(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.theme.Title("Platform Overview"))
	fmt.Fprintf(out, "  %s %d\n\n", a.theme.Muted("Tenants:"), len(tenants))

	rows := make([][]string, 0, len(tenants))
	for _, t := range tenants {
		rows = append(rows, []string{t.Slug, t.Name, t.Plan})
	}
	fmt.Fprint(out, a.render.Table([]string{"SLUG", "NAME", "PLAN"}, rows))
	return nil
}

func init() {
	adminTenantsCreateCmd.Flags().String("name", "", "tenant display name")
	adminTenantsCreateCmd.Flags().String("slug", "", "tenant slug")
	adminTenantsCreateCmd.Flags().String("plan", "starter", "tenant plan")
	_ = adminTenantsCreateCmd.MarkFlagRequired("name")
	_ = adminTenantsCreateCmd.MarkFlagRequired("slug")

	adminTenantsUpdateCmd.Flags().String("name", "", "tenant display name")
	adminTenantsUpdateCmd.Flags().String("plan", "", "tenant plan")

	adminTenantsCmd.AddCommand(adminTenantsListCmd)
	adminTenantsCmd.AddCommand(adminTenantsCreateCmd)
	adminTenantsCmd.AddCommand(adminTenantsUpdateCmd)

	adminCmd.AddCommand(adminTenantsCmd)
	adminCmd.AddCommand(adminDashboardCmd)
	rootCmd.AddCommand(adminCmd)
}
