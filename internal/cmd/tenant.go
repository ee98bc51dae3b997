package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admitly/admitctl/internal/authz"
	"github.com/admitly/admitctl/internal/errors"
	"github.com/admitly/admitctl/internal/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Inspect tenant context",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var tenantShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current tenant profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		sess, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated))
		if err != nil {
			return err
		}

		if sess.Tenant == nil {
			t, terr := a.client.TenantMe(cmd.Context())
			if terr != nil {
				return errors.NewTenantLookupError(terr)
			}
			fmt.Fprint(cmd.OutOrStdout(), a.render.Tenant(*t))
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Tenant(*sess.Tenant))
		return nil
	},
}

var tenantPreviewCmd = &cobra.Command{
	Use:   "preview [slug]",
	Short: "Preview a tenant's public profile and branding",
	Long: `Preview a tenant's public profile without logging in.

Without an argument the slug is resolved from the stored session, the
configured default, or the API hostname.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()

		slug := ""
		if len(args) == 1 {
			slug = args[0]
		} else {
			slug = a.resolver.Slug()
		}
		if slug == "" {
			return errors.New(errors.ErrCodeTenantUnresolved, "no tenant slug to preview").
				WithSuggestion("Pass a slug: admitctl tenant preview <slug>").
				WithSuggestion("Or set tenant_slug in config")
		}

		t, err := a.client.TenantPublic(cmd.Context(), slug)
		if err != nil {
			return err
		}

		if t.Branding != nil {
			a.theme.Apply(*t.Branding)
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Tenant(*t))
		return nil
	},
}

var tenantResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show how the tenant slug would be resolved",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()

		slug := a.resolver.Slug()
		if slug == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No tenant slug resolvable.")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Slug: %s\n", slug)
		}
		if derived := tenant.SlugFromHost(a.cfg.APIHost()); derived != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Host-derived candidate: %s\n", derived)
		}
		return nil
	},
}

func init() {
	tenantCmd.AddCommand(tenantShowCmd)
	tenantCmd.AddCommand(tenantPreviewCmd)
	tenantCmd.AddCommand(tenantResolveCmd)
	rootCmd.AddCommand(tenantCmd)
}
