package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/authz"
	"github.com/admitly/admitctl/internal/branding"
	"github.com/admitly/admitctl/internal/errors"
)

var brandingCmd = &cobra.Command{
	Use:   "branding",
	Short: "View and manage tenant branding",
	Long: `View and manage the tenant's branding.

Branding is derived data owned by the tenant record. Changing it is a
tenant setting and requires the tenant's own administrator; platform
operators manage tenants through 'admitctl admin tenants' instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var brandingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective branding",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		sess, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated))
		if err != nil {
			return err
		}

		effective := a.theme.Snapshot()
		fmt.Fprint(cmd.OutOrStdout(), a.render.Branding(effective))
		if sess.Tenant == nil {
			def := branding.PlatformDefault()
			if effective.PrimaryColor == def.PrimaryColor {
				fmt.Fprintln(cmd.OutOrStdout(), a.theme.Muted("(platform default palette)"))
			}
		}
		return nil
	},
}

var brandingSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update branding fields",
	Long: `Update one or more branding fields.

Only the flags you pass are sent; unmentioned fields keep their current
value on the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantOwner)); err != nil {
			return err
		}

		var b api.Branding
		b.PrimaryColor, _ = cmd.Flags().GetString("primary")
		b.SecondaryColor, _ = cmd.Flags().GetString("secondary")
		b.LogoURL, _ = cmd.Flags().GetString("logo")
		b.Theme, _ = cmd.Flags().GetString("theme")

		if b == (api.Branding{}) {
			return errors.NewConfigInvalidError("nothing to update; pass at least one of --primary, --secondary, --logo, --theme", nil)
		}

		t, err := a.client.UpdateTenantBranding(cmd.Context(), b)
		if err != nil {
			return err
		}

		if t.Branding != nil {
			a.theme.Apply(*t.Branding)
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Success("Branding updated."))
		fmt.Fprint(cmd.OutOrStdout(), a.render.Branding(a.theme.Snapshot()))
		return nil
	},
}

var brandingPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Write the tenant's branding to a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantAdmin)); err != nil {
			return err
		}

		t, err := a.client.TenantMe(cmd.Context())
		if err != nil {
			return errors.NewTenantLookupError(err)
		}

		b := api.Branding{}
		if t.Branding != nil {
			b = *t.Branding
		}
		out, err := yaml.Marshal(b)
		if err != nil {
			return err
		}

		file, _ := cmd.Flags().GetString("file")
		if file == "" || file == "-" {
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		}
		if err := os.WriteFile(file, out, 0o644); err != nil {
			return errors.NewStateWriteError(file, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Branding written to %s", file)))
		return nil
	},
}

var brandingPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Apply branding from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantOwner)); err != nil {
			return err
		}

		file, _ := cmd.Flags().GetString("file")
		raw, err := os.ReadFile(file)
		if err != nil {
			return errors.NewStateReadError(file, err)
		}

		var b api.Branding
		if err := yaml.Unmarshal(raw, &b); err != nil {
			return errors.NewConfigInvalidError(fmt.Sprintf("invalid branding file %s", file), err)
		}

		t, err := a.client.UpdateTenantBranding(cmd.Context(), b)
		if err != nil {
			return err
		}

		if t.Branding != nil {
			a.theme.Apply(*t.Branding)
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Success("Branding pushed."))
		return nil
	},
}

func init() {
	brandingSetCmd.Flags().String("primary", "", "primary brand color (hex)")
	brandingSetCmd.Flags().String("secondary", "", "secondary brand color (hex)")
	brandingSetCmd.Flags().String("logo", "", "logo URL")
	brandingSetCmd.Flags().String("theme", "", "theme name")

	brandingPullCmd.Flags().String("file", "-", "output file ('-' for stdout)")
	brandingPushCmd.Flags().String("file", "branding.yaml", "branding YAML file to apply")

	brandingCmd.AddCommand(brandingShowCmd)
	brandingCmd.AddCommand(brandingSetCmd)
	brandingCmd.AddCommand(brandingPullCmd)
	brandingCmd.AddCommand(brandingPushCmd)
	rootCmd.AddCommand(brandingCmd)
}
