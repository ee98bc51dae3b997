package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	flagAPIURL     string
	flagTenantSlug string
	flagNoInput    bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "admitctl",
	Short: "Command-line client for the admissions CRM",
	Long: `admitctl is a command-line client for the multi-tenant admissions CRM.

It signs you in to a tenant, keeps the session across invocations, and
scopes every request to your tenant. Tenant branding flows through all
output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "CRM API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagTenantSlug, "tenant", "", "default tenant slug (a stored login wins)")
	rootCmd.PersistentFlags().BoolVar(&flagNoInput, "no-input", false, "disable prompts and spinners")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
