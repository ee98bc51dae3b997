package cmd

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/authz"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard for your role",
	Long: `Show the dashboard for your role.

Tenant users see their tenant's admissions summary. Platform operators
without a tenant see the platform tenant overview instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		sess, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated))
		if err != nil {
			return err
		}

		if sess.Role() == api.RoleSuperAdmin && sess.Tenant == nil {
			return renderPlatformDashboard(cmd)
		}
		return renderTenantDashboard(cmd)
	},
}

func renderTenantDashboard(cmd *cobra.Command) error {
	a := getApp()

	report, err := a.client.Dashboard(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.theme.Title("Admissions Dashboard"))
	fmt.Fprintf(out, "  %s %d\n", a.theme.Muted("Total leads:"), report.TotalLeads)
	fmt.Fprintf(out, "  %s %d\n", a.theme.Muted("New leads:"), report.NewLeads)
	fmt.Fprintf(out, "  %s %d\n", a.theme.Muted("Open activities:"), report.OpenActivities)
	fmt.Fprintf(out, "  %s %d\n", a.theme.Muted("Active campaigns:"), report.ActiveCampaigns)

	if len(report.LeadsByStage) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, a.theme.Accent("Leads by stage"))
		stages := make([]string, 0, len(report.LeadsByStage))
		for stage := range report.LeadsByStage {
			stages = append(stages, stage)
		}
		sort.Strings(stages)
		for _, stage := range stages {
			fmt.Fprintf(out, "  %s %d\n", a.theme.Muted(stage+":"), report.LeadsByStage[stage])
		}
	}
	return nil
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Run custom reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantAdmin)); err != nil {
			return err
		}

		query := url.Values{}
		if metric, _ := cmd.Flags().GetString("metric"); metric != "" {
			query.Set("metric", metric)
		}
		if from, _ := cmd.Flags().GetString("from"); from != "" {
			query.Set("from", from)
		}
		if to, _ := cmd.Flags().GetString("to"); to != "" {
			query.Set("to", to)
		}

		report, err := a.client.CustomReport(cmd.Context(), query)
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(report))
		for k := range report {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		rows := make([][]string, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, []string{k, formatReportValue(report[k])})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"METRIC", "VALUE"}, rows))
		return nil
	},
}

func formatReportValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', 2, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func init() {
	reportsCmd.Flags().String("metric", "", "metric name")
	reportsCmd.Flags().String("from", "", "range start (YYYY-MM-DD)")
	reportsCmd.Flags().String("to", "", "range end (YYYY-MM-DD)")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportsCmd)
}
