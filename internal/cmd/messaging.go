package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/admitly/admitctl/internal/authz"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List lead messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated)); err != nil {
			return err
		}

		messages, err := a.client.Messages(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(messages))
		for _, m := range messages {
			rows = append(rows, []string{m.ID, m.LeadID, m.Channel, m.Direction, truncate(m.Body, 40)})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"ID", "LEAD", "CHANNEL", "DIR", "BODY"}, rows))
		return nil
	},
}

var callsCmd = &cobra.Command{
	Use:   "calls",
	Short: "List logged calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated)); err != nil {
			return err
		}

		calls, err := a.client.Calls(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(calls))
		for _, c := range calls {
			rows = append(rows, []string{c.ID, c.LeadID, c.Status, strconv.Itoa(c.Duration) + "s"})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"ID", "LEAD", "STATUS", "DURATION"}, rows))
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List message templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantAdmin)); err != nil {
			return err
		}

		templates, err := a.client.Templates(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(templates))
		for _, t := range templates {
			rows = append(rows, []string{t.ID, t.Name, t.Channel, truncate(t.Subject, 40)})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"ID", "NAME", "CHANNEL", "SUBJECT"}, rows))
		return nil
	},
}

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Manage bulk campaigns",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantAdmin)); err != nil {
			return err
		}

		campaigns, err := a.client.Campaigns(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(campaigns))
		for _, c := range campaigns {
			scheduled := ""
			if c.ScheduledAt != nil {
				scheduled = c.ScheduledAt.Format("2006-01-02 15:04")
			}
			rows = append(rows, []string{c.ID, c.Name, c.Status, scheduled})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"ID", "NAME", "STATUS", "SCHEDULED"}, rows))
		return nil
	},
}

var campaignsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a scheduled campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantAdmin)); err != nil {
			return err
		}

		c, err := a.client.CancelCampaign(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Campaign %s cancelled", c.ID)))
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func init() {
	rootCmd.AddCommand(messagesCmd)
	rootCmd.AddCommand(callsCmd)
	rootCmd.AddCommand(templatesCmd)

	campaignsCmd.AddCommand(campaignsListCmd)
	campaignsCmd.AddCommand(campaignsCancelCmd)
	rootCmd.AddCommand(campaignsCmd)
}
