package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/authz"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Work with admissions leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated)); err != nil {
			return err
		}

		query := url.Values{}
		if stage, _ := cmd.Flags().GetString("stage"); stage != "" {
			query.Set("stageId", stage)
		}
		if search, _ := cmd.Flags().GetString("search"); search != "" {
			query.Set("search", search)
		}

		leads, err := a.client.Leads(cmd.Context(), query)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(leads))
		for _, l := range leads {
			rows = append(rows, []string{l.ID, l.Name, l.Email, l.Source, l.StageID})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"ID", "NAME", "EMAIL", "SOURCE", "STAGE"}, rows))
		return nil
	},
}

var leadsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a lead",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated)); err != nil {
			return err
		}

		var l api.Lead
		l.Name, _ = cmd.Flags().GetString("name")
		l.Email, _ = cmd.Flags().GetString("email")
		l.Phone, _ = cmd.Flags().GetString("phone")
		l.Source, _ = cmd.Flags().GetString("source")
		l.StageID, _ = cmd.Flags().GetString("stage")

		created, err := a.client.CreateLead(cmd.Context(), l)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Lead %s created (%s)", created.Name, created.ID)))
		return nil
	},
}

var leadsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated)); err != nil {
			return err
		}

		var l api.Lead
		l.Name, _ = cmd.Flags().GetString("name")
		l.Email, _ = cmd.Flags().GetString("email")
		l.Phone, _ = cmd.Flags().GetString("phone")
		l.StageID, _ = cmd.Flags().GetString("stage")
		l.AssignedTo, _ = cmd.Flags().GetString("assign")

		updated, err := a.client.UpdateLead(cmd.Context(), args[0], l)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Lead %s updated", updated.ID)))
		return nil
	},
}

var leadsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated)); err != nil {
			return err
		}

		if err := a.client.DeleteLead(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Lead %s deleted", args[0])))
		return nil
	},
}

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Work with lead activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var activitiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated)); err != nil {
			return err
		}

		query := url.Values{}
		if lead, _ := cmd.Flags().GetString("lead"); lead != "" {
			query.Set("leadId", lead)
		}

		activities, err := a.client.Activities(cmd.Context(), query)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(activities))
		for _, act := range activities {
			status := "open"
			if act.Completed {
				status = "done"
			}
			rows = append(rows, []string{act.ID, act.LeadID, act.Type, status})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"ID", "LEAD", "TYPE", "STATUS"}, rows))
		return nil
	},
}

var activitiesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an activity on a lead",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated)); err != nil {
			return err
		}

		var act api.Activity
		act.LeadID, _ = cmd.Flags().GetString("lead")
		act.Type, _ = cmd.Flags().GetString("type")
		act.Notes, _ = cmd.Flags().GetString("notes")

		created, err := a.client.CreateActivity(cmd.Context(), act)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Activity %s created", created.ID)))
		return nil
	},
}

var activitiesCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark an activity completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.AnyAuthenticated)); err != nil {
			return err
		}

		updated, err := a.client.UpdateActivity(cmd.Context(), args[0], api.Activity{Completed: true})
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Activity %s completed", updated.ID)))
		return nil
	},
}

func init() {
	leadsListCmd.Flags().String("stage", "", "filter by stage id")
	leadsListCmd.Flags().String("search", "", "filter by name or email")

	leadsCreateCmd.Flags().String("name", "", "lead name")
	leadsCreateCmd.Flags().String("email", "", "lead email")
	leadsCreateCmd.Flags().String("phone", "", "lead phone")
	leadsCreateCmd.Flags().String("source", "", "lead source")
	leadsCreateCmd.Flags().String("stage", "", "pipeline stage id")
	_ = leadsCreateCmd.MarkFlagRequired("name")
	_ = leadsCreateCmd.MarkFlagRequired("email")

	leadsUpdateCmd.Flags().String("name", "", "lead name")
	leadsUpdateCmd.Flags().String("email", "", "lead email")
	leadsUpdateCmd.Flags().String("phone", "", "lead phone")
	leadsUpdateCmd.Flags().String("stage", "", "pipeline stage id")
	leadsUpdateCmd.Flags().String("assign", "", "counselor user id to assign")

	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsCreateCmd)
	leadsCmd.AddCommand(leadsUpdateCmd)
	leadsCmd.AddCommand(leadsDeleteCmd)
	rootCmd.AddCommand(leadsCmd)

	activitiesListCmd.Flags().String("lead", "", "filter by lead id")

	activitiesCreateCmd.Flags().String("lead", "", "lead id")
	activitiesCreateCmd.Flags().String("type", "call", "activity type")
	activitiesCreateCmd.Flags().String("notes", "", "notes")
	_ = activitiesCreateCmd.MarkFlagRequired("lead")

	activitiesCmd.AddCommand(activitiesListCmd)
	activitiesCmd.AddCommand(activitiesCreateCmd)
	activitiesCmd.AddCommand(activitiesCompleteCmd)
	rootCmd.AddCommand(activitiesCmd)
}
