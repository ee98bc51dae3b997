package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/authz"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List pipeline stages",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantAdmin)); err != nil {
			return err
		}

		stages, err := a.client.Stages(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(stages))
		for _, s := range stages {
			rows = append(rows, []string{strconv.Itoa(s.Position), s.ID, s.Name})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"#", "ID", "NAME"}, rows))
		return nil
	},
}

var automationsCmd = &cobra.Command{
	Use:   "automations",
	Short: "List automation rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantAdmin)); err != nil {
			return err
		}

		automations, err := a.client.Automations(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(automations))
		for _, auto := range automations {
			state := "disabled"
			if auto.Enabled {
				state = "enabled"
			}
			rows = append(rows, []string{auto.ID, auto.Name, auto.Trigger, auto.Action, state})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"ID", "NAME", "TRIGGER", "ACTION", "STATE"}, rows))
		return nil
	},
}

var counselorsCmd = &cobra.Command{
	Use:   "counselors",
	Short: "Manage the tenant's counselor accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var counselorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List counselor accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantAdmin)); err != nil {
			return err
		}

		users, err := a.client.Users(cmd.Context())
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(users))
		for _, u := range users {
			state := "inactive"
			if u.Active {
				state = "active"
			}
			rows = append(rows, []string{u.ID, u.Name, u.Email, string(u.Role), state})
		}
		fmt.Fprint(cmd.OutOrStdout(), a.render.Table([]string{"ID", "NAME", "EMAIL", "ROLE", "STATE"}, rows))
		return nil
	},
}

var counselorsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a counselor account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantAdmin)); err != nil {
			return err
		}

		var u api.User
		u.Name, _ = cmd.Flags().GetString("name")
		u.Email, _ = cmd.Flags().GetString("email")
		u.Role = api.RoleCounselor
		u.Active = true

		created, err := a.client.CreateUser(cmd.Context(), u)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Counselor %s created (%s)", created.Name, created.ID)))
		return nil
	},
}

var counselorsDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate a counselor account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp()
		if _, err := a.requireSession(cmd.Context(), authz.Require(authz.TenantAdmin)); err != nil {
			return err
		}

		if _, err := a.client.UpdateUser(cmd.Context(), args[0], api.User{Active: false}); err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.render.Success(fmt.Sprintf("Counselor %s deactivated", args[0])))
		return nil
	},
}

func init() {
	counselorsCreateCmd.Flags().String("name", "", "counselor name")
	counselorsCreateCmd.Flags().String("email", "", "counselor email")
	_ = counselorsCreateCmd.MarkFlagRequired("name")
	_ = counselorsCreateCmd.MarkFlagRequired("email")

	counselorsCmd.AddCommand(counselorsListCmd)
	counselorsCmd.AddCommand(counselorsCreateCmd)
	counselorsCmd.AddCommand(counselorsDeactivateCmd)

	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(automationsCmd)
	rootCmd.AddCommand(counselorsCmd)
}
