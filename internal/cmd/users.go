// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gallerydeck/internal/api"
	"gallerydeck/internal/models"
	"gallerydeck/internal/nav"
)

var (
	userSearch   string
	userFullName string
	userPassword string
	userRole     string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathUsers); err != nil {
			return err
		}
		list, err := app.Client.ListUsers(cmd.Context(), api.UserListParams{Search: userSearch})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tACTIVE")
		for _, u := range list.Users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Email, deref(u.FullName), u.Role, u.IsActive)
		}
		w.Flush()
		fmt.Printf("%d accounts\n", list.Total)
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create <email>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathUsers); err != nil {
			return err
		}
		if userPassword == "" {
			return fmt.Errorf("--password is required")
		}
		create := models.UserCreate{
			Email:    args[0],
			Password: userPassword,
			Role:     models.Role(userRole),
		}
		if userFullName != "" {
			create.FullName = &userFullName
		}
		user, err := app.Client.CreateUser(cmd.Context(), create)
		if err != nil {
			return err
		}
		fmt.Printf("created %s (%s)\n", user.Email, user.Role)
		return nil
	},
}

var usersSetRoleCmd = &cobra.Command{
	Use:   "set-role <id> <role>",
	Short: "Change an account's role",
	Long:  "Change an account's role. Valid roles: admin, auditor, dept_user, user.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathUsers); err != nil {
			return err
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		user, err := app.Client.UpdateUserRole(cmd.Context(), id, models.Role(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", user.Email, user.Role)
		return nil
	},
}

var usersDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate an account",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setUserActive(cmd, args[0], false) },
}

var usersActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Reactivate an account",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setUserActive(cmd, args[0], true) },
}

func setUserActive(cmd *cobra.Command, arg string, active bool) error {
	if err := app.requireAccess(nav.PathUsers); err != nil {
		return err
	}
	id, err := uuid.Parse(arg)
	if err != nil {
		return fmt.Errorf("invalid user id %q", arg)
	}
	user, err := app.Client.UpdateUser(cmd.Context(), id, models.UserUpdate{IsActive: &active})
	if err != nil {
		return err
	}
	state := "deactivated"
	if user.IsActive {
		state = "active"
	}
	fmt.Printf("%s is now %s\n", user.Email, state)
	return nil
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathUsers); err != nil {
			return err
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		if err := app.Client.DeleteUser(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func init() {
	usersListCmd.Flags().StringVar(&userSearch, "search", "", "filter by email or name")
	usersCreateCmd.Flags().StringVar(&userFullName, "name", "", "full name")
	usersCreateCmd.Flags().StringVar(&userPassword, "password", "", "initial password")
	usersCreateCmd.Flags().StringVar(&userRole, "role", "user", "account role")

	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersSetRoleCmd,
		usersActivateCmd, usersDeactivateCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
