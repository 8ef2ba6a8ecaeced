// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <email-or-student-id>",
	Short: "Sign in to the gallery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.Session.IsAuthenticated() {
			user := app.Session.User()
			return fmt.Errorf("already signed in as %s, run 'gallerydeck logout' first", user.Email)
		}

		password := loginPassword
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		resp, err := app.Session.Login(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s (%s)\n", resp.User.Email, resp.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the saved session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app.Session.Logout()
		fmt.Println("signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !app.Session.IsAuthenticated() {
			fmt.Println("not signed in")
			return nil
		}
		user, err := app.Session.FetchCurrentUser(cmd.Context())
		if err != nil {
			return err
		}
		name := ""
		if user.FullName != nil {
			name = *user.FullName
		}
		fmt.Printf("%s\t%s\t%s\n", user.Email, name, user.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
