// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cmd implements the gallerydeck command tree. Every command maps
// onto one admin screen and passes the same access checks the browser
// front end applies before showing it.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var app *App

var rootCmd = &cobra.Command{
	Use:   "gallerydeck",
	Short: "Campus photo gallery administration",
	Long: `gallerydeck manages a campus photo gallery from the terminal: uploading
photo batches, reviewing pending submissions, and administering tags,
users and site settings through the gallery's REST API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = newApp(cmd.Context())
		return err
	},
}

// ExecuteContext runs the root command under ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
