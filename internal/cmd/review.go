// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gallerydeck/internal/gallery"
	"gallerydeck/internal/nav"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review pending photo submissions",
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List photos awaiting review",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathReview); err != nil {
			return err
		}

		store := gallery.NewStore(app.Client, 0)
		store.SetFilters(gallery.Filters{Status: "pending"})
		if err := store.Load(cmd.Context()); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILENAME\tUPLOADER\tUPLOADED")
		for _, p := range store.Photos() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				p.ID, p.Filename, deref(p.UploaderName), p.CreatedAt.Format("2006-01-02 15:04"))
		}
		w.Flush()
		fmt.Printf("%d pending\n", store.Total())
		return nil
	},
}

var reviewApproveCmd = &cobra.Command{
	Use:   "approve <id>...",
	Short: "Approve one or more photos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runReview(cmd, args, true) },
}

var reviewRejectCmd = &cobra.Command{
	Use:   "reject <id>...",
	Short: "Reject one or more photos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runReview(cmd, args, false) },
}

func runReview(cmd *cobra.Command, args []string, approve bool) error {
	if err := app.requireAccess(nav.PathReview); err != nil {
		return err
	}
	ids, err := parsePhotoIDs(args)
	if err != nil {
		return err
	}

	if len(ids) == 1 {
		if approve {
			_, err = app.Client.ApprovePhoto(cmd.Context(), ids[0])
		} else {
			_, err = app.Client.RejectPhoto(cmd.Context(), ids[0])
		}
		if err != nil {
			return err
		}
		fmt.Println("1 photo updated")
		return nil
	}

	var updated int
	if approve {
		result, err := app.Client.BatchApprovePhotos(cmd.Context(), ids)
		if err != nil {
			return err
		}
		updated = result.UpdatedCount
	} else {
		result, err := app.Client.BatchRejectPhotos(cmd.Context(), ids)
		if err != nil {
			return err
		}
		updated = result.UpdatedCount
	}
	fmt.Printf("%d photos updated\n", updated)
	return nil
}

func init() {
	reviewCmd.AddCommand(reviewListCmd, reviewApproveCmd, reviewRejectCmd)
	rootCmd.AddCommand(reviewCmd)
}
