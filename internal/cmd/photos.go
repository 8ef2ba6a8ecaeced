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

	"gallerydeck/internal/gallery"
	"gallerydeck/internal/nav"
)

var (
	photoFilters gallery.Filters
	photoPage    int
	photoLimit   int
)

var photosCmd = &cobra.Command{
	Use:   "photos",
	Short: "Browse and manage photos",
}

var photosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List photos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathGallery); err != nil {
			return err
		}

		store := gallery.NewStore(app.Client, photoLimit)
		store.SetFilters(photoFilters)
		if err := store.Load(cmd.Context()); err != nil {
			return err
		}
		for page := 1; page < photoPage && store.HasNext(); page++ {
			if err := store.NextPage(cmd.Context()); err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILENAME\tSTATUS\tSEASON\tCATEGORY")
		for _, p := range store.Photos() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.Filename, p.Status, deref(p.Season), deref(p.Category))
		}
		w.Flush()

		current, pages := store.Page()
		fmt.Printf("page %d/%d, %d photos total\n", current, pages, store.Total())
		return nil
	},
}

var photosShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one photo record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathGallery); err != nil {
			return err
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid photo id %q", args[0])
		}
		photo, err := app.Client.GetPhoto(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("id:          %s\n", photo.ID)
		fmt.Printf("filename:    %s\n", photo.Filename)
		fmt.Printf("status:      %s\n", photo.Status)
		fmt.Printf("season:      %s\n", deref(photo.Season))
		fmt.Printf("category:    %s\n", deref(photo.Category))
		fmt.Printf("description: %s\n", deref(photo.Description))
		fmt.Printf("uploader:    %s\n", deref(photo.UploaderName))
		fmt.Printf("uploaded:    %s\n", photo.CreatedAt.Format("2006-01-02 15:04"))
		if len(photo.Tags) > 0 {
			fmt.Printf("tags:        %v\n", photo.Tags)
		}
		return nil
	},
}

var photosDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathGallery); err != nil {
			return err
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid photo id %q", args[0])
		}
		if err := app.Client.DeletePhoto(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

var photosTagCmd = &cobra.Command{
	Use:   "tag <id> <tag-name>...",
	Short: "Attach tags to a photo",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathGallery); err != nil {
			return err
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid photo id %q", args[0])
		}
		if err := app.Client.AddPhotoTags(cmd.Context(), id, args[1:]); err != nil {
			return err
		}
		fmt.Printf("tagged %d\n", len(args[1:]))
		return nil
	},
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parsePhotoIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid photo id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func init() {
	photosListCmd.Flags().StringVar(&photoFilters.Status, "status", "", "filter by status (pending, approved, rejected)")
	photosListCmd.Flags().StringVar(&photoFilters.Season, "season", "", "filter by season")
	photosListCmd.Flags().StringVar(&photoFilters.Category, "category", "", "filter by category")
	photosListCmd.Flags().StringVar(&photoFilters.Search, "search", "", "search filenames and descriptions")
	photosListCmd.Flags().IntVar(&photoPage, "page", 1, "page number")
	photosListCmd.Flags().IntVar(&photoLimit, "limit", gallery.DefaultPageSize, "photos per page")

	photosCmd.AddCommand(photosListCmd, photosShowCmd, photosDeleteCmd, photosTagCmd)
	rootCmd.AddCommand(photosCmd)
}
