// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gallerydeck/internal/models"
	"gallerydeck/internal/nav"
)

var (
	tagSearch   string
	tagCategory string
	tagColor    string
	tagPopular  int
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage photo tags",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathTags); err != nil {
			return err
		}
		list, err := app.Client.ListTags(cmd.Context(), models.TagListParams{
			Search:   tagSearch,
			Category: tagCategory,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tUSES")
		for _, t := range list.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", t.ID, t.Name, deref(t.Category), t.UsageCount)
		}
		w.Flush()
		return nil
	},
}

var tagsPopularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show the most used tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := app.Client.PopularTags(cmd.Context(), tagPopular)
		if err != nil {
			return err
		}
		for _, t := range tags {
			fmt.Printf("%s (%d)\n", t.Name, t.UsageCount)
		}
		return nil
	},
}

var tagsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathTags); err != nil {
			return err
		}
		create := models.TagCreate{Name: args[0]}
		if tagCategory != "" {
			create.Category = &tagCategory
		}
		if tagColor != "" {
			create.Color = &tagColor
		}
		tag, err := app.Client.CreateTag(cmd.Context(), create)
		if err != nil {
			return err
		}
		fmt.Printf("created tag %d (%s)\n", tag.ID, tag.Name)
		return nil
	},
}

var tagsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathTags); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid tag id %q", args[0])
		}
		if err := app.Client.DeleteTag(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func init() {
	tagsListCmd.Flags().StringVar(&tagSearch, "search", "", "filter by name")
	tagsListCmd.Flags().StringVar(&tagCategory, "category", "", "filter by category")
	tagsPopularCmd.Flags().IntVar(&tagPopular, "limit", 10, "number of tags")
	tagsCreateCmd.Flags().StringVar(&tagCategory, "category", "", "tag category")
	tagsCreateCmd.Flags().StringVar(&tagColor, "color", "", "display color")

	tagsCmd.AddCommand(tagsListCmd, tagsPopularCmd, tagsCreateCmd, tagsDeleteCmd)
	rootCmd.AddCommand(tagsCmd)
}
