// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gallerydeck/internal/models"
	"gallerydeck/internal/nav"
	"gallerydeck/internal/preview"
	"gallerydeck/internal/upload"
)

var uploadMeta models.UploadMetadata

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload photos",
	Long: `Upload queues the given image files and sends them one at a time.
Season, category and description apply to every photo of the batch; empty
values are not sent. A failed file does not stop the rest of the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathUpload); err != nil {
			return err
		}

		queue := upload.NewQueue(app.Client, preview.NewRenderer())
		queue.SetMetadata(uploadMeta)

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			queue.AddFiles(models.UploadFile{Name: filepath.Base(path), Data: data})
		}

		result, err := queue.StartUpload(cmd.Context())
		if err != nil {
			return err
		}

		for _, item := range queue.Items() {
			if item.Status == upload.StatusError {
				fmt.Printf("  %s: %s\n", item.File.Name, item.ErrorMsg)
			} else {
				fmt.Printf("  %s: uploaded\n", item.File.Name)
			}
		}
		fmt.Println(result.Summary())

		if result.Failed > 0 {
			return fmt.Errorf("%d of %d files failed", result.Failed, result.Total)
		}
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadMeta.Season, "season", "", "season for the whole batch")
	uploadCmd.Flags().StringVar(&uploadMeta.Category, "category", "", "category for the whole batch")
	uploadCmd.Flags().StringVar(&uploadMeta.Description, "description", "", "description for the whole batch")
	rootCmd.AddCommand(uploadCmd)
}
