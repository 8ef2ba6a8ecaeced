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

	"gallerydeck/internal/models"
	"gallerydeck/internal/nav"
)

// ---------- stats ----------

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathDashboard); err != nil {
			return err
		}
		stats, err := app.Client.DashboardStats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("photos:  %d\n", stats.TotalPhotos)
		fmt.Printf("views:   %d\n", stats.TotalViews)
		fmt.Printf("storage: %d bytes\n", stats.TotalStorage)
		if len(stats.PopularTags) > 0 {
			fmt.Println("popular tags:")
			for _, t := range stats.PopularTags {
				fmt.Printf("  %s (%d)\n", t.Name, t.Count)
			}
		}
		if len(stats.TopPhotos) > 0 {
			fmt.Println("most viewed:")
			for _, p := range stats.TopPhotos {
				fmt.Printf("  %s (%d views)\n", p.Filename, p.Views)
			}
		}
		return nil
	},
}

// ---------- permissions ----------

var (
	grantResourceType string
	grantResourceKey  string
	grantType         string
	grantDays         int
	grantNote         string
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Manage resource-scoped grants",
}

var permissionsListCmd = &cobra.Command{
	Use:   "list <student-id>",
	Short: "List a user's grants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathSettings); err != nil {
			return err
		}
		list, err := app.Client.ListUserPermissions(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tRESOURCE\tTYPE\tACTIVE\tEXPIRES")
		for _, p := range list.Permissions {
			expires := "never"
			if p.EndTime != nil {
				expires = p.EndTime.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s:%s\t%s\t%t\t%s\n",
				p.ID, p.ResourceType, p.ResourceKey, p.PermissionType, p.IsActive, expires)
		}
		w.Flush()
		return nil
	},
}

var permissionsGrantCmd = &cobra.Command{
	Use:   "grant <student-id>",
	Short: "Grant access to a restricted resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathSettings); err != nil {
			return err
		}
		grant := models.PermissionGrant{
			StudentID:      args[0],
			ResourceType:   grantResourceType,
			ResourceKey:    grantResourceKey,
			PermissionType: grantType,
		}
		if grantDays > 0 {
			grant.Days = &grantDays
		}
		if grantNote != "" {
			grant.Note = &grantNote
		}
		perm, err := app.Client.GrantPermission(cmd.Context(), grant)
		if err != nil {
			return err
		}
		fmt.Printf("granted %s on %s:%s to %s\n",
			perm.PermissionType, perm.ResourceType, perm.ResourceKey, perm.UserStudentID)
		return nil
	},
}

var permissionsRevokeCmd = &cobra.Command{
	Use:   "revoke <grant-id>",
	Short: "Revoke a grant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathSettings); err != nil {
			return err
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid grant id %q", args[0])
		}
		if err := app.Client.RevokePermission(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("revoked")
		return nil
	},
}

// ---------- settings ----------

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change site settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathSettings); err != nil {
			return err
		}
		settings, err := app.Client.Settings(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("portrait visibility: %s\n", settings.PortraitVisibility)
		return nil
	},
}

var settingsPortraitCmd = &cobra.Command{
	Use:   "portrait <public|login_required|authorized_only>",
	Short: "Set who may see photos of people",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathSettings); err != nil {
			return err
		}
		v := models.PortraitVisibility(args[0])
		switch v {
		case models.PortraitPublic, models.PortraitLoginRequired, models.PortraitAuthorizedOnly:
		default:
			return fmt.Errorf("invalid visibility %q", args[0])
		}
		settings, err := app.Client.UpdatePortraitVisibility(cmd.Context(), v)
		if err != nil {
			return err
		}
		fmt.Printf("portrait visibility: %s\n", settings.PortraitVisibility)
		return nil
	},
}

// ---------- import ----------

var importImageFolder string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Batch-import photos from a server-side manifest",
}

var importStartCmd = &cobra.Command{
	Use:   "start <json-path>",
	Short: "Start a batch import",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathImport); err != nil {
			return err
		}
		req := models.ImportRequest{JSONPath: args[0]}
		if importImageFolder != "" {
			req.ImageFolder = &importImageFolder
		}
		status, err := app.Client.StartImport(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("import %s started (%s)\n", status.TaskID, status.State)
		return nil
	},
}

var importStatusCmd = &cobra.Command{
	Use:   "status <task-id>",
	Short: "Show a running import",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.requireAccess(nav.PathImport); err != nil {
			return err
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}
		status, err := app.Client.ImportStatus(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d/%d processed, %d failed\n",
			status.State, status.Processed, status.Total, status.Failed)
		if status.Message != nil {
			fmt.Println(*status.Message)
		}
		return nil
	},
}

func init() {
	permissionsGrantCmd.Flags().StringVar(&grantResourceType, "resource-type", "category", "resource type")
	permissionsGrantCmd.Flags().StringVar(&grantResourceKey, "resource-key", "", "resource key")
	permissionsGrantCmd.Flags().StringVar(&grantType, "type", "view", "permission type")
	permissionsGrantCmd.Flags().IntVar(&grantDays, "days", 0, "validity in days, 0 for no expiry")
	permissionsGrantCmd.Flags().StringVar(&grantNote, "note", "", "note attached to the grant")
	importStartCmd.Flags().StringVar(&importImageFolder, "image-folder", "", "server-side image folder override")

	permissionsCmd.AddCommand(permissionsListCmd, permissionsGrantCmd, permissionsRevokeCmd)
	settingsCmd.AddCommand(settingsPortraitCmd)
	importCmd.AddCommand(importStartCmd, importStatusCmd)
	rootCmd.AddCommand(statsCmd, permissionsCmd, settingsCmd, importCmd)
}
