// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"gallerydeck/internal/models"
)

// ---------- permissions ----------

// ListUserPermissions returns all grants for one user, looked up by
// student ID. Admin only.
func (c *Client) ListUserPermissions(ctx context.Context, studentID string) (*models.PermissionList, error) {
	var out models.PermissionList
	if err := c.get(ctx, "/admin/permissions/user/"+studentID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GrantPermission creates a resource-scoped grant. Admin only.
func (c *Client) GrantPermission(ctx context.Context, grant models.PermissionGrant) (*models.Permission, error) {
	var out models.Permission
	if err := c.do(ctx, http.MethodPost, "/admin/permissions/grant", nil, grant, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokePermission deletes a grant. Admin only.
func (c *Client) RevokePermission(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/admin/permissions/"+id.String(), nil, nil, nil)
}

// ---------- stats ----------

// DashboardStats fetches the admin dashboard numbers.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.get(ctx, "/stats/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IncrementView records one view of a photo.
func (c *Client) IncrementView(ctx context.Context, photoID uuid.UUID) (*models.ViewResult, error) {
	var out models.ViewResult
	if err := c.do(ctx, http.MethodPost, "/stats/view/"+photoID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------- settings ----------

// Settings fetches the full system settings. Admin only.
func (c *Client) Settings(ctx context.Context) (*models.SystemSettings, error) {
	var out models.SystemSettings
	if err := c.get(ctx, "/admin/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePortraitVisibility changes who may see portrait photos. Admin only.
func (c *Client) UpdatePortraitVisibility(ctx context.Context, v models.PortraitVisibility) (*models.SystemSettings, error) {
	body := struct {
		Visibility models.PortraitVisibility `json:"visibility"`
	}{Visibility: v}
	var out models.SystemSettings
	if err := c.do(ctx, http.MethodPut, "/admin/settings/portrait-visibility", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PortraitVisibility reads the portrait setting without authentication, so
// the public gallery can decide what to show before login.
func (c *Client) PortraitVisibility(ctx context.Context) (models.PortraitVisibility, error) {
	var out struct {
		PortraitVisibility models.PortraitVisibility `json:"portrait_visibility"`
	}
	if err := c.get(ctx, "/admin/settings/portrait-visibility", nil, &out); err != nil {
		return "", err
	}
	return out.PortraitVisibility, nil
}

// ---------- batch import ----------

// StartImport kicks off a server-side import from a JSON manifest. Admin
// only.
func (c *Client) StartImport(ctx context.Context, req models.ImportRequest) (*models.ImportStatus, error) {
	var out models.ImportStatus
	if err := c.do(ctx, http.MethodPost, "/admin/import", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportStatus polls a running import task.
func (c *Client) ImportStatus(ctx context.Context, taskID uuid.UUID) (*models.ImportStatus, error) {
	var out models.ImportStatus
	if err := c.get(ctx, "/admin/import/"+taskID.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
