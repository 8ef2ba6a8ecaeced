// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"gallerydeck/internal/models"
)

// UserListParams filter the admin account listing.
type UserListParams struct {
	Skip   int
	Limit  int
	Search string
	Role   models.Role
}

// ListUsers returns a page of accounts. Admin only.
func (c *Client) ListUsers(ctx context.Context, params UserListParams) (*models.UserList, error) {
	q := url.Values{}
	if params.Skip > 0 {
		q.Set("skip", strconv.Itoa(params.Skip))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Role != "" {
		q.Set("role", string(params.Role))
	}
	var out models.UserList
	if err := c.get(ctx, "/admin/users", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches one account. Admin only.
func (c *Client) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/admin/users/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser creates an account. Admin only.
func (c *Client) CreateUser(ctx context.Context, create models.UserCreate) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/admin/users", nil, create, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser applies a partial edit to an account. Admin only.
func (c *Client) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+id.String(), nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserRole replaces an account's role. Admin only.
func (c *Client) UpdateUserRole(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error) {
	body := struct {
		Role models.Role `json:"role"`
	}{Role: role}
	var out models.User
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+id.String()+"/role", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+id.String(), nil, nil, nil)
}
