// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"net/http"

	"gallerydeck/internal/models"
)

// Login authenticates with an email or student number plus password. The
// returned token is NOT persisted here; the session store decides that.
func (c *Client) Login(ctx context.Context, identifier, password string) (*models.LoginResponse, error) {
	body := models.LoginRequest{Identifier: identifier, Password: password}
	var out models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the profile of the token's owner.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
