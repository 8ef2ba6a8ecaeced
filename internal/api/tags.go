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

// ListTags returns a filtered page of tags.
func (c *Client) ListTags(ctx context.Context, params models.TagListParams) (*models.TagList, error) {
	var out models.TagList
	if err := c.get(ctx, "/tags", tagQuery(params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPublicTags returns tags visible without authentication.
func (c *Client) ListPublicTags(ctx context.Context, params models.TagListParams) (*models.TagList, error) {
	var out models.TagList
	if err := c.get(ctx, "/tags/public", tagQuery(params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PopularTags returns the most-used tags, capped at limit (server default
// applies when limit is 0).
func (c *Client) PopularTags(ctx context.Context, limit int) ([]models.Tag, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []models.Tag
	if err := c.get(ctx, "/tags/popular", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTag fetches one tag.
func (c *Client) GetTag(ctx context.Context, id int) (*models.Tag, error) {
	var out models.Tag
	if err := c.get(ctx, "/tags/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTag creates a tag. Admin only.
func (c *Client) CreateTag(ctx context.Context, create models.TagCreate) (*models.Tag, error) {
	var out models.Tag
	if err := c.do(ctx, http.MethodPost, "/tags", nil, create, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTag applies a partial edit to a tag. Admin only.
func (c *Client) UpdateTag(ctx context.Context, id int, update models.TagUpdate) (*models.Tag, error) {
	var out models.Tag
	if err := c.do(ctx, http.MethodPatch, "/tags/"+strconv.Itoa(id), nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTag removes a tag. Admin only.
func (c *Client) DeleteTag(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/tags/"+strconv.Itoa(id), nil, nil, nil)
}

// AddPhotoTags attaches tags to a photo by name, creating unknown names.
func (c *Client) AddPhotoTags(ctx context.Context, photoID uuid.UUID, names []string) error {
	return c.do(ctx, http.MethodPost, "/photos/"+photoID.String()+"/tags", nil, names, nil)
}

// RemovePhotoTag detaches one tag from a photo.
func (c *Client) RemovePhotoTag(ctx context.Context, photoID uuid.UUID, tagID int) error {
	return c.do(ctx, http.MethodDelete, "/photos/"+photoID.String()+"/tags/"+strconv.Itoa(tagID), nil, nil, nil)
}

func tagQuery(p models.TagListParams) url.Values {
	q := url.Values{}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	return q
}
