// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"gallerydeck/internal/models"
)

// ListPhotos returns a filtered page of photos. Requires authentication;
// non-auditors only see their own uploads.
func (c *Client) ListPhotos(ctx context.Context, params models.PhotoListParams) (*models.PhotoList, error) {
	var out models.PhotoList
	if err := c.get(ctx, "/photos", photoQuery(params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPublicPhotos returns approved photos only and needs no token.
func (c *Client) ListPublicPhotos(ctx context.Context, params models.PhotoListParams) (*models.PhotoList, error) {
	var out models.PhotoList
	if err := c.get(ctx, "/photos/public", photoQuery(params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPhoto fetches one photo record.
func (c *Client) GetPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	var out models.Photo
	if err := c.get(ctx, "/photos/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPublicPhoto fetches one approved photo without authentication.
func (c *Client) GetPublicPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	var out models.Photo
	if err := c.get(ctx, "/photos/public/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePhoto applies a partial edit to a photo's metadata.
func (c *Client) UpdatePhoto(ctx context.Context, id uuid.UUID, update models.PhotoUpdate) (*models.Photo, error) {
	var out models.Photo
	if err := c.do(ctx, http.MethodPatch, "/photos/"+id.String(), nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePhoto removes a photo.
func (c *Client) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/photos/"+id.String(), nil, nil, nil)
}

// SetPhotoTags replaces a photo's tag set by tag ID.
func (c *Client) SetPhotoTags(ctx context.Context, id uuid.UUID, tagIDs []int) (*models.Photo, error) {
	body := struct {
		TagIDs []int `json:"tag_ids"`
	}{TagIDs: tagIDs}
	var out models.Photo
	if err := c.do(ctx, http.MethodPost, "/photos/"+id.String()+"/tags", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApprovePhoto marks a photo as approved. Auditor or admin only.
func (c *Client) ApprovePhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	var out models.Photo
	if err := c.do(ctx, http.MethodPost, "/photos/"+id.String()+"/approve", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectPhoto marks a photo as rejected. Auditor or admin only.
func (c *Client) RejectPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	var out models.Photo
	if err := c.do(ctx, http.MethodPost, "/photos/"+id.String()+"/reject", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchApprovePhotos approves many photos in one call.
func (c *Client) BatchApprovePhotos(ctx context.Context, ids []uuid.UUID) (*models.BatchReviewResult, error) {
	var out models.BatchReviewResult
	if err := c.do(ctx, http.MethodPost, "/photos/batch-approve", nil, ids, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchRejectPhotos rejects many photos in one call.
func (c *Client) BatchRejectPhotos(ctx context.Context, ids []uuid.UUID) (*models.BatchReviewResult, error) {
	var out models.BatchReviewResult
	if err := c.do(ctx, http.MethodPost, "/photos/batch-reject", nil, ids, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadPhoto sends one file as multipart form data. Only non-empty
// metadata fields become form fields; the server treats absent and null
// differently, so nothing is ever sent as an explicit null. progress, when
// non-nil, observes request-body bytes as the transfer advances.
func (c *Client) UploadPhoto(ctx context.Context, file models.UploadFile, meta models.UploadMetadata, progress ProgressFunc) (*models.PhotoUploadResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("upload form: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("upload form: %w", err)
	}

	fields := map[string]string{
		"description": meta.Description,
		"season":      meta.Season,
		"category":    meta.Category,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("upload form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("upload form: %w", err)
	}

	total := int64(buf.Len())
	var body io.Reader = &buf
	if progress != nil {
		body = newProgressReader(&buf, total, progress)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/photos/upload", nil), body)
	if err != nil {
		return nil, fmt.Errorf("upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.ContentLength = total
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.network(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upload read body: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, c.fail(resp.StatusCode, respBody)
	}

	var out models.PhotoUploadResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("upload unmarshal: %w", err)
	}
	return &out, nil
}

// photoQuery encodes list parameters, omitting zero values so the server's
// defaults apply.
func photoQuery(p models.PhotoListParams) url.Values {
	q := url.Values{}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Season != "" {
		q.Set("season", p.Season)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}
