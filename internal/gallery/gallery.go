// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package gallery holds the client-side photo browsing state: the current
// page, the active filters and a selection set for batch review.
package gallery

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"gallerydeck/internal/models"
)

// DefaultPageSize is the page length used when no limit is configured.
const DefaultPageSize = 24

// PhotoAPI is the slice of the API client the store needs.
type PhotoAPI interface {
	ListPhotos(ctx context.Context, params models.PhotoListParams) (*models.PhotoList, error)
	ApprovePhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error)
	RejectPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error)
	BatchApprovePhotos(ctx context.Context, ids []uuid.UUID) (*models.BatchReviewResult, error)
	BatchRejectPhotos(ctx context.Context, ids []uuid.UUID) (*models.BatchReviewResult, error)
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}

// Filters are the user-facing listing filters. They map onto the list
// query one-to-one; empty fields are not sent.
type Filters struct {
	Status   string
	Season   string
	Category string
	Search   string
}

// Store is a safe-for-concurrent-use view over one page of the photo
// listing. Changing filters resets paging to the first page; the selection
// set survives paging but not a filter change.
type Store struct {
	mu       sync.RWMutex
	api      PhotoAPI
	filters  Filters
	skip     int
	limit    int
	total    int
	photos   []models.Photo
	selected map[uuid.UUID]bool
}

// NewStore returns an empty store reading pages of pageSize photos.
// A pageSize of zero or less falls back to DefaultPageSize.
func NewStore(api PhotoAPI, pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Store{
		api:      api,
		limit:    pageSize,
		selected: make(map[uuid.UUID]bool),
	}
}

// ---------- loading and paging ----------

// Load fetches the current page under the current filters, replacing the
// held photos. On error the previous page is kept.
func (s *Store) Load(ctx context.Context) error {
	s.mu.RLock()
	params := models.PhotoListParams{
		Skip:     s.skip,
		Limit:    s.limit,
		Status:   s.filters.Status,
		Season:   s.filters.Season,
		Category: s.filters.Category,
		Search:   s.filters.Search,
	}
	s.mu.RUnlock()

	list, err := s.api.ListPhotos(ctx, params)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.photos = list.Photos
	s.total = list.Total
	s.mu.Unlock()
	return nil
}

// SetFilters replaces the active filters, resets to the first page and
// drops the selection.
func (s *Store) SetFilters(f Filters) {
	s.mu.Lock()
	s.filters = f
	s.skip = 0
	s.selected = make(map[uuid.UUID]bool)
	s.mu.Unlock()
}

// Filters returns the active filters.
func (s *Store) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// HasNext reports whether a further page exists.
func (s *Store) HasNext() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skip+s.limit < s.total
}

// HasPrev reports whether this is not the first page.
func (s *Store) HasPrev() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skip > 0
}

// NextPage advances one page and loads it. Without a further page it
// loads the current one again.
func (s *Store) NextPage(ctx context.Context) error {
	s.mu.Lock()
	if s.skip+s.limit < s.total {
		s.skip += s.limit
	}
	s.mu.Unlock()
	return s.Load(ctx)
}

// PrevPage steps one page back and loads it, stopping at the first page.
func (s *Store) PrevPage(ctx context.Context) error {
	s.mu.Lock()
	s.skip -= s.limit
	if s.skip < 0 {
		s.skip = 0
	}
	s.mu.Unlock()
	return s.Load(ctx)
}

// Photos returns a copy of the current page.
func (s *Store) Photos() []models.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

// Total returns the server-side match count for the active filters.
func (s *Store) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Page returns the one-based page number and the page count.
func (s *Store) Page() (current, pages int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	current = s.skip/s.limit + 1
	pages = (s.total + s.limit - 1) / s.limit
	if pages < 1 {
		pages = 1
	}
	return current, pages
}

// ---------- selection ----------

// ToggleSelect flips the selection state of one photo. IDs outside the
// current page are accepted so a selection can span pages.
func (s *Store) ToggleSelect(id uuid.UUID) {
	s.mu.Lock()
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
	s.mu.Unlock()
}

// Selected reports whether the photo is in the selection set.
func (s *Store) Selected(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected[id]
}

// SelectPage adds every photo of the current page to the selection.
func (s *Store) SelectPage() {
	s.mu.Lock()
	for _, p := range s.photos {
		s.selected[p.ID] = true
	}
	s.mu.Unlock()
}

// ClearSelection empties the selection set.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selected = make(map[uuid.UUID]bool)
	s.mu.Unlock()
}

// SelectedIDs returns the selection in current-page order, then any
// selected IDs no longer on the page.
func (s *Store) SelectedIDs() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]uuid.UUID, 0, len(s.selected))
	onPage := make(map[uuid.UUID]bool, len(s.photos))
	for _, p := range s.photos {
		if s.selected[p.ID] {
			out = append(out, p.ID)
			onPage[p.ID] = true
		}
	}
	for id := range s.selected {
		if !onPage[id] {
			out = append(out, id)
		}
	}
	return out
}

// SelectionCount returns the number of selected photos.
func (s *Store) SelectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// ---------- review ----------

// Approve marks one photo approved and folds the server's record back
// into the page.
func (s *Store) Approve(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	photo, err := s.api.ApprovePhoto(ctx, id)
	if err != nil {
		return nil, err
	}
	s.absorb(photo)
	return photo, nil
}

// Reject marks one photo rejected and folds the server's record back
// into the page.
func (s *Store) Reject(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	photo, err := s.api.RejectPhoto(ctx, id)
	if err != nil {
		return nil, err
	}
	s.absorb(photo)
	return photo, nil
}

// ApproveSelected batch-approves the selection, clears it and reloads
// the current page.
func (s *Store) ApproveSelected(ctx context.Context) (*models.BatchReviewResult, error) {
	ids := s.SelectedIDs()
	if len(ids) == 0 {
		return &models.BatchReviewResult{Message: "nothing selected"}, nil
	}
	result, err := s.api.BatchApprovePhotos(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.ClearSelection()
	if err := s.Load(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// RejectSelected batch-rejects the selection, clears it and reloads the
// current page.
func (s *Store) RejectSelected(ctx context.Context) (*models.BatchReviewResult, error) {
	ids := s.SelectedIDs()
	if len(ids) == 0 {
		return &models.BatchReviewResult{Message: "nothing selected"}, nil
	}
	result, err := s.api.BatchRejectPhotos(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.ClearSelection()
	if err := s.Load(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// Delete removes one photo, drops it from the page and the selection,
// and decrements the match count.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.api.DeletePhoto(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i, p := range s.photos {
		if p.ID == id {
			s.photos = append(s.photos[:i], s.photos[i+1:]...)
			s.total--
			break
		}
	}
	delete(s.selected, id)
	s.mu.Unlock()
	return nil
}

// absorb replaces the page's copy of the photo with the server record.
// When a status filter is active and the photo no longer matches it, the
// photo leaves the page instead.
func (s *Store) absorb(photo *models.Photo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mismatch := s.filters.Status != "" && string(photo.Status) != s.filters.Status
	for i, p := range s.photos {
		if p.ID != photo.ID {
			continue
		}
		if mismatch {
			s.photos = append(s.photos[:i], s.photos[i+1:]...)
			s.total--
			delete(s.selected, photo.ID)
		} else {
			s.photos[i] = *photo
		}
		return
	}
}
