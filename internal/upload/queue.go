// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package upload owns the batch upload queue: a list of files, each with
// its own lifecycle state, driven through an injected invoker one file at
// a time. The queue is the only writer of its items; every asynchronous
// completion re-enters through the queue's mutex and is looked up by item
// ID, so a completion for a removed item lands nowhere.
package upload

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/google/uuid"

	"gallerydeck/internal/api"
	"gallerydeck/internal/models"
)

// Status is the per-item lifecycle state.
//
//	pending --> uploading --> success
//	                     \--> error --> (retry) --> pending
//
// There is no transition out of success.
type Status string

const (
	StatusPending   Status = "pending"
	StatusUploading Status = "uploading"
	StatusSuccess   Status = "success"
	StatusError     Status = "error"
)

// Item is one queued file. Progress is a 0-100 integer; Preview is nil
// until the renderer finishes.
type Item struct {
	ID       uuid.UUID
	File     models.UploadFile
	Preview  []byte
	Status   Status
	Progress int
	ErrorMsg string
}

// Invoker performs one file's network transfer. The API client satisfies
// this; tests inject fakes.
type Invoker interface {
	UploadPhoto(ctx context.Context, file models.UploadFile, meta models.UploadMetadata, progress api.ProgressFunc) (*models.PhotoUploadResponse, error)
}

// Renderer produces the local preview for a queued file. May be nil, in
// which case items simply never get previews.
type Renderer interface {
	Render(src []byte) ([]byte, error)
}

// ErrBatchInFlight is returned by StartUpload when a batch is already
// running. The queue is left untouched.
var ErrBatchInFlight = fmt.Errorf("upload: batch already in flight")

// Result is the aggregate outcome of one batch, scoped to the pending
// snapshot taken when the batch started. Items removed mid-batch leave
// Total.
type Result struct {
	Total     int
	Succeeded int
	Failed    int
}

// Summary is the user-facing one-liner for the batch outcome.
func (r Result) Summary() string {
	if r.Failed == 0 && r.Succeeded == r.Total {
		return fmt.Sprintf("all %d uploaded", r.Total)
	}
	return fmt.Sprintf("%d succeeded, %d failed", r.Succeeded, r.Failed)
}

// Queue is the upload controller. All fields are guarded by mu.
type Queue struct {
	mu        sync.Mutex
	items     []*Item
	uploading bool
	meta      models.UploadMetadata

	invoker  Invoker
	renderer Renderer
	previews sync.WaitGroup
}

// NewQueue creates an empty queue. renderer may be nil.
func NewQueue(invoker Invoker, renderer Renderer) *Queue {
	return &Queue{invoker: invoker, renderer: renderer}
}

// AddFiles appends one pending item per file, in input order. The slot is
// reserved synchronously; the preview is rendered in the background and
// filled in by ID, so queue order never depends on decode latency.
func (q *Queue) AddFiles(files ...models.UploadFile) {
	q.mu.Lock()
	for _, f := range files {
		item := &Item{ID: uuid.New(), File: f, Status: StatusPending}
		q.items = append(q.items, item)
		if q.renderer != nil {
			q.previews.Add(1)
			go q.renderPreview(item.ID, f.Data)
		}
	}
	q.mu.Unlock()
}

// renderPreview fills in an item's preview once rendered. If the item was
// removed in the meantime the result is dropped.
func (q *Queue) renderPreview(id uuid.UUID, data []byte) {
	defer q.previews.Done()

	p, err := q.renderer.Render(data)
	if err != nil {
		slog.Debug("preview render failed", "item", id, "error", err)
		return
	}

	q.mu.Lock()
	if item := q.find(id); item != nil {
		item.Preview = p
	}
	q.mu.Unlock()
}

// WaitPreviews blocks until every outstanding preview render has settled.
func (q *Queue) WaitPreviews() {
	q.previews.Wait()
}

// RemoveFile drops the item at index regardless of its status. An
// in-flight transfer for that item is not cancelled; its completion will
// find no item and be ignored.
func (q *Queue) RemoveFile(index int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if index < 0 || index >= len(q.items) {
		return false
	}
	q.items = append(q.items[:index], q.items[index+1:]...)
	return true
}

// ClearAll empties the queue, resets the batch metadata, and forces the
// uploading flag down even mid-batch. In-flight transfers become
// orphans; their completions are ignored when they land.
func (q *Queue) ClearAll() {
	q.mu.Lock()
	q.items = nil
	q.meta = models.UploadMetadata{}
	q.uploading = false
	q.mu.Unlock()
}

// SetMetadata replaces the batch-level metadata attached to every
// subsequent upload.
func (q *Queue) SetMetadata(meta models.UploadMetadata) {
	q.mu.Lock()
	q.meta = meta
	q.mu.Unlock()
}

// Metadata returns the current batch metadata.
func (q *Queue) Metadata() models.UploadMetadata {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.meta
}

// Items returns a copy of the queue for display.
func (q *Queue) Items() []Item {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Item, len(q.items))
	for i, item := range q.items {
		out[i] = *item
	}
	return out
}

// Len returns the number of queued items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Uploading reports whether a batch is in flight.
func (q *Queue) Uploading() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.uploading
}

// PendingCount counts items waiting to upload.
func (q *Queue) PendingCount() int { return q.countByStatus(StatusPending) }

// SuccessCount counts items uploaded successfully.
func (q *Queue) SuccessCount() int { return q.countByStatus(StatusSuccess) }

// ErrorCount counts items whose last attempt failed.
func (q *Queue) ErrorCount() int { return q.countByStatus(StatusError) }

func (q *Queue) countByStatus(s Status) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for _, item := range q.items {
		if item.Status == s {
			n++
		}
	}
	return n
}

// CanUpload reports whether StartUpload would do anything: pending items
// exist and no batch is running.
func (q *Queue) CanUpload() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.uploading {
		return false
	}
	for _, item := range q.items {
		if item.Status == StatusPending {
			return true
		}
	}
	return false
}

// StartUpload runs one batch over the items pending right now. Items
// added afterwards are not picked up by this run. Files go up strictly
// one at a time: the next transfer starts only after the previous one
// fully resolved, keeping per-item progress attributable and the
// connection pool calm. Per-item failures are absorbed into item state
// and never abort the batch.
func (q *Queue) StartUpload(ctx context.Context) (*Result, error) {
	q.mu.Lock()
	if q.uploading {
		q.mu.Unlock()
		return nil, ErrBatchInFlight
	}
	q.uploading = true
	var snapshot []uuid.UUID
	for _, item := range q.items {
		if item.Status == StatusPending {
			snapshot = append(snapshot, item.ID)
		}
	}
	q.mu.Unlock()

	result := &Result{Total: len(snapshot)}
	for _, id := range snapshot {
		switch q.uploadOne(ctx, id) {
		case outcomeSuccess:
			result.Succeeded++
		case outcomeError:
			result.Failed++
		case outcomeGone:
			result.Total--
		}
	}

	q.mu.Lock()
	q.uploading = false
	q.mu.Unlock()

	slog.Info("upload batch finished",
		"total", result.Total,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)
	return result, nil
}

// Retry re-uploads the item at index. Only items in the error state are
// eligible; anything else is ignored. When a batch is running the retry
// fires independently of it; the batch's snapshot cannot contain this
// item, so there is nothing to queue behind.
func (q *Queue) Retry(ctx context.Context, index int) {
	q.mu.Lock()
	if index < 0 || index >= len(q.items) {
		q.mu.Unlock()
		return
	}
	item := q.items[index]
	if item.Status != StatusError {
		q.mu.Unlock()
		return
	}
	item.Status = StatusPending
	item.ErrorMsg = ""
	id := item.ID
	batchRunning := q.uploading
	if !batchRunning {
		q.uploading = true
	}
	q.mu.Unlock()

	q.uploadOne(ctx, id)

	if !batchRunning {
		q.mu.Lock()
		q.uploading = false
		q.mu.Unlock()
	}
}

type outcome int

const (
	outcomeGone outcome = iota
	outcomeSuccess
	outcomeError
)

// uploadOne drives a single item through uploading to success or error.
// Every write re-checks the item still exists: the user may have removed
// it or cleared the queue while the transfer was in flight.
func (q *Queue) uploadOne(ctx context.Context, id uuid.UUID) outcome {
	q.mu.Lock()
	item := q.find(id)
	if item == nil {
		q.mu.Unlock()
		return outcomeGone
	}
	item.Status = StatusUploading
	item.Progress = 0
	item.ErrorMsg = ""
	file := item.File
	meta := q.meta
	q.mu.Unlock()

	progress := func(loaded, total int64) {
		if total <= 0 {
			return
		}
		pct := int(math.Round(float64(loaded) * 100 / float64(total)))
		if pct > 100 {
			pct = 100
		}
		q.mu.Lock()
		if cur := q.find(id); cur != nil && cur.Status == StatusUploading {
			cur.Progress = pct
		}
		q.mu.Unlock()
	}

	_, err := q.invoker.UploadPhoto(ctx, file, meta, progress)

	q.mu.Lock()
	defer q.mu.Unlock()
	item = q.find(id)
	if item == nil {
		return outcomeGone
	}
	if err != nil {
		item.Status = StatusError
		item.Progress = 0
		item.ErrorMsg = failureMessage(err)
		return outcomeError
	}
	item.Status = StatusSuccess
	item.Progress = 100
	return outcomeSuccess
}

// find returns the live item with the given ID. Callers hold mu.
func (q *Queue) find(id uuid.UUID) *Item {
	for _, item := range q.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// failureMessage prefers the server's own detail over the generic string.
func failureMessage(err error) string {
	if detail := api.Detail(err); detail != "" {
		return detail
	}
	return "upload failed"
}
