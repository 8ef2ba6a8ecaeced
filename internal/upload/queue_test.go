package upload

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"gallerydeck/internal/api"
	"gallerydeck/internal/models"
)

// fakeInvoker scripts per-file outcomes and records call order.
type fakeInvoker struct {
	mu       sync.Mutex
	calls    []string
	metas    []models.UploadMetadata
	failures map[string]int    // name -> remaining failures
	details  map[string]string // name -> server detail for failures

	started      chan string   // when non-nil, receives each file name at call start
	release      chan struct{} // when non-nil, every call blocks until it is closed
	emitProgress bool
}

func (f *fakeInvoker) UploadPhoto(ctx context.Context, file models.UploadFile, meta models.UploadMetadata, progress api.ProgressFunc) (*models.PhotoUploadResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, file.Name)
	f.metas = append(f.metas, meta)
	fail := f.failures[file.Name] > 0
	if fail {
		f.failures[file.Name]--
	}
	detail := f.details[file.Name]
	f.mu.Unlock()

	if f.started != nil {
		f.started <- file.Name
	}
	if f.release != nil {
		<-f.release
	}

	if f.emitProgress && progress != nil {
		progress(file.Size()/2, file.Size())
		progress(file.Size(), file.Size())
	}

	if fail {
		msg := detail
		if msg == "" {
			msg = "request failed"
		}
		return nil, &api.Error{Status: http.StatusRequestEntityTooLarge, Detail: detail, Message: msg}
	}
	return &models.PhotoUploadResponse{Filename: file.Name, Status: "pending"}, nil
}

func (f *fakeInvoker) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeRenderer prefixes the source bytes; an optional gate delays every
// render until released.
type fakeRenderer struct {
	gate chan struct{}
}

func (r *fakeRenderer) Render(src []byte) ([]byte, error) {
	if r.gate != nil {
		<-r.gate
	}
	return append([]byte("preview:"), src...), nil
}

func file(name string) models.UploadFile {
	return models.UploadFile{Name: name, Data: []byte("data-" + name)}
}

// ---------- AddFiles / RemoveFile ----------

func TestAddFiles(t *testing.T) {
	q := NewQueue(&fakeInvoker{}, &fakeRenderer{})
	q.AddFiles(file("a.jpg"), file("b.jpg"), file("c.jpg"))

	items := q.Items()
	if len(items) != 3 {
		t.Fatalf("items: got %d, want 3", len(items))
	}
	wantOrder := []string{"a.jpg", "b.jpg", "c.jpg"}
	seen := map[string]bool{}
	for i, item := range items {
		if item.File.Name != wantOrder[i] {
			t.Errorf("order[%d]: got %q, want %q", i, item.File.Name, wantOrder[i])
		}
		if item.Status != StatusPending {
			t.Errorf("%s status: got %q, want pending", item.File.Name, item.Status)
		}
		if item.Progress != 0 {
			t.Errorf("%s progress: got %d, want 0", item.File.Name, item.Progress)
		}
		if seen[item.ID.String()] {
			t.Errorf("duplicate item id %s", item.ID)
		}
		seen[item.ID.String()] = true
	}

	q.WaitPreviews()
	for _, item := range q.Items() {
		if string(item.Preview) != "preview:data-"+item.File.Name {
			t.Errorf("%s preview: got %q", item.File.Name, item.Preview)
		}
	}

	if got := q.PendingCount(); got != 3 {
		t.Errorf("PendingCount: got %d, want 3", got)
	}
	if !q.CanUpload() {
		t.Error("CanUpload: got false, want true")
	}
}

func TestRemoveFile(t *testing.T) {
	q := NewQueue(&fakeInvoker{}, nil)
	q.AddFiles(file("a.jpg"), file("b.jpg"))

	if !q.RemoveFile(0) {
		t.Fatal("RemoveFile(0) failed")
	}
	items := q.Items()
	if len(items) != 1 || items[0].File.Name != "b.jpg" {
		t.Errorf("after remove: got %+v", items)
	}
	if q.RemoveFile(5) {
		t.Error("RemoveFile out of range should report false")
	}
}

// A preview that finishes after its item was removed must land nowhere.
func TestPreviewAfterRemoval(t *testing.T) {
	gate := make(chan struct{})
	q := NewQueue(&fakeInvoker{}, &fakeRenderer{gate: gate})
	q.AddFiles(file("a.jpg"))
	q.RemoveFile(0)

	close(gate)
	q.WaitPreviews()

	if q.Len() != 0 {
		t.Errorf("Len: got %d, want 0", q.Len())
	}
}

// ---------- StartUpload ----------

func TestStartUploadBatch(t *testing.T) {
	t.Run("uploads sequentially and isolates the failure", func(t *testing.T) {
		inv := &fakeInvoker{
			failures:     map[string]int{"c.jpg": 1},
			details:      map[string]string{"c.jpg": "file too large"},
			emitProgress: true,
		}
		q := NewQueue(inv, nil)
		q.AddFiles(file("a.jpg"), file("b.jpg"), file("c.jpg"))

		result, err := q.StartUpload(context.Background())
		if err != nil {
			t.Fatalf("StartUpload: %v", err)
		}

		wantOrder := []string{"a.jpg", "b.jpg", "c.jpg"}
		for i, name := range wantOrder {
			if inv.calls[i] != name {
				t.Errorf("call order[%d]: got %q, want %q", i, inv.calls[i], name)
			}
		}

		if result.Total != 3 || result.Succeeded != 2 || result.Failed != 1 {
			t.Errorf("result: got %+v", result)
		}
		if got := result.Summary(); got != "2 succeeded, 1 failed" {
			t.Errorf("Summary: got %q", got)
		}

		if q.SuccessCount() != 2 || q.ErrorCount() != 1 || q.PendingCount() != 0 {
			t.Errorf("counts: success=%d error=%d pending=%d", q.SuccessCount(), q.ErrorCount(), q.PendingCount())
		}

		items := q.Items()
		for _, item := range items[:2] {
			if item.Status != StatusSuccess || item.Progress != 100 {
				t.Errorf("%s: got status=%q progress=%d", item.File.Name, item.Status, item.Progress)
			}
		}
		failed := items[2]
		if failed.Status != StatusError || failed.Progress != 0 {
			t.Errorf("c.jpg: got status=%q progress=%d", failed.Status, failed.Progress)
		}
		if failed.ErrorMsg != "file too large" {
			t.Errorf("c.jpg ErrorMsg: got %q", failed.ErrorMsg)
		}
	})

	t.Run("full success summary", func(t *testing.T) {
		q := NewQueue(&fakeInvoker{}, nil)
		q.AddFiles(file("a.jpg"), file("b.jpg"))

		result, err := q.StartUpload(context.Background())
		if err != nil {
			t.Fatalf("StartUpload: %v", err)
		}
		if got := result.Summary(); got != "all 2 uploaded" {
			t.Errorf("Summary: got %q", got)
		}
	})

	t.Run("attaches the batch metadata to every item", func(t *testing.T) {
		inv := &fakeInvoker{}
		q := NewQueue(inv, nil)
		q.AddFiles(file("a.jpg"), file("b.jpg"))
		q.SetMetadata(models.UploadMetadata{Season: "winter", Category: "campus"})

		if _, err := q.StartUpload(context.Background()); err != nil {
			t.Fatalf("StartUpload: %v", err)
		}
		for i, meta := range inv.metas {
			if meta.Season != "winter" || meta.Category != "campus" {
				t.Errorf("meta[%d]: got %+v", i, meta)
			}
		}
	})

	t.Run("generic message when failure has no detail", func(t *testing.T) {
		inv := &fakeInvoker{failures: map[string]int{"a.jpg": 1}}
		q := NewQueue(inv, nil)
		q.AddFiles(file("a.jpg"))

		if _, err := q.StartUpload(context.Background()); err != nil {
			t.Fatalf("StartUpload: %v", err)
		}
		if got := q.Items()[0].ErrorMsg; got != "upload failed" {
			t.Errorf("ErrorMsg: got %q", got)
		}
	})
}

func TestStartUploadMutualExclusion(t *testing.T) {
	inv := &fakeInvoker{
		started: make(chan string, 1),
		release: make(chan struct{}),
	}
	q := NewQueue(inv, nil)
	q.AddFiles(file("a.jpg"))

	done := make(chan *Result, 1)
	go func() {
		r, _ := q.StartUpload(context.Background())
		done <- r
	}()
	<-inv.started

	if !q.Uploading() {
		t.Error("Uploading: got false during batch")
	}
	if q.CanUpload() {
		t.Error("CanUpload: got true during batch")
	}

	// Second batch while the first is in flight: rejected, no network.
	if _, err := q.StartUpload(context.Background()); !errors.Is(err, ErrBatchInFlight) {
		t.Errorf("second StartUpload: got %v, want ErrBatchInFlight", err)
	}
	if inv.callCount() != 1 {
		t.Errorf("invoker calls: got %d, want 1", inv.callCount())
	}

	close(inv.release)
	result := <-done
	if result.Succeeded != 1 {
		t.Errorf("Succeeded: got %d, want 1", result.Succeeded)
	}
	if q.Uploading() {
		t.Error("Uploading: got true after batch finished")
	}
}

func TestStartUploadSnapshot(t *testing.T) {
	inv := &fakeInvoker{
		started: make(chan string, 1),
		release: make(chan struct{}),
	}
	q := NewQueue(inv, nil)
	q.AddFiles(file("a.jpg"))

	done := make(chan *Result, 1)
	go func() {
		r, _ := q.StartUpload(context.Background())
		done <- r
	}()
	<-inv.started

	// Added mid-batch: must not be picked up by this run.
	q.AddFiles(file("late.jpg"))

	close(inv.release)
	result := <-done

	if inv.callCount() != 1 {
		t.Errorf("invoker calls: got %d, want 1", inv.callCount())
	}
	if result.Total != 1 || result.Succeeded != 1 {
		t.Errorf("result: got %+v", result)
	}

	items := q.Items()
	if items[1].Status != StatusPending {
		t.Errorf("late item status: got %q, want pending", items[1].Status)
	}
	// successCount + errorCount equals the snapshot size, late item aside.
	if q.SuccessCount()+q.ErrorCount() != result.Total {
		t.Errorf("counts vs snapshot: %d+%d != %d", q.SuccessCount(), q.ErrorCount(), result.Total)
	}
}

// ---------- ClearAll ----------

func TestClearAll(t *testing.T) {
	t.Run("resets items and metadata", func(t *testing.T) {
		q := NewQueue(&fakeInvoker{}, nil)
		q.AddFiles(file("a.jpg"))
		q.SetMetadata(models.UploadMetadata{Season: "spring"})

		q.ClearAll()

		if q.Len() != 0 {
			t.Errorf("Len: got %d, want 0", q.Len())
		}
		if got := q.Metadata(); got != (models.UploadMetadata{}) {
			t.Errorf("Metadata: got %+v, want zero", got)
		}
	})

	t.Run("mid-flight clear orphans the transfer", func(t *testing.T) {
		inv := &fakeInvoker{
			started: make(chan string, 1),
			release: make(chan struct{}),
		}
		q := NewQueue(inv, nil)
		q.AddFiles(file("a.jpg"))

		done := make(chan *Result, 1)
		go func() {
			r, _ := q.StartUpload(context.Background())
			done <- r
		}()
		<-inv.started

		q.ClearAll()
		if q.Uploading() {
			t.Error("Uploading: got true right after ClearAll")
		}

		// The orphaned completion must be ignored, not written anywhere.
		close(inv.release)
		result := <-done

		if q.Len() != 0 {
			t.Errorf("Len: got %d, want 0", q.Len())
		}
		if result.Total != 0 {
			t.Errorf("result.Total: got %d, want 0 (item left the snapshot)", result.Total)
		}
	})
}

// ---------- Retry ----------

func TestRetry(t *testing.T) {
	t.Run("ignored unless the item is in error state", func(t *testing.T) {
		inv := &fakeInvoker{}
		q := NewQueue(inv, nil)
		q.AddFiles(file("a.jpg"))

		q.Retry(context.Background(), 0) // pending, not error
		if inv.callCount() != 0 {
			t.Errorf("invoker calls: got %d, want 0", inv.callCount())
		}

		q.Retry(context.Background(), 7) // out of range
		if inv.callCount() != 0 {
			t.Errorf("invoker calls: got %d, want 0", inv.callCount())
		}
	})

	t.Run("failed item retries to success", func(t *testing.T) {
		inv := &fakeInvoker{
			failures: map[string]int{"a.jpg": 1},
			details:  map[string]string{"a.jpg": "storage hiccup"},
		}
		q := NewQueue(inv, nil)
		q.AddFiles(file("a.jpg"))
		if _, err := q.StartUpload(context.Background()); err != nil {
			t.Fatalf("StartUpload: %v", err)
		}
		if got := q.Items()[0].Status; got != StatusError {
			t.Fatalf("status after batch: got %q, want error", got)
		}

		q.Retry(context.Background(), 0)

		item := q.Items()[0]
		if item.Status != StatusSuccess || item.Progress != 100 {
			t.Errorf("after retry: status=%q progress=%d", item.Status, item.Progress)
		}
		if item.ErrorMsg != "" {
			t.Errorf("ErrorMsg not cleared: %q", item.ErrorMsg)
		}
		if inv.callCount() != 2 {
			t.Errorf("invoker calls: got %d, want 2", inv.callCount())
		}
		if q.Uploading() {
			t.Error("Uploading: got true after standalone retry")
		}
	})

	t.Run("repeated failure gets a fresh message", func(t *testing.T) {
		inv := &fakeInvoker{
			failures: map[string]int{"a.jpg": 2},
			details:  map[string]string{"a.jpg": "still too large"},
		}
		q := NewQueue(inv, nil)
		q.AddFiles(file("a.jpg"))
		if _, err := q.StartUpload(context.Background()); err != nil {
			t.Fatalf("StartUpload: %v", err)
		}

		q.Retry(context.Background(), 0)

		item := q.Items()[0]
		if item.Status != StatusError {
			t.Errorf("status: got %q, want error", item.Status)
		}
		if item.ErrorMsg != "still too large" {
			t.Errorf("ErrorMsg: got %q", item.ErrorMsg)
		}
	})
}

// ---------- progress ----------

func TestProgressReporting(t *testing.T) {
	inv := &fakeInvoker{emitProgress: true}
	q := NewQueue(inv, nil)
	q.AddFiles(file("a.jpg"))

	if _, err := q.StartUpload(context.Background()); err != nil {
		t.Fatalf("StartUpload: %v", err)
	}
	if got := q.Items()[0].Progress; got != 100 {
		t.Errorf("final progress: got %d, want 100", got)
	}
}
