package models

import (
	"time"

	"github.com/google/uuid"
)

// PhotoStatus tracks where a photo is in the review workflow.
type PhotoStatus string

const (
	PhotoPending  PhotoStatus = "pending"
	PhotoApproved PhotoStatus = "approved"
	PhotoRejected PhotoStatus = "rejected"
)

// Photo is the full photo record returned by the API.
type Photo struct {
	ID               uuid.UUID      `json:"id"`
	UploaderID       uuid.UUID      `json:"uploader_id"`
	Filename         string         `json:"filename"`
	OriginalPath     string         `json:"original_path"`
	ProcessedPath    *string        `json:"processed_path"`
	ThumbPath        *string        `json:"thumb_path"`
	Width            *int           `json:"width"`
	Height           *int           `json:"height"`
	FileSize         *int64         `json:"file_size"`
	MimeType         *string        `json:"mime_type"`
	Season           *string        `json:"season"`
	Category         *string        `json:"category"`
	Campus           *string        `json:"campus"`
	Description      *string        `json:"description"`
	ExifData         map[string]any `json:"exif_data"`
	Status           PhotoStatus    `json:"status"`
	ProcessingStatus string         `json:"processing_status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	CapturedAt       *time.Time     `json:"captured_at"`
	PublishedAt      *time.Time     `json:"published_at"`
	Tags             []string       `json:"tags"`
	UploaderName     *string        `json:"uploader_name"`
}

// PhotoUpdate carries partial edits to a photo's metadata.
type PhotoUpdate struct {
	Description *string      `json:"description,omitempty"`
	Season      *string      `json:"season,omitempty"`
	Category    *string      `json:"category,omitempty"`
	Campus      *string      `json:"campus,omitempty"`
	Status      *PhotoStatus `json:"status,omitempty"`
}

// PhotoListParams are the filter and paging options for photo listings.
// Zero values are omitted from the query string.
type PhotoListParams struct {
	Skip     int
	Limit    int
	Status   string
	Season   string
	Category string
	Search   string
}

// PhotoList is one page of photos.
type PhotoList struct {
	Photos []Photo `json:"photos"`
	Total  int     `json:"total"`
}

// PhotoUploadResponse is the record created by a successful upload.
type PhotoUploadResponse struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	OriginalPath string    `json:"original_path"`
	ThumbPath    *string   `json:"thumb_path"`
	Width        *int      `json:"width"`
	Height       *int      `json:"height"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
}

// BatchReviewResult reports the outcome of a batch approve or reject.
type BatchReviewResult struct {
	Message      string `json:"message"`
	UpdatedCount int    `json:"updated_count"`
}

// UploadFile is one local file queued for upload: the payload plus the
// name and size the server will see.
type UploadFile struct {
	Name string
	Data []byte
}

// Size returns the payload length in bytes.
func (f UploadFile) Size() int64 {
	return int64(len(f.Data))
}

// UploadMetadata is the batch-level metadata attached to every photo at
// send time. Empty fields are omitted from the request entirely.
type UploadMetadata struct {
	Season      string
	Category    string
	Description string
}
