package models

import "github.com/google/uuid"

// DashboardStats feeds the admin dashboard.
type DashboardStats struct {
	TotalPhotos  int64           `json:"total_photos"`
	TotalViews   int64           `json:"total_views"`
	TotalStorage int64           `json:"total_storage"`
	DailyUploads []DailyCount    `json:"daily_uploads"`
	PopularTags  []TagCount      `json:"popular_tags"`
	TopPhotos    []TopPhotoEntry `json:"top_photos"`
}

// DailyCount is one day's upload count.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TagCount pairs a tag name with its usage count.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopPhotoEntry is one row of the most-viewed listing.
type TopPhotoEntry struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Views     int64     `json:"views"`
	ThumbPath *string   `json:"thumb_path,omitempty"`
}

// ViewResult is returned when a photo view is recorded.
type ViewResult struct {
	Message string `json:"message"`
	Views   int64  `json:"views"`
}

// PortraitVisibility controls who may see photos of people.
type PortraitVisibility string

const (
	PortraitPublic         PortraitVisibility = "public"
	PortraitLoginRequired  PortraitVisibility = "login_required"
	PortraitAuthorizedOnly PortraitVisibility = "authorized_only"
)

// SystemSettings is the admin-editable site configuration.
type SystemSettings struct {
	PortraitVisibility PortraitVisibility `json:"portrait_visibility"`
}

// ImportRequest starts a server-side batch import from a manifest file.
type ImportRequest struct {
	JSONPath    string  `json:"json_path"`
	ImageFolder *string `json:"image_folder,omitempty"`
}

// ImportStatus reports progress of a running batch import.
type ImportStatus struct {
	TaskID    uuid.UUID `json:"task_id"`
	State     string    `json:"state"`
	Total     int       `json:"total"`
	Processed int       `json:"processed"`
	Failed    int       `json:"failed"`
	Message   *string   `json:"message,omitempty"`
}
