package models

import "time"

// Tag is a label attached to photos. Tags have integer IDs, unlike the
// UUID-keyed photo and user records.
type Tag struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Category   *string   `json:"category,omitempty"`
	Color      *string   `json:"color,omitempty"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// TagCreate is the payload for creating a tag.
type TagCreate struct {
	Name     string  `json:"name"`
	Category *string `json:"category,omitempty"`
	Color    *string `json:"color,omitempty"`
}

// TagUpdate carries partial edits to a tag.
type TagUpdate struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Color    *string `json:"color,omitempty"`
}

// TagList is one page of tags.
type TagList struct {
	Total int   `json:"total"`
	Items []Tag `json:"items"`
}

// TagListParams are the filter and paging options for tag listings.
type TagListParams struct {
	Skip     int
	Limit    int
	Search   string
	Category string
}
