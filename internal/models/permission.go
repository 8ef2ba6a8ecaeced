package models

import (
	"time"

	"github.com/google/uuid"
)

// Permission is a resource-scoped grant given to a user, e.g. access to a
// restricted photo category for a limited time.
type Permission struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	UserStudentID  string     `json:"user_student_id"`
	UserName       string     `json:"user_name"`
	ResourceType   string     `json:"resource_type"`
	ResourceKey    string     `json:"resource_key"`
	PermissionType string     `json:"permission_type"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	Note           *string    `json:"note"`
}

// PermissionGrant is the payload for granting a permission. Days of nil
// means the grant never expires.
type PermissionGrant struct {
	StudentID      string  `json:"student_id"`
	ResourceType   string  `json:"resource_type"`
	ResourceKey    string  `json:"resource_key"`
	PermissionType string  `json:"permission_type"`
	Days           *int    `json:"days"`
	Note           *string `json:"note,omitempty"`
}

// PermissionList holds all grants for one user.
type PermissionList struct {
	Permissions []Permission `json:"permissions"`
	Total       int          `json:"total"`
}
