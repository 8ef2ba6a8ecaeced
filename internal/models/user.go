// Package models defines the wire-level data structures exchanged with the
// gallery API and the core types used throughout the client.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's permission level in the gallery.
type Role string

const (
	// RoleAdmin has every permission, including user and settings management.
	RoleAdmin Role = "admin"
	// RoleAuditor may review photos and manage tags, but not users.
	RoleAuditor Role = "auditor"
	// RoleDeptUser is reserved for future department-scoped access. It
	// currently grants nothing beyond RoleUser.
	RoleDeptUser Role = "dept_user"
	// RoleUser is the default unprivileged role.
	RoleUser Role = "user"
)

// User represents a gallery account as returned by the API. The role is
// immutable on this side: it only changes by re-fetching the user.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsAuditor returns true for auditors and admins: every admin can do what
// an auditor can.
func (u *User) IsAuditor() bool {
	return u.Role == RoleAdmin || u.Role == RoleAuditor
}

// LoginRequest is the payload for the login endpoint. Identifier accepts
// either an email address or a student number.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// UserCreate is the admin payload for creating an account.
type UserCreate struct {
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	Password string  `json:"password"`
	Role     Role    `json:"role,omitempty"`
}

// UserUpdate is the admin payload for updating an account. Nil fields are
// left unchanged by the server.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Role     *Role   `json:"role,omitempty"`
}

// UserList is one page of accounts.
type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}
