package policy

import (
	"testing"

	"gallerydeck/internal/models"
)

// fakeSubject is a fixed-state policy subject.
type fakeSubject struct {
	authed bool
	role   models.Role
}

func (f fakeSubject) IsAuthenticated() bool { return f.authed }
func (f fakeSubject) IsAdmin() bool         { return f.authed && f.role == models.RoleAdmin }
func (f fakeSubject) IsAuditor() bool {
	return f.authed && (f.role == models.RoleAdmin || f.role == models.RoleAuditor)
}

func (f fakeSubject) HasRole(roles ...models.Role) bool {
	if !f.authed {
		return false
	}
	for _, r := range roles {
		if f.role == r {
			return true
		}
	}
	return false
}

var (
	anonymous = fakeSubject{}
	plainUser = fakeSubject{authed: true, role: models.RoleUser}
	auditor   = fakeSubject{authed: true, role: models.RoleAuditor}
	admin     = fakeSubject{authed: true, role: models.RoleAdmin}
)

func TestEvaluate(t *testing.T) {
	auth := Requirement{RequiresAuth: true}
	auditorReq := Requirement{RequiresAuth: true, RequiresAuditor: true}
	adminReq := Requirement{RequiresAuth: true, RequiresAdmin: true}

	tests := []struct {
		name    string
		req     Requirement
		subject Subject
		want    Verdict
	}{
		{"open route, anonymous", Requirement{}, anonymous, Allowed},
		{"auth route, anonymous", auth, anonymous, DenyUnauthenticated},
		{"auth route, plain user", auth, plainUser, Allowed},
		{"auditor route, plain user", auditorReq, plainUser, DenyNotAuditor},
		{"auditor route, auditor", auditorReq, auditor, Allowed},
		{"auditor route, admin", auditorReq, admin, Allowed},
		{"admin route, auditor", adminReq, auditor, DenyNotAdmin},
		{"admin route, admin", adminReq, admin, Allowed},
		// Missing auth outranks the role check even when both fail.
		{"admin route, anonymous", adminReq, anonymous, DenyUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.req, tt.subject); got != tt.want {
				t.Errorf("Evaluate: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisible(t *testing.T) {
	adminOnly := []models.Role{models.RoleAdmin}
	reviewers := []models.Role{models.RoleAdmin, models.RoleAuditor}

	tests := []struct {
		name    string
		subject Subject
		roles   []models.Role
		want    bool
	}{
		{"unbound element always shows", plainUser, nil, true},
		{"admin element hidden from anonymous", anonymous, adminOnly, false},
		{"admin element hidden from user", plainUser, adminOnly, false},
		{"admin element shown to admin", admin, adminOnly, true},
		{"reviewer element shown to auditor", auditor, reviewers, true},
		{"reviewer element shown to admin", admin, reviewers, true},
		{"reviewer element hidden from user", plainUser, reviewers, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.subject, tt.roles...); got != tt.want {
				t.Errorf("Visible: got %v, want %v", got, tt.want)
			}
		})
	}
}

// Visibility must track the subject's current state, not the state at
// bind time: the same check against a changed session flips immediately.
func TestVisibleRecomputes(t *testing.T) {
	subject := &fakeSubject{authed: true, role: models.RoleUser}
	roles := []models.Role{models.RoleAdmin}

	if Visible(subject, roles...) {
		t.Fatal("plain user must not see admin element")
	}
	subject.role = models.RoleAdmin
	if !Visible(subject, roles...) {
		t.Fatal("promoted user must see admin element on next evaluation")
	}
}
