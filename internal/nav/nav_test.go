package nav

import (
	"testing"

	"gallerydeck/internal/models"
)

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

func TestGuardCheck(t *testing.T) {
	anonymous := fakeSubject{}
	plainUser := fakeSubject{authed: true, role: models.RoleUser}
	auditor := fakeSubject{authed: true, role: models.RoleAuditor}
	admin := fakeSubject{authed: true, role: models.RoleAdmin}

	tests := []struct {
		name       string
		subject    fakeSubject
		path       string
		wantAllow  bool
		wantTarget string
		wantReason Reason
	}{
		{"anonymous visits gallery", anonymous, PathGallery, true, "", ReasonAllowed},
		{"anonymous visits login", anonymous, PathLogin, true, "", ReasonAllowed},
		{
			"anonymous visits upload",
			anonymous, PathUpload,
			false, "/login?redirect=%2Fupload", ReasonLoginRequired,
		},
		{
			"anonymous visits admin users",
			anonymous, PathUsers,
			false, "/login?redirect=%2Fadmin%2Fusers", ReasonLoginRequired,
		},
		{"user visits upload", plainUser, PathUpload, true, "", ReasonAllowed},
		{"user visits review", plainUser, PathReview, false, PathGallery, ReasonInsufficientRole},
		{"user visits admin users", plainUser, PathUsers, false, PathGallery, ReasonInsufficientRole},
		{"auditor visits review", auditor, PathReview, true, "", ReasonAllowed},
		{"auditor visits dashboard", auditor, PathDashboard, true, "", ReasonAllowed},
		// Auditors denied an admin-only page keep their dashboard access.
		{"auditor visits admin users", auditor, PathUsers, false, PathDashboard, ReasonInsufficientRole},
		{"auditor visits settings", auditor, PathSettings, false, PathDashboard, ReasonInsufficientRole},
		{"admin visits admin users", admin, PathUsers, true, "", ReasonAllowed},
		{"admin visits settings", admin, PathSettings, true, "", ReasonAllowed},
		{"authenticated user visits login", plainUser, PathLogin, false, PathGallery, ReasonAlreadyAuthenticated},
		{"admin visits login", admin, PathLogin, false, PathGallery, ReasonAlreadyAuthenticated},
		{
			"unknown path defaults to requiring auth",
			anonymous, "/no/such/page",
			false, "/login?redirect=%2Fno%2Fsuch%2Fpage", ReasonLoginRequired,
		},
		{"unknown path allowed once authenticated", plainUser, "/no/such/page", true, "", ReasonAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGuard(tt.subject)
			got := g.Check(tt.path)

			if got.Allow != tt.wantAllow {
				t.Errorf("Allow: got %v, want %v", got.Allow, tt.wantAllow)
			}
			if got.Target != tt.wantTarget {
				t.Errorf("Target: got %q, want %q", got.Target, tt.wantTarget)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason: got %v, want %v", got.Reason, tt.wantReason)
			}
		})
	}
}

// The guard reads the subject live: logging in between two checks of the
// same guard changes the answer without rebuilding anything.
func TestGuardTracksSession(t *testing.T) {
	subject := &fakeSubject{}
	g := NewGuard(subject)

	if d := g.Check(PathUpload); d.Allow {
		t.Fatal("anonymous upload must be denied")
	}
	subject.authed = true
	subject.role = models.RoleUser
	if d := g.Check(PathUpload); !d.Allow {
		t.Fatal("authenticated upload must be allowed")
	}
}
