// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package nav owns the navigable route table and the guard that decides,
// for every navigation attempt, whether to allow it or where to redirect
// instead. The guard runs before any API call is made so denied callers
// never reach the network.
package nav

import (
	"net/url"

	"gallerydeck/internal/policy"
)

// Route paths. These mirror the front-end destinations one to one.
const (
	PathLogin     = "/login"
	PathGallery   = "/"
	PathUpload    = "/upload"
	PathAdmin     = "/admin"
	PathDashboard = "/admin/dashboard"
	PathReview    = "/admin/review"
	PathTags      = "/admin/tags"
	PathImport    = "/admin/import"
	PathUsers     = "/admin/users"
	PathSettings  = "/admin/settings"
)

// Route binds a destination to its access requirement.
type Route struct {
	Path string
	Name string
	Req  policy.Requirement
}

// Routes returns the full route table. The gallery and the login page are
// public; uploading needs a login; the admin subtree needs auditor, with
// user and settings management tightened to admin.
func Routes() []Route {
	auditor := policy.Requirement{RequiresAuth: true, RequiresAuditor: true}
	admin := policy.Requirement{RequiresAuth: true, RequiresAdmin: true}

	return []Route{
		{Path: PathLogin, Name: "Login", Req: policy.Requirement{}},
		{Path: PathGallery, Name: "Gallery", Req: policy.Requirement{}},
		{Path: PathUpload, Name: "Upload", Req: policy.Requirement{RequiresAuth: true}},
		{Path: PathAdmin, Name: "Admin", Req: auditor},
		{Path: PathDashboard, Name: "Dashboard", Req: auditor},
		{Path: PathReview, Name: "PhotoReview", Req: auditor},
		{Path: PathTags, Name: "TagManagement", Req: auditor},
		{Path: PathImport, Name: "PhotoImport", Req: auditor},
		{Path: PathUsers, Name: "UserManagement", Req: admin},
		{Path: PathSettings, Name: "SystemSettings", Req: admin},
	}
}

// Reason says why a navigation was redirected.
type Reason int

const (
	ReasonAllowed Reason = iota
	ReasonLoginRequired
	ReasonInsufficientRole
	ReasonAlreadyAuthenticated
)

// String returns a short identifier for logging and CLI output.
func (r Reason) String() string {
	switch r {
	case ReasonAllowed:
		return "allowed"
	case ReasonLoginRequired:
		return "login required"
	case ReasonInsufficientRole:
		return "insufficient role"
	case ReasonAlreadyAuthenticated:
		return "already authenticated"
	default:
		return "unknown"
	}
}

// Decision is the guard's answer for one navigation attempt. When Allow
// is false, Target is where to go instead.
type Decision struct {
	Allow  bool
	Target string
	Reason Reason
}

// Guard checks navigation attempts against the route table and the
// caller's session.
type Guard struct {
	subject policy.Subject
	routes  map[string]Route
}

// NewGuard builds a guard over the standard route table.
func NewGuard(subject policy.Subject) *Guard {
	routes := make(map[string]Route)
	for _, r := range Routes() {
		routes[r.Path] = r
	}
	return &Guard{subject: subject, routes: routes}
}

// Check decides a navigation to path. Precedence is fixed: missing
// authentication, then insufficient role, then the already-logged-in
// login page bounce, then allow.
func (g *Guard) Check(path string) Decision {
	route, known := g.routes[path]
	if !known {
		// Unlisted destinations require authentication; that is the
		// route-table default, not an error.
		route = Route{Path: path, Name: "NotFound", Req: policy.Requirement{RequiresAuth: true}}
	}

	switch policy.Evaluate(route.Req, g.subject) {
	case policy.DenyUnauthenticated:
		return Decision{
			Target: PathLogin + "?redirect=" + url.QueryEscape(path),
			Reason: ReasonLoginRequired,
		}
	case policy.DenyNotAdmin:
		// Auditors land on their dashboard; everyone else goes home.
		target := PathGallery
		if g.subject.IsAuditor() {
			target = PathDashboard
		}
		return Decision{Target: target, Reason: ReasonInsufficientRole}
	case policy.DenyNotAuditor:
		return Decision{Target: PathGallery, Reason: ReasonInsufficientRole}
	}

	if route.Path == PathLogin && g.subject.IsAuthenticated() {
		return Decision{Target: PathGallery, Reason: ReasonAlreadyAuthenticated}
	}
	return Decision{Allow: true, Reason: ReasonAllowed}
}
