// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package policy evaluates access requirements against the current
// session. Everything here is a pure function over the subject's current
// state; results are never cached, so a role change is visible on the
// very next evaluation.
package policy

import "gallerydeck/internal/models"

// Subject is what the evaluator needs to know about the caller. The
// session store implements it; tests use simple fakes.
type Subject interface {
	IsAuthenticated() bool
	IsAdmin() bool
	IsAuditor() bool
	HasRole(roles ...models.Role) bool
}

// Requirement describes who may perform a navigation or action. The zero
// value requires nothing; the route table applies the requires-auth
// default for unlisted destinations.
type Requirement struct {
	RequiresAuth    bool
	RequiresAdmin   bool
	RequiresAuditor bool
}

// Verdict is the outcome of evaluating one requirement.
type Verdict int

const (
	// Allowed means every check passed.
	Allowed Verdict = iota
	// DenyUnauthenticated means authentication is required and missing.
	DenyUnauthenticated
	// DenyNotAdmin means the destination is admin-only.
	DenyNotAdmin
	// DenyNotAuditor means the destination needs auditor or admin.
	DenyNotAuditor
)

// String returns a short identifier for logging.
func (v Verdict) String() string {
	switch v {
	case Allowed:
		return "allowed"
	case DenyUnauthenticated:
		return "unauthenticated"
	case DenyNotAdmin:
		return "not-admin"
	case DenyNotAuditor:
		return "not-auditor"
	default:
		return "unknown"
	}
}

// Evaluate checks the requirement in strict precedence order: missing
// authentication is always reported before an insufficient role, no
// matter how many role tiers the requirement names.
func Evaluate(req Requirement, subject Subject) Verdict {
	if req.RequiresAuth && !subject.IsAuthenticated() {
		return DenyUnauthenticated
	}
	if req.RequiresAdmin && !subject.IsAdmin() {
		return DenyNotAdmin
	}
	if req.RequiresAuditor && !subject.IsAuditor() {
		return DenyNotAuditor
	}
	return Allowed
}

// Visible is the element-level gate: it reports whether a UI element
// bound to the given roles should be shown at all. Hidden beats disabled:
// a caller that fails the check must not render the element. With no
// roles the element is unconditionally visible.
func Visible(subject Subject, roles ...models.Role) bool {
	if len(roles) == 0 {
		return true
	}
	return subject.HasRole(roles...)
}
