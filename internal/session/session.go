// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session holds the single authoritative record of who the caller
// is: the bearer token and the lazily fetched user behind it. Role
// predicates are computed on every read from the current user, never
// cached, so they cannot go stale against a refreshed profile.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gallerydeck/internal/models"
	"gallerydeck/internal/token"
)

// API is the slice of the transport layer the session store consumes.
type API interface {
	Login(ctx context.Context, identifier, password string) (*models.LoginResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Store owns the token/user pair. All mutation goes through its methods
// behind one mutex, so the pair is always observed consistently.
type Store struct {
	mu     sync.RWMutex
	token  string
	user   *models.User
	tokens token.Source
	api    API
}

// NewStore creates an empty, unauthenticated session store.
func NewStore(api API, tokens token.Source) *Store {
	return &Store{api: api, tokens: tokens}
}

// IsAuthenticated reports whether a token is present. The user may still
// be nil right after a restore, before the profile fetch lands.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// IsAdmin reports whether the loaded user is an admin.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin()
}

// IsAuditor reports whether the loaded user is an auditor or an admin.
func (s *Store) IsAuditor() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAuditor()
}

// CanReview is an alias for IsAuditor, named for the review workflow.
func (s *Store) CanReview() bool {
	return s.IsAuditor()
}

// HasRole reports whether the loaded user's role is one of the given
// roles. False when no user is loaded.
func (s *Store) HasRole(roles ...models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	for _, r := range roles {
		if s.user.Role == r {
			return true
		}
	}
	return false
}

// User returns a copy of the loaded user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current in-memory token, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Restore rebuilds the session from the persisted token. The token is set
// in memory first, so the caller counts as authenticated while the
// profile fetch is in flight; if that fetch fails the whole session,
// in-memory and persisted, is cleared. A token that cannot authenticate
// must never linger looking authenticated.
func (s *Store) Restore(ctx context.Context) error {
	tok, err := s.tokens.Get()
	if err != nil {
		return fmt.Errorf("session restore: %w", err)
	}
	if tok == "" {
		return nil
	}

	if expired(tok) {
		// Guaranteed 401; skip the round trip and discard it now.
		slog.Debug("persisted token already expired, discarding")
		s.Logout()
		return nil
	}

	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()

	if _, err := s.FetchCurrentUser(ctx); err != nil {
		s.Logout()
		return fmt.Errorf("session restore: %w", err)
	}
	return nil
}

// Login authenticates and, on success, stores the token and user in
// memory and persists the token. On failure nothing is mutated and the
// error is returned untouched for the caller to display.
func (s *Store) Login(ctx context.Context, identifier, password string) (*models.LoginResponse, error) {
	resp, err := s.api.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.token = resp.AccessToken
	u := resp.User
	s.user = &u
	s.mu.Unlock()

	if err := s.tokens.Set(resp.AccessToken); err != nil {
		// The session still works for this process; only persistence
		// across restarts is lost.
		slog.Warn("failed to persist auth token", "error", err)
	}
	return resp, nil
}

// Logout clears the in-memory session and the persisted token. Idempotent
// and never fails.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		slog.Warn("failed to clear persisted token", "error", err)
	}
}

// FetchCurrentUser refreshes the user profile from the server. Failure is
// propagated untouched; the stored user is left as it was.
func (s *Store) FetchCurrentUser(ctx context.Context) (*models.User, error) {
	u, err := s.api.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	copied := *u
	s.user = &copied
	s.mu.Unlock()
	return u, nil
}

// expired reports whether tok is a JWT whose exp claim is in the past.
// The signature is NOT verified; the server stays the authority, and this
// only short-circuits tokens that cannot possibly be accepted. Opaque
// tokens report false and go to the server as usual.
func expired(tok string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
