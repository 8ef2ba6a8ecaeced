// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package token persists the bearer token between runs. It is the client
// counterpart of the browser's localStorage "auth_token" key: one string
// under one well-known location, nothing else.
package token

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Source is the persisted token store consumed by the transport layer and
// the session store. Get returns "" when no token is stored; Clear is
// idempotent.
type Source interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// FileStore keeps the token in a single file with 0600 permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed token store at path. The parent
// directory is created on first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get reads the stored token. A missing file means no token, not an error.
func (s *FileStore) Get() (string, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token read: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Set writes the token, replacing any previous value.
func (s *FileStore) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("token write: %w", err)
	}
	return nil
}

// Clear removes the stored token. Removing a token that does not exist is
// not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("token clear: %w", err)
	}
	return nil
}

// MemStore is an in-memory Source for tests and ephemeral sessions.
type MemStore struct {
	mu    sync.Mutex
	token string
}

// NewMemStore creates an empty in-memory token store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Get returns the stored token or "".
func (s *MemStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Set replaces the stored token.
func (s *MemStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear removes the stored token.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
