// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// UsernameKey is the key the username is persisted under.
const UsernameKey = "username"

var ErrEmptyUsername = errors.New("username must not be empty")

// Store persists the observer's username between runs.
type Store interface {
	// Username returns the saved name, or "" when none is saved.
	Username(ctx context.Context) (string, error)
	SetUsername(ctx context.Context, name string) error
}

// Login is the login stub: it trims the name and saves it.
func Login(ctx context.Context, s Store, username string) (string, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return "", ErrEmptyUsername
	}
	if err := s.SetUsername(ctx, name); err != nil {
		return "", fmt.Errorf("save username: %w", err)
	}
	return name, nil
}

// FileStore keeps a small JSON key-value document on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Username(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[UsernameKey], nil
}

func (s *FileStore) SetUsername(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[UsernameKey] = name

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create identity dir: %w", err)
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	return replaceFile(s.path, data)
}

// replaceFile writes then renames so a crash never leaves a truncated
// file. The temp file is removed when the rename fails.
func replaceFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write identity file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace identity file: %w", err)
	}
	return nil
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read identity file: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode identity file %s: %w", s.path, err)
	}
	return values, nil
}

// MemoryStore keeps the username in memory.
type MemoryStore struct {
	mu   sync.Mutex
	name string
}

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{name: name}
}

func (s *MemoryStore) Username(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name, nil
}

func (s *MemoryStore) SetUsername(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	return nil
}
