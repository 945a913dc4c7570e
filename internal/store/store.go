// Package store provides the small key-value preference port used to
// persist user settings across sessions.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a typed key-value port with per-call defaults. Implementations
// must be safe for concurrent use.
type Store interface {
	GetBool(key string, def bool) bool
	SetBool(key string, v bool) error
	GetInt(key string, def int) int
	SetInt(key string, v int) error
}

// FileStore persists preferences as a single flat JSON document. Reads are
// served from memory; every Set rewrites the file.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
}

// DefaultPath returns the preference file location under the user config
// directory, e.g. ~/.config/esmon/prefs.json on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "esmon", "prefs.json"), nil
}

// OpenFileStore loads (or initialises) the preference file at path.
// A missing file is not an error — it is created on the first Set.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("parse prefs %s: %w", path, err)
	}
	return s, nil
}

// GetBool returns the stored boolean for key, or def when the key is absent
// or holds a non-boolean value.
func (s *FileStore) GetBool(key string, def bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return def
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// SetBool stores a boolean and rewrites the preference file.
func (s *FileStore) SetBool(key string, v bool) error {
	return s.set(key, v)
}

// GetInt returns the stored integer for key, or def when the key is absent
// or holds a non-numeric value.
func (s *FileStore) GetInt(key string, def int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return def
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// SetInt stores an integer and rewrites the preference file.
func (s *FileStore) SetInt(key string, v int) error {
	return s.set(key, v)
}

func (s *FileStore) set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode pref %q: %w", key, err)
	}
	s.values[key] = raw
	return s.flushLocked()
}

// flushLocked writes the document via a temp file + rename so a crash never
// leaves a truncated preference file behind.
func (s *FileStore) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and for running without a
// writable config directory.
type MemStore struct {
	mu    sync.Mutex
	bools map[string]bool
	ints  map[string]int
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		bools: make(map[string]bool),
		ints:  make(map[string]int),
	}
}

func (s *MemStore) GetBool(key string, def bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.bools[key]; ok {
		return v
	}
	return def
}

func (s *MemStore) SetBool(key string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bools[key] = v
	return nil
}

func (s *MemStore) GetInt(key string, def int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.ints[key]; ok {
		return v
	}
	return def
}

func (s *MemStore) SetInt(key string, v int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints[key] = v
	return nil
}
