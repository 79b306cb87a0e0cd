// Package settings persists small namespaced key-value records such as the
// toolbar's theme, size and display mode.
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by backends when a key has never been written.
var ErrNotFound = errors.New("settings: key not found")

// Record is one stored settings object.
type Record map[string]string

// Backend is the raw storage under a Store.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}

// Stamper is implemented by backends that track modification times.
type Stamper interface {
	UpdatedAt(key string) (time.Time, error)
}

// Store namespaces a backend by application name and settings key. A nil or
// failing backend degrades to empty loads and unsuccessful saves; no method
// returns an error or panics.
type Store struct {
	appName    string
	storageKey string
	backend    Backend
	log        *slog.Logger
}

// New creates a store. Empty names fall back to "toolbar" and "settings".
func New(appName, storageKey string, backend Backend, log *slog.Logger) *Store {
	if appName == "" {
		appName = "toolbar"
	}
	if storageKey == "" {
		storageKey = "settings"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{appName: appName, storageKey: storageKey, backend: backend, log: log}
}

// FullKey returns "<app>:<key>".
func (s *Store) FullKey() string {
	return s.appName + ":" + s.storageKey
}

// Available reports whether a backend is attached.
func (s *Store) Available() bool {
	return s != nil && s.backend != nil
}

// Load returns the saved record, or an empty record when nothing is stored
// or the backend is unavailable.
func (s *Store) Load() Record {
	if !s.Available() {
		return Record{}
	}
	data, err := s.backend.Read(s.FullKey())
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("failed to load settings", "key", s.FullKey(), "error", err)
		}
		return Record{}
	}
	rec := Record{}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		s.log.Warn("failed to decode settings", "key", s.FullKey(), "error", err)
		return Record{}
	}
	if rec == nil {
		rec = Record{}
	}
	return rec
}

// Save replaces the stored record.
func (s *Store) Save(rec Record) bool {
	if !s.Available() {
		return false
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		s.log.Warn("failed to encode settings", "key", s.FullKey(), "error", err)
		return false
	}
	if err := s.backend.Write(s.FullKey(), data); err != nil {
		s.log.Warn("failed to save settings", "key", s.FullKey(), "error", err)
		return false
	}
	return true
}

// Update merges fields into the stored record.
func (s *Store) Update(fields Record) bool {
	cur := s.Load()
	maps.Copy(cur, fields)
	return s.Save(cur)
}

// Get returns one field or def when absent.
func (s *Store) Get(key, def string) string {
	if v, ok := s.Load()[key]; ok {
		return v
	}
	return def
}

// Set writes one field.
func (s *Store) Set(key, value string) bool {
	return s.Update(Record{key: value})
}

// Clear removes the stored record.
func (s *Store) Clear() bool {
	if !s.Available() {
		return false
	}
	if err := s.backend.Delete(s.FullKey()); err != nil && !errors.Is(err, ErrNotFound) {
		s.log.Warn("failed to clear settings", "key", s.FullKey(), "error", err)
		return false
	}
	return true
}

// Exists reports whether a record is stored.
func (s *Store) Exists() bool {
	if !s.Available() {
		return false
	}
	_, err := s.backend.Read(s.FullKey())
	return err == nil
}

// UpdatedAt returns when the record was last written, if the backend knows.
func (s *Store) UpdatedAt() (time.Time, error) {
	if !s.Available() {
		return time.Time{}, fmt.Errorf("settings backend unavailable")
	}
	st, ok := s.backend.(Stamper)
	if !ok {
		return time.Time{}, fmt.Errorf("backend does not track modification times")
	}
	return st.UpdatedAt(s.FullKey())
}
