package settings

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryBackend keeps records in memory.
type MemoryBackend struct {
	mu      sync.Mutex
	data    map[string][]byte
	updated map[string]time.Time
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		data:    make(map[string][]byte),
		updated: make(map[string]time.Time),
	}
}

func (m *MemoryBackend) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), d...), nil
}

func (m *MemoryBackend) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	m.updated[key] = time.Now()
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.updated, key)
	return nil
}

func (m *MemoryBackend) UpdatedAt(key string) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.updated[key]
	if !ok {
		return time.Time{}, ErrNotFound
	}
	return t, nil
}

// FileBackend stores each key as a YAML file inside a directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the directory if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating settings dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) path(key string) string {
	name := strings.NewReplacer(":", "-", "/", "-", string(filepath.Separator), "-").Replace(key)
	return filepath.Join(f.dir, name+".yaml")
}

func (f *FileBackend) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	return data, nil
}

func (f *FileBackend) Write(key string, data []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("replacing settings file: %w", err)
	}
	return nil
}

func (f *FileBackend) Delete(key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

func (f *FileBackend) UpdatedAt(key string) (time.Time, error) {
	info, err := os.Stat(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// SQLiteBackend stores records in a settings table.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the database at dbPath.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening settings db: %w", err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating settings table: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) Read(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return data, nil
}

func (s *SQLiteBackend) Write(key string, data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

func (s *SQLiteBackend) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting settings: %w", err)
	}
	return nil
}

func (s *SQLiteBackend) UpdatedAt(key string) (time.Time, error) {
	var ts string
	err := s.db.QueryRow(`SELECT updated_at FROM settings WHERE key = ?`, key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading settings timestamp: %w", err)
	}
	return time.Parse(time.RFC3339Nano, ts)
}

// Close closes the database connection.
func (s *SQLiteBackend) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Open returns the backend named kind ("file", "sqlite", "memory") rooted
// at path. "none" returns a nil backend so the store runs unpersisted.
func Open(kind, path string) (Backend, error) {
	switch kind {
	case "", "file":
		b, err := NewFileBackend(path)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating settings dir: %w", err)
		}
		b, err := NewSQLiteBackend(path)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "memory":
		return NewMemoryBackend(), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown settings backend %q", kind)
	}
}
