package settings

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type failingBackend struct{}

func (failingBackend) Read(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingBackend) Write(string, []byte) error  { return errors.New("disk on fire") }
func (failingBackend) Delete(string) error         { return errors.New("disk on fire") }

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestFullKey(t *testing.T) {
	s := New("paint", "toolbar", nil, nil)
	if s.FullKey() != "paint:toolbar" {
		t.Errorf("FullKey() = %q", s.FullKey())
	}
	if New("", "", nil, nil).FullKey() != "toolbar:settings" {
		t.Error("default names wrong")
	}
}

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	sb, err := NewSQLiteBackend(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sb.Close() })
	return map[string]Backend{
		"memory": NewMemoryBackend(),
		"file":   fb,
		"sqlite": sb,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New("app", "bar", b, nil)
			if s.Exists() {
				t.Fatal("fresh store should be empty")
			}
			if got := s.Load(); len(got) != 0 {
				t.Fatalf("Load() on empty = %v", got)
			}
			if !s.Save(Record{"theme": "dark", "size": "large"}) {
				t.Fatal("Save failed")
			}
			if !s.Update(Record{"size": "small", "displayMode": "icon"}) {
				t.Fatal("Update failed")
			}
			got := s.Load()
			if got["theme"] != "dark" || got["size"] != "small" || got["displayMode"] != "icon" {
				t.Errorf("Load() = %v", got)
			}
			if s.Get("theme", "light") != "dark" || s.Get("missing", "def") != "def" {
				t.Error("Get wrong")
			}
			if !s.Set("theme", "light") || s.Get("theme", "") != "light" {
				t.Error("Set wrong")
			}
			if ts, err := s.UpdatedAt(); err != nil || time.Since(ts) > time.Minute {
				t.Errorf("UpdatedAt() = %v, %v", ts, err)
			}
			if !s.Clear() || s.Exists() {
				t.Error("Clear failed")
			}
			if !s.Clear() {
				t.Error("Clear of missing record should succeed")
			}
		})
	}
}

func TestNilBackendDegrades(t *testing.T) {
	s := New("app", "bar", nil, nil)
	if s.Save(Record{"a": "b"}) || s.Set("a", "b") || s.Clear() || s.Exists() {
		t.Fatal("nil backend should report failure")
	}
	if len(s.Load()) != 0 {
		t.Fatal("nil backend should load empty")
	}
	var nilStore *Store
	if nilStore.Available() {
		t.Fatal("nil store is unavailable")
	}
}

func TestFailingBackendWarns(t *testing.T) {
	var buf bytes.Buffer
	s := New("app", "bar", failingBackend{}, quietLogger(&buf))
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("Load() = %v", got)
	}
	if s.Save(Record{"a": "b"}) {
		t.Fatal("Save should fail")
	}
	if !strings.Contains(buf.String(), "disk on fire") {
		t.Errorf("warnings missing: %s", buf.String())
	}
	if _, err := s.UpdatedAt(); err == nil {
		t.Error("backend without timestamps should error")
	}
}

func TestCorruptRecord(t *testing.T) {
	var buf bytes.Buffer
	b := NewMemoryBackend()
	b.Write("app:bar", []byte("theme: [unterminated"))
	s := New("app", "bar", b, quietLogger(&buf))
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("corrupt record should load empty, got %v", got)
	}
	if !strings.Contains(buf.String(), "decode") {
		t.Error("expected decode warning")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for _, kind := range []string{"", "file", "memory"} {
		b, err := Open(kind, dir)
		if err != nil || b == nil {
			t.Errorf("Open(%q) = %v, %v", kind, b, err)
		}
	}
	b, err := Open("sqlite", dir+"/sub/settings.db")
	if err != nil {
		t.Fatalf("Open(sqlite): %v", err)
	}
	b.(*SQLiteBackend).Close()
	if b, err := Open("none", ""); err != nil || b != nil {
		t.Errorf("Open(none) = %v, %v", b, err)
	}
	if _, err := Open("redis", ""); err == nil {
		t.Error("unknown backend should error")
	}
}
