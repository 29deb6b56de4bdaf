package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "profile.msgpack"))
	if _, err := s.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on a missing file = %v, want ErrNotFound", err)
	}
}

func TestSaveLoad(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "profile.msgpack"))
	saved := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if err := s.Save(Profile{Name: "  Ada Lovelace  ", SavedAt: saved}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	p, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name != "Ada Lovelace" {
		t.Errorf("Name = %q", p.Name)
	}
	if !p.SavedAt.Equal(saved) {
		t.Errorf("SavedAt = %v, want %v", p.SavedAt, saved)
	}
	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind")
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.msgpack")
	if err := os.WriteFile(path, []byte{0xc1}, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewStore(path).Load()
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("corrupt profile should fail to decode, got %v", err)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  Hero ", "Hero"},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnop"},
		{"ééééééééééééééééé", "éééééééééééééééé"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
