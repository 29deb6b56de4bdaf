// Package profile persists the player's display name between runs.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// MaxNameLength caps a stored display name, in runes.
const MaxNameLength = 16

// ErrNotFound is returned by Load when no profile has been saved yet.
var ErrNotFound = errors.New("profile not found")

// Profile is the persisted record.
type Profile struct {
	Name    string    `msgpack:"name"`
	SavedAt time.Time `msgpack:"saved_at"`
}

// Store reads and writes a single profile file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user profile location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "galaxyblaster", "profile.msgpack"), nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved profile.
func (s *Store) Load() (Profile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", s.path, err)
	}
	p.Name = NormalizeName(p.Name)
	return p, nil
}

// Save writes p, replacing any earlier profile.
func (s *Store) Save(p Profile) error {
	p.Name = NormalizeName(p.Name)
	if p.SavedAt.IsZero() {
		p.SavedAt = time.Now().UTC()
	}
	data, err := msgpack.Marshal(&p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	// Write then rename so a crash never leaves a truncated profile
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// NormalizeName trims surrounding space and caps the name at MaxNameLength runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLength {
		name = strings.TrimSpace(string(r[:MaxNameLength]))
	}
	return name
}
