// Package store persists the handful of integer counters that survive between sessions
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

// ErrNoPath is returned when no writable location for the score file can be found
var ErrNoPath = errors.New("store: no score file path")

// Store is a key-value store of integer counters
// Get never fails: missing or malformed entries read as zero
type Store interface {
	Get(key string) int
	Set(key string, value int) error
}

// parse reads a stored decimal string, anything else is zero
func parse(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

// MemStore keeps values in memory only
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) Get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return parse(m.values[key])
}

func (m *MemStore) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = strconv.Itoa(value)
	return nil
}

// SetRaw stores an unvalidated string, used to simulate a corrupted entry
func (m *MemStore) SetRaw(key, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = raw
}

// FileStore keeps values as decimal strings in a TOML file, rewritten on every Set
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// DefaultPath returns the per-user score file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "", ErrNoPath
	}
	return filepath.Join(dir, "retro-handheld", "scores.toml"), nil
}

// OpenFileStore loads path if it exists; a missing file starts empty
// A file that fails to decode is reported but the store is still usable and starts empty
func OpenFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	fs := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs, nil
		}
		return fs, fmt.Errorf("read scores %s: %w", path, err)
	}

	// Decode loosely so a hand-edited numeric value is not rejected
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fs, fmt.Errorf("decode scores %s: %w", path, err)
	}
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			fs.values[k] = val
		case int64:
			fs.values[k] = strconv.FormatInt(val, 10)
		}
	}
	return fs, nil
}

// Path returns the backing file path
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Get(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return parse(f.values[key])
}

// Set updates the value and rewrites the file
// The in-memory value is kept even when the write fails
func (f *FileStore) Set(key string, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = strconv.Itoa(value)
	return f.flush()
}

func (f *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".scores-*.toml")
	if err != nil {
		return fmt.Errorf("create temp score file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := toml.NewEncoder(tmp)
	if err := enc.Encode(f.values); err != nil {
		tmp.Close()
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp score file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace score file: %w", err)
	}
	return nil
}
