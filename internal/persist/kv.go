// Package persist holds named JSON values that survive restarts.
//
// A Value is read once when loaded and written back on every change. Storage
// failures never reach the caller: a bad or missing entry yields the default,
// and a failed write only costs durability.
package persist

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const (
	// StateDirEnv overrides the state directory (used by tests and scripts).
	StateDirEnv = "BARBELL_STATE_DIR"
	// DefaultStateBase is the state directory relative to the user's home.
	DefaultStateBase = ".barbell"
)

// KV is the key-value storage behind Values.
// Get reports ok=false with a nil error when the key is absent.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// FileKV stores each key as <dir>/<key>.json.
type FileKV struct {
	dir string
	mu  sync.Mutex
}

// NewFileKV creates a store rooted at dir. The directory is created on first
// write.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

// DefaultStateDir returns $BARBELL_STATE_DIR, or ~/.barbell.
func DefaultStateDir() (string, error) {
	if dir := os.Getenv(StateDirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultStateBase), nil
}

// Dir returns the directory the store reads and writes.
func (s *FileKV) Dir() string {
	return s.dir
}

func (s *FileKV) path(key string) string {
	// Keys are plain identifiers; keep anything path-like inside dir.
	name := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, name+".json")
}

// Get implements KV.
func (s *FileKV) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Set implements KV. The value is written to a temp file then renamed.
func (s *FileKV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// MemKV is an in-memory KV.
type MemKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemKV returns an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string]string)}
}

// Get implements KV.
func (m *MemKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Keys returns the stored keys, sorted.
func (m *MemKV) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
