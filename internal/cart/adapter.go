package cart

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// MemoryAdapter keeps the serialized cart in memory. Used in tests and as the
// default when no persistence path is configured.
type MemoryAdapter struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryAdapter creates an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

func (a *MemoryAdapter) Load() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.data, nil
}

func (a *MemoryAdapter) Save(data []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.data = append([]byte(nil), data...)
	return nil
}

// FileAdapter persists the cart to a single file, the server-side analogue of
// browser local storage.
type FileAdapter struct {
	path string
}

// NewFileAdapter creates an adapter persisting to path.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Load returns the stored state, or nil when no state has been saved yet.
func (a *FileAdapter) Load() ([]byte, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file %s: %w", a.path, err)
	}
	return data, nil
}

func (a *FileAdapter) Save(data []byte) error {
	if err := os.WriteFile(a.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file %s: %w", a.path, err)
	}
	return nil
}
