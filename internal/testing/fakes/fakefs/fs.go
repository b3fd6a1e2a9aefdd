// Package fakefs provides an in-memory FileSystem implementation for testing.
package fakefs

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/acolita/calc-average/internal/ports"
)

// FS is an in-memory filesystem for testing.
type FS struct {
	mu    sync.RWMutex
	files map[string][]byte
	reads []string
}

// New creates a new in-memory filesystem.
func New() *FS {
	return &FS{files: make(map[string][]byte)}
}

// ReadFile reads the named file and returns a copy of its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	name = filepath.Clean(name)
	f.reads = append(f.reads, name)

	data, ok := f.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// AddFile stores data under name, replacing any previous contents.
func (f *FS) AddFile(name string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	f.files[filepath.Clean(name)] = stored
}

// Reads returns every path passed to ReadFile, in call order.
func (f *FS) Reads() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.reads...)
}

var _ ports.FileSystem = (*FS)(nil)
