// Package realfs provides a real implementation of the FileSystem port using the os package.
package realfs

import (
	"os"

	"github.com/acolita/calc-average/internal/ports"
)

// FS implements ports.FileSystem using the standard os package.
type FS struct{}

// New returns a new real FileSystem.
func New() *FS {
	return &FS{}
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

var _ ports.FileSystem = (*FS)(nil)
