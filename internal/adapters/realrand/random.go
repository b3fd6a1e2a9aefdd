// Package realrand provides the entropy port backed by the operating system's CSPRNG.
package realrand

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/acolita/calc-average/internal/ports"
)

// Random implements ports.Random on top of crypto/rand.
type Random struct {
	src io.Reader
}

// New returns a Random reading from crypto/rand.Reader.
func New() *Random {
	return &Random{src: rand.Reader}
}

// Read fills b completely or returns an error.
func (r *Random) Read(b []byte) (int, error) {
	n, err := io.ReadFull(r.src, b)
	if err != nil {
		return n, fmt.Errorf("read entropy: %w", err)
	}
	return n, nil
}

var _ ports.Random = (*Random)(nil)
