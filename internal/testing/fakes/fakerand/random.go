// Package fakerand provides a predictable entropy source for testing.
package fakerand

import (
	"sync"

	"github.com/acolita/calc-average/internal/ports"
)

// Random is a fake entropy source that produces predictable output.
// Two fakes built from the same sequence seed generators identically.
type Random struct {
	mu       sync.Mutex
	sequence []byte
	offset   int
	reads    int

	// Err, when set, is returned by every Read.
	Err error
}

// New creates a new fake random with the given sequence.
// If the sequence is empty, it defaults to sequential bytes 0-255.
func New(sequence []byte) *Random {
	if len(sequence) == 0 {
		sequence = make([]byte, 256)
		for i := range sequence {
			sequence[i] = byte(i)
		}
	}
	return &Random{sequence: sequence}
}

// NewSequential creates a fake random that returns 0, 1, 2, ..., 255, 0, 1, ...
func NewSequential() *Random {
	return New(nil)
}

// NewFailing creates a fake random whose reads always fail with err.
func NewFailing(err error) *Random {
	r := New(nil)
	r.Err = err
	return r
}

// Read fills b with predictable bytes from the sequence.
func (r *Random) Read(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reads++
	if r.Err != nil {
		return 0, r.Err
	}
	for i := range b {
		b[i] = r.sequence[r.offset%len(r.sequence)]
		r.offset++
	}
	return len(b), nil
}

// Reads reports how many times Read was called.
func (r *Random) Reads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads
}

// Reset rewinds the sequence and clears the read counter.
func (r *Random) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offset = 0
	r.reads = 0
}

var _ ports.Random = (*Random)(nil)
