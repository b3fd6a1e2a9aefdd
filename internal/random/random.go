// Package random provides a bounded uniform integer source seeded once from
// an entropy port.
//
// A Source wraps a ChaCha8 generator from math/rand/v2. The 32-byte seed is
// read from a ports.Random at construction, so production sources are
// non-deterministic while tests can inject a fake and replay a sequence.
//
//	src, err := random.New(random.Range{Min: 1, Max: 10}, realrand.New())
//	if err != nil {
//		return err
//	}
//	n := src.Next() // 1 <= n <= 10
package random

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/acolita/calc-average/internal/ports"
)

// SeedSize is the number of entropy bytes consumed by New.
const SeedSize = 32

// Generator yields one integer per call.
type Generator interface {
	Next() int
}

// Range is an inclusive interval [Min, Max].
type Range struct {
	Min int
	Max int
}

// Valid reports whether 0 <= Min < Max.
func (r Range) Valid() bool {
	return r.Min >= 0 && r.Min < r.Max
}

// Size returns the number of integers in the range. It is computed in
// uint64 so that Range{0, math.MaxInt} does not overflow.
func (r Range) Size() uint64 {
	return uint64(r.Max-r.Min) + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Source draws integers uniformly from a fixed Range.
type Source struct {
	rng *rand.Rand
	rg  Range
	n   uint64
}

// New seeds a Source from entropy. It panics if r is not Valid; callers are
// expected to validate user input first. The only error is a failed read
// from the entropy port.
func New(r Range, entropy ports.Random) (*Source, error) {
	if !r.Valid() {
		panic(fmt.Sprintf("random: invalid range %s", r))
	}

	var seed [SeedSize]byte
	if _, err := entropy.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seed generator: %w", err)
	}
	slog.Debug("random source seeded", "range", r.String(), "seed_bytes", SeedSize)

	return &Source{
		rng: rand.New(rand.NewChaCha8(seed)),
		rg:  r,
		n:   r.Size(),
	}, nil
}

// Next returns an integer in [Min, Max], each value equally likely.
func (s *Source) Next() int {
	return s.rg.Min + int(s.rng.Uint64N(s.n))
}

// Range returns the bounds the Source was built with.
func (s *Source) Range() Range {
	return s.rg
}

var _ Generator = (*Source)(nil)
