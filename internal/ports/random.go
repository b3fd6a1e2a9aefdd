// Package ports defines interfaces for external dependencies (Ports and Adapters pattern).
package ports

// Random abstracts the entropy source used to seed generators.
type Random interface {
	// Read fills b with random bytes and returns the number of bytes read.
	Read(b []byte) (n int, err error)
}
