// Package cache defines the buffer cache contract used by the pixel
// pipeline and a reference implementation that never retains anything.
package cache

import "github.com/pkg/errors"

// InvalidHash marks a request whose result must not be reused.
const InvalidHash uint64 = 0

// ErrAllocation is returned when a cache cannot produce a buffer of the
// requested size.
var ErrAllocation = errors.New("cannot allocate pipeline buffer")

// Cache hands out output buffers for pipeline nodes. At most one buffer is
// live per (node, hash) pair; a hit returns the previous contents.
//
// The owner parameter carries the requesting node for accounting and may be
// nil for input staging buffers.
type Cache interface {
	// Get returns a buffer of size float32 samples for the given content
	// hash. Important requests should survive eviction longer.
	Get(hash uint64, size int, owner any, important bool) ([]float32, error)

	// Invalidate drops the entry holding buf, if any.
	Invalidate(buf []float32)

	// InvalidateLater marks all current entries stale without freeing
	// them, so in-flight readers finish on the old contents.
	InvalidateLater(reason string)

	// Flush drops every entry.
	Flush()
}

// NoCache always misses and allocates fresh buffers. It is the reference
// behavior the engine is tested against.
type NoCache struct{}

var _ Cache = NoCache{}

func (NoCache) Get(_ uint64, size int, _ any, _ bool) ([]float32, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrAllocation, "negative size %d", size)
	}
	return make([]float32, size), nil
}

func (NoCache) Invalidate([]float32) {}

func (NoCache) InvalidateLater(string) {}

func (NoCache) Flush() {}
