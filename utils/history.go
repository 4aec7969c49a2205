package utils

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// History remembers recently seen grid states for cycle detection
type History struct {
	seen *lru.Cache[string, int] // grid hash -> generation it was last seen at
}

// NewHistory keeps up to size recent states
func NewHistory(size int) (*History, error) {
	cache, err := lru.New[string, int](size)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewHistory] failed to create cache of size %d", size)
	}
	return &History{seen: cache}, nil
}

// Observe records the state hash at generation and returns the cycle period
// if the same state was seen before. A still life has period 1.
func (h *History) Observe(hash string, generation int) (period int, repeated bool) {
	if prev, ok := h.seen.Get(hash); ok && prev < generation {
		period, repeated = generation-prev, true
	}
	h.seen.Add(hash, generation)
	return
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.seen.Purge()
}

// Len returns the number of remembered states
func (h *History) Len() int {
	return h.seen.Len()
}
