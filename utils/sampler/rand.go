// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

var _ Source = (*rng)(nil)

// Source produces uniformly distributed values in [0, 1).
type Source interface {
	// Float64 returns a random number in [0, 1) and advances the source's
	// state.
	Float64() float64
}

// Uint64Source returns a random number in [0, MaxUint64] and advances the
// generator's state.
type Uint64Source interface {
	Uint64() uint64
}

// NewSource returns a Mersenne Twister backed source seeded with [seed]. The
// returned source is safe for concurrent use.
func NewSource(seed uint64) Source {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need to ensure a truly random sampling.
	source := prng.NewMT19937()
	source.Seed(seed)
	return NewSourceFrom(source)
}

// NewSourceFrom wraps [source] so that it can be shared by goroutines.
func NewSourceFrom(source Uint64Source) Source {
	return &rng{rng: source}
}

// NewTimeSeededSource returns a source seeded from the wall clock.
func NewTimeSeededSource() Source {
	return NewSource(uint64(time.Now().UnixNano()))
}

type rng struct {
	lock sync.Mutex
	rng  Uint64Source
}

// Float64 returns a pseudo-random number in [0,1).
//
// Only the top 53 bits are used so that every result is exactly representable
// and strictly less than 1.
func (r *rng) Float64() float64 {
	return float64(r.uint64()>>11) / (1 << 53)
}

// uint64 returns a random number in [0, MaxUint64]
func (r *rng) uint64() uint64 {
	// Note: We must grab a write lock here because rng.Uint64 internally
	// modifies state.
	r.lock.Lock()
	n := r.rng.Uint64()
	r.lock.Unlock()
	return n
}
