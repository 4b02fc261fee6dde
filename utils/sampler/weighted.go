// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyCollection = errors.New("empty collection")
	ErrLengthMismatch  = errors.New("items and weights differ in length")
	ErrInvalidWeight   = errors.New("invalid weight")
	ErrOutOfRange      = errors.New("out of range")
)

// Weighted defines how to sample a specified value based on a provided
// weighted distribution.
//
// Sample returns the first index with a positive weight whose cumulative
// weight is at least [value]. Indices with a weight of zero are never
// returned.
type Weighted interface {
	Initialize(weights []float64) error
	Sample(value float64) (int, error)
	TotalWeight() float64
}

// NewWeighted returns a new sampler
func NewWeighted() Weighted {
	return &weightedSearch{}
}

// NewLinearWeighted returns a new sampler that scans the weights on every
// sample. Initialization only copies the weights, which makes it preferable
// for small, short lived distributions.
func NewLinearWeighted() Weighted {
	return &weightedLinear{}
}

// totalWeight verifies that every weight is a finite, non-negative number
// with a positive sum and returns that sum.
//
// The sum is accumulated in index order so that it is bit-for-bit equal to the
// final cumulative weight of a scan over [weights].
func totalWeight(weights []float64) (float64, error) {
	total := 0.
	for i, weight := range weights {
		if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
			return 0, fmt.Errorf("%w: weight %v at index %d", ErrInvalidWeight, weight, i)
		}
		total += weight
	}

	switch {
	case math.IsInf(total, 0):
		return 0, fmt.Errorf("%w: total weight overflows", ErrInvalidWeight)
	case total <= 0:
		return 0, fmt.Errorf("%w: total weight must be positive", ErrInvalidWeight)
	default:
		return total, nil
	}
}
