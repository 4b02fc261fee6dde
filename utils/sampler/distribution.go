// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// Distribution is a fixed set of weighted items that can be drawn from
// repeatedly without re-validating or re-summing the weights.
//
// A Distribution is immutable once built and may be shared by goroutines as
// long as the provided sources are.
type Distribution[T any] struct {
	items    []T
	weighted Weighted
}

// NewDistribution copies [items] and indexes [weights] for sampling.
func NewDistribution[T any](items []T, weights []float64) (*Distribution[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyCollection
	}
	if len(items) != len(weights) {
		return nil, fmt.Errorf("%w: %d items, %d weights",
			ErrLengthMismatch,
			len(items),
			len(weights),
		)
	}

	weighted := NewWeighted()
	if err := weighted.Initialize(weights); err != nil {
		return nil, err
	}
	return &Distribution[T]{
		items:    append([]T(nil), items...),
		weighted: weighted,
	}, nil
}

// Len returns the number of items in the distribution, including items with
// a weight of zero.
func (d *Distribution[T]) Len() int {
	return len(d.items)
}

// Draw returns one item, consuming one value from [source].
func (d *Distribution[T]) Draw(source Source) T {
	index, err := d.weighted.Sample(source.Float64() * d.weighted.TotalWeight())
	if err != nil {
		// Only a source violating the [0, 1) contract can get here.
		index, _ = d.weighted.Sample(d.weighted.TotalWeight())
	}
	return d.items[index]
}

// DrawN returns [count] items drawn independently, with replacement.
func (d *Distribution[T]) DrawN(source Source, count int) []T {
	if count <= 0 {
		return nil
	}
	results := make([]T, count)
	for i := range results {
		results[i] = d.Draw(source)
	}
	return results
}
