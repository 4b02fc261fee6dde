// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// SelectWeighted returns an element of [items] chosen with probability
// proportional to the weight at the same position in [weights].
//
// Exactly one value is drawn from [source], and only after the inputs have
// been validated. Items with a weight of zero are never returned.
func SelectWeighted[T any](items []T, weights []float64, source Source) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyCollection
	}
	if len(items) != len(weights) {
		return zero, fmt.Errorf("%w: %d items, %d weights",
			ErrLengthMismatch,
			len(items),
			len(weights),
		)
	}
	total, err := totalWeight(weights)
	if err != nil {
		return zero, err
	}

	value := source.Float64() * total
	return items[scan(weights, value)], nil
}

// SelectWeightedIndex is SelectWeighted over the indices of [weights].
func SelectWeightedIndex(weights []float64, source Source) (int, error) {
	if len(weights) == 0 {
		return 0, ErrEmptyCollection
	}
	total, err := totalWeight(weights)
	if err != nil {
		return 0, err
	}
	return scan(weights, source.Float64()*total), nil
}
