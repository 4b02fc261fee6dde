// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// SelectUniform returns an element of [items] chosen uniformly at random.
func SelectUniform[T any](items []T, source Source) (T, error) {
	index, err := SelectUniformIndex(len(items), source)
	if err != nil {
		var zero T
		return zero, err
	}
	return items[index], nil
}

// SelectUniformIndex returns an index in [0, length) chosen uniformly at
// random.
func SelectUniformIndex(length int, source Source) (int, error) {
	if length <= 0 {
		return 0, ErrEmptyCollection
	}
	index := int(source.Float64() * float64(length))
	// Rounding can reach [length] once it exceeds 2^53.
	if index >= length {
		index = length - 1
	}
	return index, nil
}
