// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

var _ Weighted = (*weightedLinear)(nil)

// Sampling is performed by executing a linear search over the provided
// weights in the order they were provided.
//
// Initialization takes O(n) time, where n is the number of elements that can
// be sampled.
// Sampling takes O(n) time.
type weightedLinear struct {
	weights []float64
	total   float64
}

func (s *weightedLinear) Initialize(weights []float64) error {
	if len(weights) == 0 {
		return ErrEmptyCollection
	}
	total, err := totalWeight(weights)
	if err != nil {
		return err
	}

	if len(weights) <= cap(s.weights) {
		s.weights = s.weights[:len(weights)]
	} else {
		s.weights = make([]float64, len(weights))
	}
	copy(s.weights, weights)
	s.total = total
	return nil
}

func (s *weightedLinear) Sample(value float64) (int, error) {
	if len(s.weights) == 0 || !(value >= 0 && value <= s.total) {
		return 0, ErrOutOfRange
	}
	return scan(s.weights, value), nil
}

func (s *weightedLinear) TotalWeight() float64 {
	return s.total
}

// scan returns the first index with a positive weight whose cumulative weight
// is >= [value].
//
// Assumes [weights] was validated by totalWeight and that [value] is in
// [0, totalWeight(weights)].
func scan(weights []float64, value float64) int {
	var (
		cumulative float64
		last       int
	)
	for i, weight := range weights {
		if weight == 0 {
			continue
		}
		cumulative += weight
		if value <= cumulative {
			return i
		}
		last = i
	}
	// Unreachable while [value] is within the total weight, as the final
	// cumulative weight equals the total weight.
	return last
}
