// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

var _ Weighted = (*weightedSearch)(nil)

// Sampling is performed by executing a binary search over the cumulative
// weights.
//
// Initialization takes O(n) time, where n is the number of elements that can
// be sampled.
// Sampling takes O(log(n)) time.
type weightedSearch struct {
	cumulative []float64
}

func (s *weightedSearch) Initialize(weights []float64) error {
	if len(weights) == 0 {
		return ErrEmptyCollection
	}
	if _, err := totalWeight(weights); err != nil {
		return err
	}

	if len(weights) <= cap(s.cumulative) {
		s.cumulative = s.cumulative[:len(weights)]
	} else {
		s.cumulative = make([]float64, len(weights))
	}
	floats.CumSum(s.cumulative, weights)
	return nil
}

func (s *weightedSearch) Sample(value float64) (int, error) {
	if len(s.cumulative) == 0 || !(value >= 0 && value <= s.TotalWeight()) {
		return 0, ErrOutOfRange
	}

	index := sort.SearchFloat64s(s.cumulative, value)
	// Only a run of leading zero weights can be found with a cumulative weight
	// >= [value], and only when [value] is 0.
	for s.isZero(index) {
		index++
	}
	return index, nil
}

func (s *weightedSearch) TotalWeight() float64 {
	if len(s.cumulative) == 0 {
		return 0
	}
	return s.cumulative[len(s.cumulative)-1]
}

func (s *weightedSearch) isZero(index int) bool {
	if index == 0 {
		return s.cumulative[0] == 0
	}
	return s.cumulative[index] == s.cumulative[index-1]
}
