// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	weightedSamplers = []struct {
		name    string
		sampler func() Weighted
	}{
		{
			name:    "linear",
			sampler: NewLinearWeighted,
		},
		{
			name:    "search",
			sampler: NewWeighted,
		},
	}
	weightedTests = []struct {
		name string
		test func(*testing.T, Weighted)
	}{
		{
			name: "initialize empty",
			test: WeightedInitializeEmptyTest,
		},
		{
			name: "initialize invalid",
			test: WeightedInitializeInvalidTest,
		},
		{
			name: "sample uninitialized",
			test: WeightedUninitializedTest,
		},
		{
			name: "out of range",
			test: WeightedOutOfRangeTest,
		},
		{
			name: "singleton",
			test: WeightedSingletonTest,
		},
		{
			name: "with zero",
			test: WeightedWithZeroTest,
		},
		{
			name: "leading zeros",
			test: WeightedLeadingZerosTest,
		},
		{
			name: "boundaries",
			test: WeightedBoundariesTest,
		},
		{
			name: "reinitialize",
			test: WeightedReinitializeTest,
		},
		{
			name: "matches scan",
			test: WeightedMatchesScanTest,
		},
	}
)

func TestAllWeighted(t *testing.T) {
	for _, s := range weightedSamplers {
		for _, test := range weightedTests {
			t.Run(fmt.Sprintf("sampler %s test %s", s.name, test.name), func(t *testing.T) {
				test.test(t, s.sampler())
			})
		}
	}
}

func WeightedInitializeEmptyTest(t *testing.T, s Weighted) {
	require.ErrorIs(t, s.Initialize(nil), ErrEmptyCollection)
}

func WeightedInitializeInvalidTest(t *testing.T, s Weighted) {
	require := require.New(t)

	require.ErrorIs(s.Initialize([]float64{0}), ErrInvalidWeight)
	require.ErrorIs(s.Initialize([]float64{0, 0, 0}), ErrInvalidWeight)
	require.ErrorIs(s.Initialize([]float64{1, -2}), ErrInvalidWeight)
	require.ErrorIs(s.Initialize([]float64{math.NaN()}), ErrInvalidWeight)
	require.ErrorIs(s.Initialize([]float64{math.Inf(1)}), ErrInvalidWeight)
}

func WeightedUninitializedTest(t *testing.T, s Weighted) {
	require := require.New(t)

	require.Zero(s.TotalWeight())
	_, err := s.Sample(0)
	require.ErrorIs(err, ErrOutOfRange)
}

func WeightedOutOfRangeTest(t *testing.T, s Weighted) {
	require := require.New(t)

	require.NoError(s.Initialize([]float64{1}))

	_, err := s.Sample(math.Nextafter(1, 2))
	require.ErrorIs(err, ErrOutOfRange)

	_, err = s.Sample(-1)
	require.ErrorIs(err, ErrOutOfRange)

	_, err = s.Sample(math.NaN())
	require.ErrorIs(err, ErrOutOfRange)
}

func WeightedSingletonTest(t *testing.T, s Weighted) {
	require := require.New(t)

	require.NoError(s.Initialize([]float64{1}))
	require.Equal(1., s.TotalWeight())

	index, err := s.Sample(0)
	require.NoError(err)
	require.Zero(index)

	index, err = s.Sample(1)
	require.NoError(err)
	require.Zero(index)
}

func WeightedWithZeroTest(t *testing.T, s Weighted) {
	require := require.New(t)

	require.NoError(s.Initialize([]float64{0, 1, 0}))
	require.Equal(1., s.TotalWeight())

	for _, value := range []float64{0, .5, 1} {
		index, err := s.Sample(value)
		require.NoError(err)
		require.Equal(1, index)
	}
}

func WeightedLeadingZerosTest(t *testing.T, s Weighted) {
	require := require.New(t)

	require.NoError(s.Initialize([]float64{0, 0, 0, 2, 0, 3}))
	require.Equal(5., s.TotalWeight())

	index, err := s.Sample(0)
	require.NoError(err)
	require.Equal(3, index)

	index, err = s.Sample(2)
	require.NoError(err)
	require.Equal(3, index)

	index, err = s.Sample(math.Nextafter(2, 3))
	require.NoError(err)
	require.Equal(5, index)
}

func WeightedBoundariesTest(t *testing.T, s Weighted) {
	require := require.New(t)

	require.NoError(s.Initialize([]float64{1, 2, 3}))
	require.Equal(6., s.TotalWeight())

	tests := []struct {
		value    float64
		expected int
	}{
		{value: 0, expected: 0},
		{value: 1, expected: 0},
		{value: math.Nextafter(1, 2), expected: 1},
		{value: 3, expected: 1},
		{value: math.Nextafter(3, 4), expected: 2},
		{value: 5.9994, expected: 2},
		{value: 6, expected: 2},
	}
	for _, test := range tests {
		index, err := s.Sample(test.value)
		require.NoError(err)
		require.Equal(test.expected, index, "value %v", test.value)
	}
}

func WeightedReinitializeTest(t *testing.T, s Weighted) {
	require := require.New(t)

	require.NoError(s.Initialize([]float64{1, 1, 1, 1}))
	require.NoError(s.Initialize([]float64{0, 4}))
	require.Equal(4., s.TotalWeight())

	index, err := s.Sample(0)
	require.NoError(err)
	require.Equal(1, index)

	_, err = s.Sample(4.5)
	require.ErrorIs(err, ErrOutOfRange)
}

func WeightedMatchesScanTest(t *testing.T, s Weighted) {
	require := require.New(t)

	weights := []float64{.5, 0, 3, 0, 0, 1.25, 7, 0, .125}
	require.NoError(s.Initialize(weights))

	total := s.TotalWeight()
	for value := 0.; value <= total; value += total / 97 {
		index, err := s.Sample(value)
		require.NoError(err)
		require.Equal(scan(weights, value), index, "value %v", value)
		require.Positive(weights[index])
	}
}
