// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package collection provides iteration and selection helpers over slices.
package collection

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/goodstuff/utils/sampler"
)

// Each calls [f] with every element of [s], in order.
func Each[T any](s []T, f func(T)) {
	lo.ForEach(s, func(item T, _ int) {
		f(item)
	})
}

// EachWithIndex calls [f] with every element of [s] and its index, in order.
func EachWithIndex[T any](s []T, f func(T, int)) {
	lo.ForEach(s, f)
}

// InParallelWith calls [f] with the elements of [a] and [b] that share an
// index. Iteration stops at the end of the shorter slice.
func InParallelWith[A, B any](a []A, b []B, f func(A, B)) {
	for i := 0; i < len(a) && i < len(b); i++ {
		f(a[i], b[i])
	}
}

// MinBy returns the first element of [s] with the smallest key. Returns false
// if [s] is empty.
func MinBy[T any, K constraints.Ordered](s []T, key func(T) K) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return lo.MinBy(s, func(a, b T) bool {
		return key(a) < key(b)
	}), true
}

// MaxBy returns the first element of [s] with the largest key. Returns false
// if [s] is empty.
func MaxBy[T any, K constraints.Ordered](s []T, key func(T) K) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return lo.MaxBy(s, func(a, b T) bool {
		return key(a) > key(b)
	}), true
}

// Sample returns an element of [s] chosen uniformly at random.
func Sample[T any](s []T, source sampler.Source) (T, error) {
	return sampler.SelectUniform(s, source)
}

// SampleWeighted returns an element of [s] chosen with probability
// proportional to [weight] of that element.
func SampleWeighted[T any](s []T, weight func(T) float64, source sampler.Source) (T, error) {
	weights := lo.Map(s, func(item T, _ int) float64 {
		return weight(item)
	})
	return sampler.SelectWeighted(s, weights, source)
}
