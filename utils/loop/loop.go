// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package loop provides counted iteration helpers.
package loop

// Times calls [f] with every value in [0, n). [f] is never called if [n] is
// not positive.
func Times(n int, f func(i int)) {
	for i := 0; i < n; i++ {
		f(i)
	}
}

// UpTo calls [f] with every value in [from, to], in increasing order.
func UpTo(from, to int, f func(i int)) {
	for i := from; i <= to; i++ {
		f(i)
		if i == to {
			// Avoid overflowing when [to] is MaxInt.
			return
		}
	}
}

// DownTo calls [f] with every value in [to, from], in decreasing order.
func DownTo(from, to int, f func(i int)) {
	for i := from; i >= to; i-- {
		f(i)
		if i == to {
			return
		}
	}
}
