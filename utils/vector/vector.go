// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vector projects vectors between two and three dimensions.
package vector

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// XY returns the x and y components of [v].
func XY(v r3.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// XZ returns the x and z components of [v].
func XZ(v r3.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Z}
}

// YZ returns the y and z components of [v].
func YZ(v r3.Vec) r2.Vec {
	return r2.Vec{X: v.Y, Y: v.Z}
}

// XYZ lifts [v] into three dimensions with the provided [z] component.
func XYZ(v r2.Vec, z float64) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: z}
}
