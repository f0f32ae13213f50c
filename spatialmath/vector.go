// Package spatialmath defines the spatial primitives used by the kinematic chain: vectors,
// homogeneous transforms and end effector poses.
package spatialmath

import (
	"github.com/golang/geo/r3"

	"go.viam.com/fourdof/utils"
)

// CrossProduct returns v1 × v2.
func CrossProduct(v1, v2 r3.Vector) r3.Vector {
	return v1.Cross(v2)
}

// DotProduct returns v1 · v2.
func DotProduct(v1, v2 r3.Vector) float64 {
	return v1.Dot(v2)
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if every component differs by no more than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return utils.Float64AlmostEqual(a.X, b.X, epsilon) &&
		utils.Float64AlmostEqual(a.Y, b.Y, epsilon) &&
		utils.Float64AlmostEqual(a.Z, b.Z, epsilon)
}
