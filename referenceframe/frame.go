// Package referenceframe describes the frames of a kinematic chain and the inputs that move them.
package referenceframe

import (
	spatial "go.viam.com/fourdof/spatialmath"
)

// Frame represents a reference frame whose pose relative to its parent depends on a set of inputs,
// e.g. an arm whose end effector pose depends on its joint angles.
type Frame interface {
	// Name returns the name of the frame.
	Name() string

	// DoF returns the number of inputs the frame expects.
	DoF() int

	// Transform is the pose of the frame in its parent's frame for the given inputs.
	Transform([]Input) (spatial.Pose, error)
}
