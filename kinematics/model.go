// Package kinematics computes the direct and inverse geometric models of a serial arm with four
// revolute joints. Joint 1 turns about z, joints 2 and 3 about y and joint 4 about z again; the
// links carry no translation.
package kinematics

import (
	frame "go.viam.com/fourdof/referenceframe"
	spatial "go.viam.com/fourdof/spatialmath"
)

// ModelName is the name of the default four joint model.
const ModelName = "fourdof"

// Rotation axis of each joint, from the base to the end effector.
var jointAxes = []spatial.Axis{spatial.AxisZ, spatial.AxisY, spatial.AxisY, spatial.AxisZ}

var defaultModel = NewModel(ModelName)

// Model is the kinematic chain of the arm. It is immutable and safe for concurrent use.
type Model struct {
	name string
	axes []spatial.Axis
}

var _ frame.Frame = (*Model)(nil)

// NewModel returns the four joint chain under the given name.
func NewModel(name string) *Model {
	axes := make([]spatial.Axis, len(jointAxes))
	copy(axes, jointAxes)
	return &Model{name: name, axes: axes}
}

// Name returns the name of the model.
func (m *Model) Name() string {
	return m.name
}

// DoF returns the number of joints.
func (m *Model) DoF() int {
	return len(m.axes)
}

// Axes returns the rotation axis of each joint, base first.
func (m *Model) Axes() []spatial.Axis {
	axes := make([]spatial.Axis, len(m.axes))
	copy(axes, m.axes)
	return axes
}

// Transform returns the end effector pose for the given joint angles in radians.
func (m *Model) Transform(inputs []frame.Input) (spatial.Pose, error) {
	if len(inputs) != m.DoF() {
		return spatial.Pose{}, frame.NewIncorrectInputLengthError(len(inputs), m.DoF())
	}
	return spatial.NewPoseFromMatrix(m.chain(inputs)), nil
}

// chain multiplies the elementary rotations of every joint in order, T = T1 · T2 · ... · Tn.
// len(inputs) must equal the DoF.
func (m *Model) chain(inputs []frame.Input) spatial.Matrix4 {
	t := spatial.NewIdentityMatrix4()
	for i, axis := range m.axes {
		t = spatial.MultiplyMatrices(t, spatial.ElementaryRotation(inputs[i].Value, axis))
	}
	return t
}

// CalculateMGD is the direct geometric model: it returns the end effector pose for four joint
// angles given in degrees.
func CalculateMGD(theta1, theta2, theta3, theta4 float64) spatial.Pose {
	inputs := frame.InputsFromDegrees([]float64{theta1, theta2, theta3, theta4})
	return spatial.NewPoseFromMatrix(defaultModel.chain(inputs))
}
