package kinematics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	frame "go.viam.com/fourdof/referenceframe"
	spatial "go.viam.com/fourdof/spatialmath"
	"go.viam.com/fourdof/utils"
)

func TestModel(t *testing.T) {
	m := NewModel("arm")
	test.That(t, m.Name(), test.ShouldEqual, "arm")
	test.That(t, m.DoF(), test.ShouldEqual, 4)
	test.That(t, m.Axes(), test.ShouldResemble, []spatial.Axis{spatial.AxisZ, spatial.AxisY, spatial.AxisY, spatial.AxisZ})

	// Axes hands out a copy.
	axes := m.Axes()
	axes[0] = spatial.AxisX
	test.That(t, m.Axes()[0], test.ShouldEqual, spatial.AxisZ)

	_, err := m.Transform(frame.FloatsToInputs([]float64{1, 2, 3}))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "expected 4 but got 3")

	_, err = m.Transform(nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestCalculateMGDIdentity(t *testing.T) {
	pose := CalculateMGD(0, 0, 0, 0)
	test.That(t, pose.N, test.ShouldResemble, r3.Vector{X: 1})
	test.That(t, pose.O, test.ShouldResemble, r3.Vector{Y: 1})
	test.That(t, pose.A, test.ShouldResemble, r3.Vector{Z: 1})
	test.That(t, pose.P, test.ShouldResemble, r3.Vector{})
}

func TestCalculateMGDGolden(t *testing.T) {
	pose := CalculateMGD(30, 45, -30, 60)

	expected := spatial.Pose{
		N: r3.Vector{X: -0.014754550023315216, Y: 0.991481456572267, Z: -0.1294095225512604},
		O: r3.Vector{X: -0.9744443697168012, Y: 0.014754550023315605, Z: 0.22414386804201336},
		A: r3.Vector{X: 0.22414386804201336, Y: 0.1294095225512604, Z: 0.9659258262890682},
		P: r3.Vector{},
	}
	test.That(t, pose, test.ShouldResemble, expected)
}

func TestCalculateMGDSingleJoint(t *testing.T) {
	// With every other joint at zero the pose is the elementary rotation of the moving joint.
	for i, axis := range jointAxes {
		angles := []float64{0, 0, 0, 0}
		angles[i] = 37
		pose := CalculateMGD(angles[0], angles[1], angles[2], angles[3])
		expected := spatial.NewPoseFromMatrix(spatial.ElementaryRotation(utils.DegToRad(37), axis))
		test.That(t, spatial.PoseAlmostEqual(pose, expected, 1e-15), test.ShouldBeTrue)
	}

	// Joints 2 and 3 share an axis so their angles add.
	test.That(t, spatial.PoseAlmostEqual(CalculateMGD(0, 20, 25, 0), CalculateMGD(0, 45, 0, 0), 1e-12), test.ShouldBeTrue)
}

func TestCalculateMGDMatchesTransform(t *testing.T) {
	m := NewModel(ModelName)
	degrees := []float64{-120, 33.3, 271, -5}
	pose, err := m.Transform(frame.InputsFromDegrees(degrees))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose, test.ShouldResemble, CalculateMGD(degrees[0], degrees[1], degrees[2], degrees[3]))

	// The chain is T1 · T2 · T3 · T4.
	inputs := frame.InputsFromDegrees(degrees)
	expected := spatial.MultiplyMatrices(
		spatial.MultiplyMatrices(
			spatial.MultiplyMatrices(
				spatial.ElementaryRotation(inputs[0].Value, spatial.AxisZ),
				spatial.ElementaryRotation(inputs[1].Value, spatial.AxisY)),
			spatial.ElementaryRotation(inputs[2].Value, spatial.AxisY)),
		spatial.ElementaryRotation(inputs[3].Value, spatial.AxisZ))
	test.That(t, pose.Matrix(), test.ShouldResemble, expected)
}

func TestCalculateMGDOrthonormal(t *testing.T) {
	//nolint:gosec
	seed := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		angles := make([]float64, 4)
		for j := range angles {
			angles[j] = seed.Float64()*1440 - 720
		}
		pose := CalculateMGD(angles[0], angles[1], angles[2], angles[3])

		test.That(t, pose.IsOrthonormal(1e-12), test.ShouldBeTrue)
		test.That(t, pose.RotationDeterminant(), test.ShouldAlmostEqual, 1.0, 1e-12)
		test.That(t, pose.P, test.ShouldResemble, r3.Vector{})
		test.That(t, CheckOrthonormal(pose), test.ShouldBeNil)
	}
}

func TestCalculateMGDLargeAngles(t *testing.T) {
	a := CalculateMGD(10, 20, 30, 40)
	b := CalculateMGD(370, 20-360, 30+720, 40-1080)
	test.That(t, spatial.PoseAlmostEqual(a, b, 1e-12), test.ShouldBeTrue)

	flipped := CalculateMGD(180, 0, 0, 0)
	test.That(t, spatial.R3VectorAlmostEqual(flipped.N, r3.Vector{X: -1}, 1e-15), test.ShouldBeTrue)
	test.That(t, math.Abs(flipped.A.Z-1), test.ShouldBeLessThan, 1e-15)
}
