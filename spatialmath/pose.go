package spatialmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/fourdof/utils"
)

// Pose is the orientation and position of an end effector expressed in the base frame.
// N, O and A are the x, y and z axes of the end effector frame and P is its origin.
// A valid orientation is a direct orthonormal basis, i.e. A = N × O.
type Pose struct {
	N r3.Vector `json:"n"`
	O r3.Vector `json:"o"`
	A r3.Vector `json:"a"`
	P r3.Vector `json:"p"`
}

// NewZeroPose returns the pose of a frame coincident with the base frame.
func NewZeroPose() Pose {
	return NewPoseFromMatrix(NewIdentityMatrix4())
}

// NewPoseFromMatrix decomposes a homogeneous transform: the first three columns of the rotation
// block become N, O and A, and the translation column becomes P.
func NewPoseFromMatrix(m Matrix4) Pose {
	return Pose{
		N: m.Column(0),
		O: m.Column(1),
		A: m.Column(2),
		P: m.Translation(),
	}
}

// Matrix recomposes the homogeneous transform described by the pose.
func (p Pose) Matrix() Matrix4 {
	return Matrix4(mgl64.Mat4FromCols(
		mgl64.Vec4{p.N.X, p.N.Y, p.N.Z, 0},
		mgl64.Vec4{p.O.X, p.O.Y, p.O.Z, 0},
		mgl64.Vec4{p.A.X, p.A.Y, p.A.Z, 0},
		mgl64.Vec4{p.P.X, p.P.Y, p.P.Z, 1},
	))
}

// Quaternion returns the orientation of the pose as a unit quaternion.
// The result is only meaningful if the orientation is orthonormal.
func (p Pose) Quaternion() quat.Number {
	q := mgl64.Mat4ToQuat(mgl64.Mat4(p.Matrix()))
	return quat.Number{Real: q.W, Imag: q.X(), Jmag: q.Y(), Kmag: q.Z()}
}

// RotationDeterminant returns the determinant of the 3x3 rotation block. It is 1 for a direct
// orthonormal basis and -1 for a mirrored one.
func (p Pose) RotationDeterminant() float64 {
	rot := mat.NewDense(3, 3, []float64{
		p.N.X, p.O.X, p.A.X,
		p.N.Y, p.O.Y, p.A.Y,
		p.N.Z, p.O.Z, p.A.Z,
	})
	return mat.Det(rot)
}

// IsOrthonormal reports whether N, O and A are unit length, pairwise orthogonal and satisfy A = N × O,
// all to within epsilon.
func (p Pose) IsOrthonormal(epsilon float64) bool {
	for _, v := range []r3.Vector{p.N, p.O, p.A} {
		if !utils.Float64AlmostEqual(v.Norm(), 1, epsilon) {
			return false
		}
	}
	if math.Abs(DotProduct(p.N, p.O)) > epsilon ||
		math.Abs(DotProduct(p.O, p.A)) > epsilon ||
		math.Abs(DotProduct(p.A, p.N)) > epsilon {
		return false
	}
	return R3VectorAlmostEqual(CrossProduct(p.N, p.O), p.A, epsilon)
}

// PoseAlmostEqual returns whether every vector of two poses matches to within epsilon.
func PoseAlmostEqual(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.N, b.N, epsilon) &&
		R3VectorAlmostEqual(a.O, b.O, epsilon) &&
		R3VectorAlmostEqual(a.A, b.A, epsilon) &&
		R3VectorAlmostEqual(a.P, b.P, epsilon)
}

// String prints out a table with one row per vector of the pose.
func (p Pose) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Vector", "X", "Y", "Z"})
	for _, row := range []struct {
		name string
		v    r3.Vector
	}{
		{"n", p.N},
		{"o", p.O},
		{"a", p.A},
		{"p", p.P},
	} {
		t.AppendRow(table.Row{
			row.name,
			fmt.Sprintf("%f", row.v.X),
			fmt.Sprintf("%f", row.v.Y),
			fmt.Sprintf("%f", row.v.Z),
		})
	}
	return t.Render()
}
