package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/fourdof/utils"
)

// Matrix4 is a 4x4 homogeneous transform: a 3x3 rotation block, a translation column and a
// [0 0 0 1] bottom row. Storage is column-major, as in mgl64; use At to read entries by row and column.
type Matrix4 mgl64.Mat4

// NewIdentityMatrix4 returns the transform with no rotation and no translation.
func NewIdentityMatrix4() Matrix4 {
	return Matrix4(mgl64.Ident4())
}

// ElementaryRotation returns the transform rotating by theta radians about the given principal axis,
// with zero translation. It panics if axis is not one of AxisX, AxisY or AxisZ.
func ElementaryRotation(theta float64, axis Axis) Matrix4 {
	switch axis {
	case AxisX:
		return Matrix4(mgl64.HomogRotate3DX(theta))
	case AxisY:
		return Matrix4(mgl64.HomogRotate3DY(theta))
	case AxisZ:
		return Matrix4(mgl64.HomogRotate3DZ(theta))
	default:
		panic(errors.Errorf("cannot build elementary rotation about invalid axis %v", axis))
	}
}

// MultiplyMatrices returns the product m1 · m2.
func MultiplyMatrices(m1, m2 Matrix4) Matrix4 {
	return Matrix4(mgl64.Mat4(m1).Mul4(mgl64.Mat4(m2)))
}

// Mul returns m · other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	return MultiplyMatrices(m, other)
}

// At returns the entry at the given row and column.
func (m Matrix4) At(row, col int) float64 {
	return mgl64.Mat4(m).At(row, col)
}

// Column returns the first three rows of the given column.
func (m Matrix4) Column(col int) r3.Vector {
	c := mgl64.Mat4(m).Col(col)
	return r3.Vector{X: c[0], Y: c[1], Z: c[2]}
}

// Translation returns the translation column.
func (m Matrix4) Translation() r3.Vector {
	return m.Column(3)
}

// AlmostEqual returns whether every entry of m is within epsilon of the matching entry of other.
func (m Matrix4) AlmostEqual(other Matrix4, epsilon float64) bool {
	for i := range m {
		if !utils.Float64AlmostEqual(m[i], other[i], epsilon) {
			return false
		}
	}
	return true
}

func (m Matrix4) String() string {
	return mgl64.Mat4(m).String()
}
