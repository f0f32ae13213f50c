package kinematics

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/fourdof/logging"
	frame "go.viam.com/fourdof/referenceframe"
	spatial "go.viam.com/fourdof/spatialmath"
)

// OrthonormalTolerance is the largest difference allowed between each component of a target's
// a vector and n × o.
const OrthonormalTolerance = 1e-10

// InverseKinematics recovers the joint inputs that place a frame at a target pose.
type InverseKinematics interface {
	// Solve returns joint inputs in radians for the target, or an error if the target is rejected.
	Solve(target spatial.Pose) ([]frame.Input, error)
	Model() frame.Frame
}

var defaultSolver = NewAnalyticIK(defaultModel, logging.NewBlankLogger("ik"))

// AnalyticIK is the closed form inverse geometric model of the four joint arm. It returns a single
// solution and does not treat singular targets specially.
//
// The formulas are a simplified model of the arm geometry; feeding a pose from the direct model back
// into Solve is not guaranteed to return the original joint angles.
type AnalyticIK struct {
	model  *Model
	logger logging.Logger
}

var _ InverseKinematics = (*AnalyticIK)(nil)

// NewAnalyticIK creates a solver for the given model.
func NewAnalyticIK(model *Model, logger logging.Logger) *AnalyticIK {
	return &AnalyticIK{model: model, logger: logger}
}

// Model returns the frame the solver was created for.
func (ik *AnalyticIK) Model() frame.Frame {
	return ik.model
}

// Solve checks that the target orientation is a direct orthonormal basis and then computes the
// four joint angles in radians. atan2(0, 0) is 0, so a target at the origin gives zero for the
// first two joints.
func (ik *AnalyticIK) Solve(target spatial.Pose) ([]frame.Input, error) {
	if err := CheckOrthonormal(target); err != nil {
		ik.logger.Debugw("rejecting target", "model", ik.model.Name(), "n", target.N, "o", target.O, "a", target.A, "error", err)
		return nil, err
	}

	p, a, n := target.P, target.A, target.N
	return []frame.Input{
		{Value: math.Atan2(p.Y, p.X)},
		{Value: math.Atan2(math.Sqrt(p.X*p.X+p.Y*p.Y), p.Z)},
		{Value: math.Atan2(a.Z, -a.X)},
		{Value: math.Atan2(n.Y, n.X)},
	}, nil
}

// CheckOrthonormal compares n × o with a component by component. It returns a *NotOrthonormalError
// listing every component that differs by more than OrthonormalTolerance; NaN components never pass.
func CheckOrthonormal(target spatial.Pose) error {
	expected := spatial.CrossProduct(target.N, target.O)
	var errs error
	for _, c := range []struct {
		name          string
		expected, got float64
	}{
		{"x", expected.X, target.A.X},
		{"y", expected.Y, target.A.Y},
		{"z", expected.Z, target.A.Z},
	} {
		if !(math.Abs(c.expected-c.got) <= OrthonormalTolerance) {
			errs = multierr.Append(errs, errors.Errorf("a.%s is %v but n × o gives %v", c.name, c.got, c.expected))
		}
	}
	if errs != nil {
		return newNotOrthonormalError(expected, target.A, errs)
	}
	return nil
}

// CalculateMGI is the inverse geometric model: it returns the four joint angles in degrees that the
// closed form solution gives for the target, or an error matching ErrNotOrthonormal and no angles if
// the target orientation is rejected.
func CalculateMGI(target spatial.Pose) ([]float64, error) {
	inputs, err := defaultSolver.Solve(target)
	if err != nil {
		return nil, err
	}
	return frame.InputsToDegrees(inputs), nil
}
