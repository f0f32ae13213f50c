package kinematics

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ErrNotOrthonormal is matched by every error returned for a target whose orientation is not a
// direct orthonormal basis.
var ErrNotOrthonormal = errors.New("target frame is not a direct orthonormal basis")

// NotOrthonormalError reports a target whose a vector does not match n × o.
type NotOrthonormalError struct {
	// Expected is n × o computed from the target.
	Expected r3.Vector
	// Actual is the a vector of the target.
	Actual r3.Vector

	causes error
}

func newNotOrthonormalError(expected, actual r3.Vector, causes error) *NotOrthonormalError {
	return &NotOrthonormalError{Expected: expected, Actual: actual, causes: causes}
}

func (e *NotOrthonormalError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotOrthonormal, e.causes)
}

// Is lets errors.Is match the error against ErrNotOrthonormal.
func (e *NotOrthonormalError) Is(target error) bool {
	return target == ErrNotOrthonormal
}

// Components returns one error per mismatched component of a.
func (e *NotOrthonormalError) Components() []error {
	return multierr.Errors(e.causes)
}
