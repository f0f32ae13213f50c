package referenceframe

import "github.com/pkg/errors"

// NewIncorrectInputLengthError returns an error indicating that the length of the Input array does not match the DoF of the frame.
func NewIncorrectInputLengthError(actual, expected int) error {
	return errors.Errorf("number of inputs does not match frame DoF, expected %d but got %d", expected, actual)
}
