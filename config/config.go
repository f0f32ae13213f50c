// Package config defines the request file processed by the fourdof run command.
package config

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"go.viam.com/fourdof/spatialmath"
)

// JointCount is the number of joint angles a forward request must carry.
const JointCount = 4

// A Config describes a batch of forward and inverse kinematics requests.
type Config struct {
	ConfigFilePath string `json:"-"`

	Forward []ForwardRequest `json:"forward,omitempty"`
	Inverse []InverseRequest `json:"inverse,omitempty"`
}

// A ForwardRequest asks for the pose reached by the given joint angles.
type ForwardRequest struct {
	Name      string    `json:"name"`
	JointsDeg []float64 `json:"joints_deg"`
}

// Validate ensures all parts of the request are valid.
func (req *ForwardRequest) Validate(path string) error {
	if req.Name == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "name")
	}
	if len(req.JointsDeg) != JointCount {
		return utils.NewConfigValidationError(path,
			errors.Errorf("expected %d joint angles but got %d", JointCount, len(req.JointsDeg)))
	}
	return nil
}

// An InverseRequest asks for the joint angles reaching the given pose.
type InverseRequest struct {
	Name string            `json:"name"`
	Pose *spatialmath.Pose `json:"pose"`
}

// Validate ensures all parts of the request are valid.
func (req *InverseRequest) Validate(path string) error {
	if req.Name == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "name")
	}
	if req.Pose == nil {
		return utils.NewConfigValidationFieldRequiredError(path, "pose")
	}
	return nil
}

// Ensure ensures all parts of the config are valid. Every failing entry is reported.
func (c *Config) Ensure() error {
	if len(c.Forward) == 0 && len(c.Inverse) == 0 {
		return errors.New("config contains no forward or inverse requests")
	}

	var errs error
	seen := map[string]string{}
	checkName := func(path, name string) {
		if name == "" {
			return
		}
		if other, ok := seen[name]; ok {
			errs = multierr.Append(errs, utils.NewConfigValidationError(path,
				errors.Errorf("name %q is already used by %s", name, other)))
			return
		}
		seen[name] = path
	}
	for idx := range c.Forward {
		path := fmt.Sprintf("%s.%d", "forward", idx)
		errs = multierr.Append(errs, c.Forward[idx].Validate(path))
		checkName(path, c.Forward[idx].Name)
	}
	for idx := range c.Inverse {
		path := fmt.Sprintf("%s.%d", "inverse", idx)
		errs = multierr.Append(errs, c.Inverse[idx].Validate(path))
		checkName(path, c.Inverse[idx].Name)
	}
	return errs
}
