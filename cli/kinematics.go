package cli

import (
	"github.com/a8m/envsubst"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.uber.org/multierr"

	"go.viam.com/fourdof/config"
	"go.viam.com/fourdof/kinematics"
	"go.viam.com/fourdof/logging"
	frame "go.viam.com/fourdof/referenceframe"
	"go.viam.com/fourdof/spatialmath"
)

// Joint angles used by the demo command.
var demoJoints = []float64{30, 45, -30, 60}

// ForwardAction prints the pose reached by the joint angles given on the command line.
func ForwardAction(c *cli.Context) error {
	joints := c.Float64Slice(jointsFlag)
	if len(joints) != config.JointCount {
		return errors.Errorf("--%s expects %d angles but got %d", jointsFlag, config.JointCount, len(joints))
	}
	newLogger(c).Debugw("forward kinematics", "joints_deg", joints)
	printf(c.App.Writer, "%s", forward(joints))
	return nil
}

// InverseAction prints the joint angles reaching the pose given on the command line.
func InverseAction(c *cli.Context) error {
	target, err := targetFromFlags(c)
	if err != nil {
		return err
	}
	out, err := inverse(newLogger(c), target)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", out)
	return nil
}

// DemoAction runs forward kinematics on a fixed set of angles and inverse kinematics on the result.
func DemoAction(c *cli.Context) error {
	logger := newLogger(c)
	pose := kinematics.CalculateMGD(demoJoints[0], demoJoints[1], demoJoints[2], demoJoints[3])
	printf(c.App.Writer, "Forward kinematics for %v", demoJoints)
	printf(c.App.Writer, "%s", pose)

	out, err := inverse(logger, pose)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "Inverse kinematics of that pose")
	printf(c.App.Writer, "%s", out)
	return nil
}

// RunAction processes every request of a request file. Rejected inverse requests are reported
// once all requests have run.
func RunAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg, err := config.Read(c.String(configFlag), logger)
	if err != nil {
		return err
	}

	for _, req := range cfg.Forward {
		printf(c.App.Writer, "forward %s", req.Name)
		printf(c.App.Writer, "%s", forward(req.JointsDeg))
	}
	var errs error
	var failed int
	for _, req := range cfg.Inverse {
		printf(c.App.Writer, "inverse %s", req.Name)
		out, err := inverse(logger.Sublogger(req.Name), *req.Pose)
		if err != nil {
			warningf(c.App.ErrWriter, "%s: %v", req.Name, err)
			errs = multierr.Append(errs, errors.Wrapf(err, "inverse request %q", req.Name))
			failed++
			continue
		}
		printf(c.App.Writer, "%s", out)
	}
	// urfave/cli calls OsExiter for errors with an Errors method, so the combined error stays wrapped.
	return errors.Wrapf(errs, "%d of %d inverse requests failed", failed, len(cfg.Inverse))
}

func forward(joints []float64) spatialmath.Pose {
	return kinematics.CalculateMGD(joints[0], joints[1], joints[2], joints[3])
}

func inverse(logger logging.Logger, target spatialmath.Pose) (string, error) {
	model := kinematics.NewModel(kinematics.ModelName)
	inputs, err := kinematics.NewAnalyticIK(model, logger).Solve(target)
	if err != nil {
		return "", err
	}
	degrees := frame.InputsToDegrees(inputs)
	logger.Debugw("inverse kinematics", "joints_deg", degrees)
	return jointTable(model.Axes(), degrees), nil
}

func targetFromFlags(c *cli.Context) (spatialmath.Pose, error) {
	if path := c.String(poseFileFlag); path != "" {
		for _, name := range []string{nFlag, oFlag, aFlag, pFlag} {
			if c.IsSet(name) {
				return spatialmath.Pose{}, errors.Errorf("--%s cannot be combined with --%s", poseFileFlag, name)
			}
		}
		buf, err := envsubst.ReadFile(path)
		if err != nil {
			return spatialmath.Pose{}, err
		}
		var target spatialmath.Pose
		if err := json5.Unmarshal(buf, &target); err != nil {
			return spatialmath.Pose{}, errors.Wrapf(err, "failed to decode pose from %s", path)
		}
		return target, nil
	}

	var target spatialmath.Pose
	var errs error
	for _, v := range []struct {
		name     string
		dst      *r3.Vector
		required bool
	}{
		{nFlag, &target.N, true},
		{oFlag, &target.O, true},
		{aFlag, &target.A, true},
		{pFlag, &target.P, false},
	} {
		if !c.IsSet(v.name) {
			if v.required {
				errs = multierr.Append(errs, errors.Errorf("--%s is required unless --%s is given", v.name, poseFileFlag))
			}
			continue
		}
		vec, err := parseVector(v.name, c.Float64Slice(v.name))
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		*v.dst = vec
	}
	return target, errors.Wrap(errs, "invalid target")
}

func parseVector(name string, values []float64) (r3.Vector, error) {
	if len(values) != 3 {
		return r3.Vector{}, errors.Errorf("--%s expects 3 components but got %d", name, len(values))
	}
	return r3.Vector{X: values[0], Y: values[1], Z: values[2]}, nil
}
