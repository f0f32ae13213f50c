package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"go.viam.com/fourdof/config"
	"go.viam.com/fourdof/kinematics"
	"go.viam.com/fourdof/utils"
)

const (
	sweepFlagJoint = "joint"
	sweepFlagFrom  = "from"
	sweepFlagTo    = "to"
	sweepFlagSteps = "steps"
	sweepFlagOut   = "out"
)

// sweep drives one joint from `from` to `to` in steps, keeping the others at base, and returns the
// angles CalculateMGI recovers from each forward pose, one series per joint.
func sweep(ctx context.Context, base []float64, joint int, from, to float64, steps int) ([]plotter.XYs, error) {
	if len(base) != config.JointCount {
		return nil, errors.Errorf("expected %d base angles but got %d", config.JointCount, len(base))
	}
	if joint < 1 || joint > config.JointCount {
		return nil, errors.Errorf("joint must be between 1 and %d, got %d", config.JointCount, joint)
	}
	if steps < 2 {
		return nil, errors.Errorf("need at least 2 steps, got %d", steps)
	}

	series := make([]plotter.XYs, config.JointCount)
	for i := range series {
		series[i] = make(plotter.XYs, steps)
	}
	err := utils.ParallelFor(ctx, steps, func(ctx context.Context, step int) error {
		angles := make([]float64, len(base))
		copy(angles, base)
		angle := from + (to-from)*float64(step)/float64(steps-1)
		angles[joint-1] = angle
		recovered, err := kinematics.CalculateMGI(forward(angles))
		if err != nil {
			return errors.Wrapf(err, "at %v", angles)
		}
		for i, r := range recovered {
			series[i][step] = plotter.XY{X: angle, Y: r}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "sweep failed")
	}
	return series, nil
}

// SweepAction plots the joint angles recovered from forward poses while one joint moves.
func SweepAction(c *cli.Context) error {
	base := c.Float64Slice(jointsFlag)
	if !c.IsSet(jointsFlag) {
		base = make([]float64, config.JointCount)
	}
	joint := c.Int(sweepFlagJoint)
	series, err := sweep(c.Context, base, joint, c.Float64(sweepFlagFrom), c.Float64(sweepFlagTo), c.Int(sweepFlagSteps))
	if err != nil {
		return err
	}
	newLogger(c).Debugw("sweep", "joint", joint, "base_deg", base, "steps", len(series[0]))

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Recovered angles while sweeping theta%d", joint)
	p.X.Label.Text = fmt.Sprintf("theta%d (deg)", joint)
	p.Y.Label.Text = "recovered angle (deg)"
	p.Legend.Top = true

	lines := make([]interface{}, 0, 2*len(series))
	for i, xys := range series {
		lines = append(lines, fmt.Sprintf("theta%d", i+1), xys)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return err
	}

	out := c.String(sweepFlagOut)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", out)
	}
	printf(c.App.Writer, "wrote %s", out)
	return nil
}
