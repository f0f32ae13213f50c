// Package cli contains the fourdof command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/fourdof/logging"
)

const (
	// Flags.
	debugFlag    = "debug"
	jointsFlag   = "joints"
	nFlag        = "n"
	oFlag        = "o"
	aFlag        = "a"
	pFlag        = "p"
	poseFileFlag = "pose-file"
	configFlag   = "config"

	debugEnvVar = "FOURDOF_DEBUG"
)

func vectorFlag(name, usage string) *cli.Float64SliceFlag {
	return &cli.Float64SliceFlag{
		Name:  name,
		Usage: usage + " as `X,Y,Z`",
	}
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "fourdof",
		Usage:           "forward and inverse kinematics of a four joint arm",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				EnvVars: []string{debugEnvVar},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "forward",
				Usage:     "print the end effector pose reached by four joint angles",
				UsageText: "fourdof forward --joints 30,45,-30,60",
				Flags: []cli.Flag{
					&cli.Float64SliceFlag{
						Name:     jointsFlag,
						Aliases:  []string{"j"},
						Required: true,
						Usage:    "joint angles in degrees, base first, as `T1,T2,T3,T4`",
					},
				},
				Action: ForwardAction,
			},
			{
				Name:      "inverse",
				Usage:     "print the joint angles that reach a target pose",
				UsageText: "fourdof inverse --n 1,0,0 --o 0,1,0 --a 0,0,1 --p 1,1,0",
				Flags: []cli.Flag{
					vectorFlag(nFlag, "normal vector of the target"),
					vectorFlag(oFlag, "orientation vector of the target"),
					vectorFlag(aFlag, "approach vector of the target"),
					vectorFlag(pFlag, "position of the target, default origin,"),
					&cli.StringFlag{
						Name:  poseFileFlag,
						Usage: "read the target pose from a JSON5 `FILE` instead of the vector flags",
					},
				},
				Action: InverseAction,
			},
			{
				Name:   "demo",
				Usage:  "run forward kinematics on (30, 45, -30, 60) and feed the result to inverse kinematics",
				Action: DemoAction,
			},
			{
				Name:      "run",
				Usage:     "process every request in a request file",
				UsageText: "fourdof run --config request.json",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     configFlag,
						Aliases:  []string{"c"},
						Required: true,
						Usage:    "load requests from `FILE`",
					},
				},
				Action: RunAction,
			},
			{
				Name:      "sweep",
				Usage:     "plot the angles inverse kinematics recovers while one joint moves",
				UsageText: "fourdof sweep --joint 4 --out sweep.png",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  sweepFlagJoint,
						Value: 4,
						Usage: "joint to move, 1 to 4",
					},
					&cli.Float64SliceFlag{
						Name:  jointsFlag,
						Usage: "angles of the other joints in degrees as `T1,T2,T3,T4` (default all zero)",
					},
					&cli.Float64Flag{
						Name:  sweepFlagFrom,
						Value: -180,
						Usage: "first angle of the sweep in degrees",
					},
					&cli.Float64Flag{
						Name:  sweepFlagTo,
						Value: 180,
						Usage: "last angle of the sweep in degrees",
					},
					&cli.IntFlag{
						Name:  sweepFlagSteps,
						Value: 73,
						Usage: "number of samples",
					},
					&cli.StringFlag{
						Name:     sweepFlagOut,
						Required: true,
						Usage:    "write the plot to `FILE`; the extension picks the format (png, svg, pdf)",
					},
				},
				Action: SweepAction,
			},
			{
				Name:   "version",
				Usage:  "print version info for this program",
				Action: VersionAction,
			},
		},
	}
}

func newLogger(c *cli.Context) logging.Logger {
	level := logging.INFO
	if c.Bool(debugFlag) {
		level = logging.DEBUG
	}
	return logging.NewWriterLogger("fourdof", c.App.ErrWriter, level)
}
