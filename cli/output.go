package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"go.viam.com/fourdof/spatialmath"
)

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

var warningPrefix = color.New(color.Bold, color.FgYellow).Sprint("Warning:")

// warningf prints a message prefixed with a bold yellow "Warning: ".
func warningf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, warningPrefix+" "+format+"\n", a...)
}

// jointTable renders one row per joint with its axis and angle in degrees.
func jointTable(axes []spatialmath.Axis, degrees []float64) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Joint", "Axis", "Angle (deg)"})
	for i, angle := range degrees {
		t.AppendRow(table.Row{fmt.Sprintf("theta%d", i+1), axes[i].String(), fmt.Sprintf("%f", angle)})
	}
	return t.Render()
}
