package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := NewApp(&out, &errOut)
	err := app.Run(append([]string{"fourdof"}, args...))
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func TestForwardAction(t *testing.T) {
	out, _, err := runApp(t, "forward", "--joints", "30,45,-30,60")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "VECTOR")
	test.That(t, out, test.ShouldContainSubstring, "-0.014755")
	test.That(t, out, test.ShouldContainSubstring, "0.991481")
	test.That(t, out, test.ShouldContainSubstring, "-0.974444")
	test.That(t, out, test.ShouldContainSubstring, "0.965926")

	_, _, err = runApp(t, "forward", "--joints", "1,2,3")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "expects 4 angles but got 3")

	_, _, err = runApp(t, "forward")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "joints")
}

func TestInverseAction(t *testing.T) {
	out, _, err := runApp(t, "inverse", "--n", "1,0,0", "--o", "0,1,0", "--a", "0,0,1", "--p", "1,1,0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "JOINT")
	test.That(t, out, test.ShouldContainSubstring, "theta1")
	test.That(t, out, test.ShouldContainSubstring, "45.000000")
	test.That(t, out, test.ShouldContainSubstring, "90.000000")

	out, _, err = runApp(t, "inverse", "--n", "1,0,0", "--o", "0,1,0", "--a", "0,0,1")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "0.000000")

	_, _, err = runApp(t, "inverse", "--n", "1,0,0", "--o", "0,1,0", "--a", "1,0,0")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not a direct orthonormal basis")

	_, _, err = runApp(t, "inverse", "--n", "1,0,0")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "--o is required")
	test.That(t, err.Error(), test.ShouldContainSubstring, "--a is required")

	_, _, err = runApp(t, "inverse", "--n", "1,0", "--o", "0,1,0", "--a", "0,0,1")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "--n expects 3 components but got 2")
}

func TestInverseActionPoseFile(t *testing.T) {
	path := writeFile(t, "pose.json", `{
		// behind and below the base
		"n": {"x": 1, "y": 0, "z": 0},
		"o": {"x": 0, "y": 1, "z": 0},
		"a": {"x": 0, "y": 0, "z": 1},
		"p": {"x": -1, "y": 0, "z": -1}
	}`)
	out, _, err := runApp(t, "inverse", "--pose-file", path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "180.000000")
	test.That(t, out, test.ShouldContainSubstring, "135.000000")

	_, _, err = runApp(t, "inverse", "--pose-file", path, "--n", "1,0,0")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot be combined")

	bad := writeFile(t, "bad.json", `{"n": [1, 2`)
	_, _, err = runApp(t, "inverse", "--pose-file", bad)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode pose")

	_, _, err = runApp(t, "inverse", "--pose-file", filepath.Join(t.TempDir(), "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestDemoAction(t *testing.T) {
	out, _, err := runApp(t, "demo")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "Forward kinematics for [30 45 -30 60]")
	test.That(t, out, test.ShouldContainSubstring, "Inverse kinematics of that pose")
	test.That(t, out, test.ShouldContainSubstring, "103.064313")
	test.That(t, out, test.ShouldContainSubstring, "90.852574")
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := runApp(t, "demo")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldBeEmpty)

	_, errOut, err = runApp(t, "--debug", "demo")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldContainSubstring, "inverse kinematics")

	t.Setenv(debugEnvVar, "true")
	_, errOut, err = runApp(t, "inverse", "--n", "1,0,0", "--o", "0,1,0", "--a", "0,0,-1")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errOut, test.ShouldContainSubstring, "rejecting target")
}

func TestRunAction(t *testing.T) {
	t.Setenv("FOURDOF_TEST_THETA4", "60")
	path := writeFile(t, "request.json", `{
		"forward": [{"name": "golden", "joints_deg": [30, 45, -30, ${FOURDOF_TEST_THETA4}]}],
		"inverse": [
			{"name": "diagonal", "pose": {"n": {"x": 1}, "o": {"y": 1}, "a": {"z": 1}, "p": {"x": 1, "y": 1}}},
			{"name": "skewed", "pose": {"n": {"x": 1}, "o": {"y": 1}, "a": {"x": 1}}}
		]
	}`)
	out, errOut, err := runApp(t, "run", "--config", path)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "1 of 2 inverse requests failed")
	test.That(t, err.Error(), test.ShouldContainSubstring, `inverse request "skewed"`)
	test.That(t, out, test.ShouldContainSubstring, "forward golden")
	test.That(t, out, test.ShouldContainSubstring, "0.965926")
	test.That(t, out, test.ShouldContainSubstring, "inverse diagonal")
	test.That(t, out, test.ShouldContainSubstring, "45.000000")
	test.That(t, errOut, test.ShouldContainSubstring, "skewed")

	ok := writeFile(t, "ok.json", `{"forward": [{"name": "home", "joints_deg": [0, 0, 0, 0]}]}`)
	out, _, err = runApp(t, "run", "--config", ok)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "forward home")

	empty := writeFile(t, "empty.json", `{}`)
	_, _, err = runApp(t, "run", "--config", empty)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no forward or inverse requests")
}

func TestVersionAction(t *testing.T) {
	out, _, err := runApp(t, "version")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "version")
	test.That(t, out, test.ShouldContainSubstring, "go")
}
