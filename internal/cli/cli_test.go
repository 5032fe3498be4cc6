package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/luthier/pkg/config"
	"github.com/matzehuels/luthier/pkg/errors"
)

// isolate points every config lookup at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv(config.EnvConfigPath, "")
	return dir
}

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String() + logs.String(), err
}

func TestConvertCommand(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "convert", "25.5in")
	if err != nil {
		t.Fatalf("convert error: %v", err)
	}
	for _, want := range []string{"25 1/2 in", "647.70 mm", "2.125 ft", "647700.0 µm"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConvertCommandJSON(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "convert", "3/4", "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	var report map[string]string
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if report["fraction"] != "0 3/4 in" {
		t.Errorf("fraction = %q, want %q", report["fraction"], "0 3/4 in")
	}
	if report["decimal"] != "0.750 in" {
		t.Errorf("decimal = %q", report["decimal"])
	}
}

func TestConvertCommandFinest(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "convert", "0.3", "--finest", "32", "-f", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "fraction: 5/16 in") {
		t.Errorf("output:\n%s", out)
	}
}

func TestParseCommand(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "parse", "5'", "-f", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"magnitude: 5", "unit: feet", "resolved: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, logs, err := run(t, "parse", "12", "furlongs")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "not recognized") {
		t.Errorf("text output should flag the unknown unit:\n%s", out)
	}
	if !strings.Contains(logs, "furlongs") {
		t.Errorf("log should warn about the unknown unit:\n%s", logs)
	}
}

func TestRoundCommand(t *testing.T) {
	isolate(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"round", "0.3"}, "19/64"},
		{[]string{"round", "0.45", "--finest", "100"}, "not on the ruler"},
		{[]string{"round", "0.45", "--finest", "100", "--snap"}, "7/16"},
		{[]string{"round", "6.35mm"}, "1/4"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestSpacingCommand(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "spacing", "--nut", "1.625", "--gauges", ".046,.036,.026,.017,.013,.010", "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		NutWidth  float64   `json:"nut_width"`
		Gap       float64   `json:"inter_string_distance"`
		Positions []float64 `json:"positions"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.NutWidth != 1.625 || got.Gap != 0.251 {
		t.Errorf("got %+v", got)
	}
	if len(got.Positions) != 6 || got.Positions[5] != 1.5 {
		t.Errorf("positions = %v", got.Positions)
	}

	out, _, err = run(t, "spacing", "--nut", "1.625", "--gauges", ".046,.036,.026,.017,.013,.010")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"6 strings", "0.9715", "0.251 in"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestSpacingCommandErrors(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "spacing", "--nut", "1.625", "--gauges", ".046")
	if !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("one gauge: error = %v, want %s", err, errors.ErrCodeConfiguration)
	}

	_, _, err = run(t, "spacing", "--nut", "wide")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad nut: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestFretboardCommand(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "fretboard", "--scale", "25.5", "--frets", "12", "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Frets []struct {
			Number   int     `json:"number"`
			Position float64 `json:"position"`
		} `json:"frets"`
		StartRadius float64 `json:"start_radius"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got.Frets) != 12 || got.Frets[11].Position != 12.75 {
		t.Errorf("frets = %+v", got.Frets)
	}
	if got.StartRadius != config.DefaultStartRadius {
		t.Errorf("start radius = %v, want config default", got.StartRadius)
	}

	if _, _, err := run(t, "fretboard", "--frets", "0"); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("zero frets: error = %v, want %s", err, errors.ErrCodeConfiguration)
	}
}

func TestFormatErrors(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "convert", "1in", "-f", "xml")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestOutputFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "report.toml")

	out, _, err := run(t, "convert", "1in", "-f", "toml", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want nothing", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `fraction = "1 in"`) {
		t.Errorf("file:\n%s", data)
	}
}

func TestConfigFileDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "luthier.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"json\"\n[ruler]\nfinest = 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// ./luthier.toml is picked up without --config.
	out, _, err := run(t, "convert", "0.3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"fraction": "5/16 in"`) {
		t.Errorf("output:\n%s", out)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cfg", "luthier.yaml")

	_, stderr, err := run(t, "config", "init", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, path) {
		t.Errorf("stderr should name the file:\n%s", stderr)
	}
	if _, _, err := run(t, "config", "init", path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("second init: error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}

	out, _, err := run(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[ruler]", "finest = 64", "scale_length = 25.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestMissingConfigFlag(t *testing.T) {
	dir := isolate(t)
	_, _, err := run(t, "--config", filepath.Join(dir, "nope.toml"), "convert", "1")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "luthier") {
		t.Error("bash completion does not mention luthier")
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "luthier version") {
		t.Errorf("--version output = %q", out)
	}
}

// testChdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
