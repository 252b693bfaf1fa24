package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appiumqa/pkg/suite"
)

// testApp wires the commands like Execute does, but swallows exit codes so
// tests can inspect the returned error instead of terminating the process.
func testApp(commands ...*cli.Command) *cli.App {
	return &cli.App{
		Name:           "appiumqa",
		Flags:          GlobalFlags,
		Commands:       commands,
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func suppressStdout(t *testing.T) {
	t.Helper()
	oldStdout := os.Stdout
	os.Stdout, _ = os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	t.Cleanup(func() { os.Stdout = oldStdout })
}

func TestGlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, f := range GlobalFlags {
		for _, name := range f.Names() {
			flagNames[name] = true
		}
	}

	for _, name := range []string{"appium-url", "verbose"} {
		if !flagNames[name] {
			t.Errorf("expected global flag %q to be defined", name)
		}
	}
}

func TestRunCommandFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, f := range runCommand.Flags {
		for _, name := range f.Names() {
			flagNames[name] = true
		}
	}

	for _, name := range []string{"caps", "markers", "m", "output", "screenshots", "title", "api-url"} {
		if !flagNames[name] {
			t.Errorf("expected run flag %q to be defined", name)
		}
	}
}

func TestListCommand(t *testing.T) {
	suppressStdout(t)
	app := testApp(listCommand)

	if err := app.Run([]string{"appiumqa", "list"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestListCommand_WithMarkers(t *testing.T) {
	suppressStdout(t)
	app := testApp(listCommand)

	if err := app.Run([]string{"appiumqa", "list", "-m", "smoke"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunCommand_NoMatchingMarkers(t *testing.T) {
	suppressStdout(t)
	app := testApp(runCommand)

	err := app.Run([]string{"appiumqa", "run", "-m", "no-such-marker"})
	if err == nil {
		t.Fatal("expected error when no cases match the markers")
	}
	if !strings.Contains(err.Error(), "no test cases match") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunCommand_BadCapsFile(t *testing.T) {
	suppressStdout(t)
	app := testApp(runCommand)

	err := app.Run([]string{"appiumqa", "run", "--caps", "/nonexistent/caps.yaml"})
	if err == nil {
		t.Fatal("expected error for nonexistent caps file")
	}
	if !strings.Contains(err.Error(), "caps") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunCommand_InvalidCapsFile(t *testing.T) {
	suppressStdout(t)
	dir := t.TempDir()
	capsFile := filepath.Join(dir, "caps.yaml")
	if err := os.WriteFile(capsFile, []byte("platformName: Android\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app := testApp(runCommand)
	err := app.Run([]string{"appiumqa", "run", "--caps", capsFile})
	if err == nil {
		t.Fatal("expected error for incomplete caps file")
	}
}

func TestRunCommand_NoSessionCases(t *testing.T) {
	suppressStdout(t)

	// A registered NoSession case exercises the whole run path without an
	// automation server.
	suite.Register(suite.Case{
		Name:      "cli_wiring_probe",
		Markers:   []string{"cli-wiring"},
		NoSession: true,
		Run:       func(*suite.Context) error { return nil },
	})

	dir := t.TempDir()
	app := testApp(runCommand)
	err := app.Run([]string{
		"appiumqa", "run",
		"-m", "cli-wiring",
		"--output", filepath.Join(dir, "reports"),
		"--screenshots", filepath.Join(dir, "screenshots"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One run directory with both report artifacts.
	entries, err := os.ReadDir(filepath.Join(dir, "reports"))
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "run-") {
		t.Fatalf("expected one run-<timestamp> directory, got %v", entries)
	}

	runDir := filepath.Join(dir, "reports", entries[0].Name())
	for _, name := range []string{"report.json", "report.html"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); err != nil {
			t.Errorf("expected %s in run directory: %v", name, err)
		}
	}
}
