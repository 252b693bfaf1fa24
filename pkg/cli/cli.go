// Package cli provides the command-line interface for appiumqa.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "appium-url",
		Usage:   "Appium server URL",
		Value:   "http://127.0.0.1:4723",
		EnvVars: []string{"APPIUM_URL"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"APPIUMQA_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	// Optional .env for local overrides (APPIUM_URL, device settings).
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "appiumqa",
		Usage:   "Appium test suite for the native demo app",
		Version: Version,
		Description: `Runs the login, form, and navigation test cases against the demo app
through an Appium server, and writes an HTML report plus failure screenshots.

Examples:
  appiumqa run
  appiumqa run -m smoke -m login
  appiumqa run --caps android.yaml --output ./reports
  appiumqa list`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			runCommand,
			listCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
