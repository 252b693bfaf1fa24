package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appiumqa/pkg/appium"
	"github.com/devicelab-dev/appiumqa/pkg/caps"
	"github.com/devicelab-dev/appiumqa/pkg/core"
	"github.com/devicelab-dev/appiumqa/pkg/logger"
	"github.com/devicelab-dev/appiumqa/pkg/report"
	"github.com/devicelab-dev/appiumqa/pkg/suite"
)

var runCommand = &cli.Command{
	Name:  "run",
	Usage: "Run test cases against a device",
	Description: `Run registered test cases through an Appium server.

Each case gets its own session. A failing case captures a screenshot
before its session closes. Reports land in the output directory:
  <output>/run-<timestamp>/report.html
  <output>/run-<timestamp>/report.json

Examples:
  appiumqa run
  appiumqa run -m smoke
  appiumqa run -m login -m navigation --caps android.yaml`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "caps",
			Usage: "Path to capabilities YAML (defaults to built-in demo app caps)",
		},
		&cli.StringSliceFlag{
			Name:    "markers",
			Aliases: []string{"m"},
			Usage:   "Only run cases with these markers (smoke, regression, login, navigation, api)",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "Output directory for reports",
			Value: "./reports",
		},
		&cli.StringFlag{
			Name:  "screenshots",
			Usage: "Directory for failure screenshots",
			Value: "./screenshots",
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Report title",
		},
		&cli.StringFlag{
			Name:    "api-url",
			Usage:   "Backend API base URL for api-marked cases",
			Value:   "https://reqres.in",
			EnvVars: []string{"APPIUMQA_API_URL"},
		},
	},
	Action: runAction,
}

func runAction(c *cli.Context) error {
	logger.Init(c.Bool("verbose"))

	// Capability configuration: explicit file or built-in defaults,
	// immutable from here on.
	var capabilities *caps.Capabilities
	if path := c.String("caps"); path != "" {
		loaded, err := caps.Load(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("caps: %v", err), 2)
		}
		capabilities = loaded
	} else {
		capabilities = caps.Default()
	}

	cases := suite.FilterByMarkers(suite.Cases(), c.StringSlice("markers"))
	if len(cases) == 0 {
		return cli.Exit("no test cases match the given markers", 2)
	}

	serverURL := c.String("appium-url")
	w3c := capabilities.ToW3C()
	factory := func() (suite.Session, error) {
		client := appium.NewClient(serverURL)
		if err := client.Connect(w3c); err != nil {
			return nil, err
		}
		return client, nil
	}

	runner := suite.New(factory, suite.Config{
		ScreenshotDir: c.String("screenshots"),
		APIBaseURL:    c.String("api-url"),
		OnCaseStart: func(idx, total int, name string) {
			fmt.Printf("[%d/%d] %s ... ", idx+1, total, name)
		},
		OnCaseEnd: func(name string, status core.CaseStatus, duration time.Duration, errMsg string) {
			fmt.Printf("%s (%s)\n", status, duration.Round(time.Millisecond))
			if errMsg != "" {
				fmt.Printf("        %s\n", errMsg)
			}
		},
	})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("running %d cases against %s", len(cases), serverURL)
	result := runner.Run(ctx, cases)

	outDir := filepath.Join(c.String("output"), "run-"+result.StartTime.Format("20060102-150405"))
	rep := report.Build(result, capabilities, c.String("title"))
	jsonPath, err := report.WriteJSON(rep, outDir)
	if err != nil {
		return cli.Exit(fmt.Sprintf("write report.json: %v", err), 2)
	}
	htmlPath, err := report.WriteHTML(rep, outDir)
	if err != nil {
		return cli.Exit(fmt.Sprintf("write report.html: %v", err), 2)
	}

	fmt.Printf("\n%d passed, %d failed, %d skipped in %s\n",
		result.Passed, result.Failed, result.Skipped, result.Duration.Round(time.Millisecond))
	fmt.Printf("Report: %s\n", htmlPath)
	logger.Debug("json report: %s", jsonPath)

	if !result.Success() {
		return cli.Exit("", 1)
	}
	return nil
}
