// Package report renders a run into two artifacts: a JSON index for
// machines and a standalone HTML file for humans, with failure screenshots
// embedded so the HTML travels as a single file.
package report

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"github.com/devicelab-dev/appiumqa/pkg/caps"
	"github.com/devicelab-dev/appiumqa/pkg/suite"
)

// Version is the report schema version.
const Version = "1.0.0"

// Report is the run-level index.
type Report struct {
	Version    string      `json:"version"`
	RunID      string      `json:"runId"`
	Title      string      `json:"title"`
	StartTime  time.Time   `json:"startTime"`
	DurationMs int64       `json:"durationMs"`
	Device     Device      `json:"device"`
	App        App         `json:"app"`
	Summary    Summary     `json:"summary"`
	Cases      []CaseEntry `json:"cases"`
}

// Device describes the target device.
type Device struct {
	Name      string `json:"name"`
	Platform  string `json:"platform"`
	OSVersion string `json:"osVersion"`
}

// App describes the app under test.
type App struct {
	Package  string `json:"package"`
	Activity string `json:"activity,omitempty"`
}

// Summary aggregates case outcomes.
type Summary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Skipped  int     `json:"skipped"`
	PassRate float64 `json:"passRate"`
}

// CaseEntry is one case's outcome.
type CaseEntry struct {
	Name       string   `json:"name"`
	Markers    []string `json:"markers"`
	Status     string   `json:"status"`
	DurationMs int64    `json:"durationMs"`
	Error      string   `json:"error,omitempty"`
	Screenshot string   `json:"screenshot,omitempty"`
}

// Build assembles a Report from a run result and the capabilities it ran
// against.
func Build(run *suite.RunResult, c *caps.Capabilities, title string) *Report {
	if title == "" {
		title = "Mobile QA Test Report"
	}

	r := &Report{
		Version:    Version,
		RunID:      run.RunID,
		Title:      title,
		StartTime:  run.StartTime,
		DurationMs: run.Duration.Milliseconds(),
		Device: Device{
			Name:      c.DeviceName,
			Platform:  c.PlatformName,
			OSVersion: c.PlatformVersion,
		},
		App: App{
			Package:  c.AppPackage,
			Activity: c.AppActivity,
		},
		Summary: Summary{
			Total:   run.Total,
			Passed:  run.Passed,
			Failed:  run.Failed,
			Skipped: run.Skipped,
		},
	}
	if run.Total > 0 {
		r.Summary.PassRate = float64(run.Passed) / float64(run.Total) * 100
	}

	for _, cr := range run.Cases {
		r.Cases = append(r.Cases, CaseEntry{
			Name:       cr.Name,
			Markers:    cr.Markers,
			Status:     cr.Status.String(),
			DurationMs: cr.Duration.Milliseconds(),
			Error:      cr.Error,
			Screenshot: cr.Screenshot,
		})
	}
	return r
}

// WriteJSON writes the index as report.json under dir.
func WriteJSON(r *Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := sonic.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "report.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
