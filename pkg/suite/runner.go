package suite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devicelab-dev/appiumqa/pkg/api"
	"github.com/devicelab-dev/appiumqa/pkg/core"
	"github.com/devicelab-dev/appiumqa/pkg/logger"
	"github.com/devicelab-dev/appiumqa/pkg/pages"
)

// Session is the live connection a case drives. *appium.Client satisfies
// it; mock.Session satisfies it in tests.
type Session interface {
	pages.Session
	Screenshot() ([]byte, error)
	Disconnect() error
}

// SessionFactory opens one fresh session. Called once per case: sessions
// are never reused across cases.
type SessionFactory func() (Session, error)

// Context carries the fixtures handed to a scenario.
type Context struct {
	Login *pages.LoginPage
	Home  *pages.HomePage
	API   *api.Client
	Ctx   context.Context
}

// Config configures the runner.
type Config struct {
	ScreenshotDir string // Failure screenshots land here
	APIBaseURL    string // Backend for NoSession cases

	// Live progress callbacks
	OnCaseStart func(idx, total int, name string)
	OnCaseEnd   func(name string, status core.CaseStatus, duration time.Duration, errMsg string)
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name       string
	Markers    []string
	Status     core.CaseStatus
	StartTime  time.Time
	Duration   time.Duration
	Error      string
	Screenshot string // Failure screenshot path, empty on pass
}

// RunResult is the outcome of one run.
type RunResult struct {
	RunID     string
	StartTime time.Time
	Duration  time.Duration
	Cases     []CaseResult

	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeSummary fills the counts from the case results.
func (r *RunResult) ComputeSummary() {
	r.Total = len(r.Cases)
	r.Passed, r.Failed, r.Skipped = 0, 0, 0
	for _, c := range r.Cases {
		switch c.Status {
		case core.StatusPassed:
			r.Passed++
		case core.StatusFailed:
			r.Failed++
		case core.StatusSkipped:
			r.Skipped++
		}
	}
}

// Success returns true if every case passed.
func (r *RunResult) Success() bool {
	return r.Total > 0 && r.Failed == 0
}

// Runner executes cases sequentially: one test at a time, one session
// open at a time.
type Runner struct {
	cfg        Config
	newSession SessionFactory
	namer      *core.ScreenshotNamer
}

// New creates a Runner.
func New(factory SessionFactory, cfg Config) *Runner {
	return &Runner{
		cfg:        cfg,
		newSession: factory,
		namer:      core.NewScreenshotNamer(),
	}
}

// Run executes all cases and aggregates results. A cancelled context skips
// the remaining cases; it never interrupts a case's teardown.
func (r *Runner) Run(ctx context.Context, cases []Case) *RunResult {
	result := &RunResult{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
	}

	for i, c := range cases {
		if r.cfg.OnCaseStart != nil {
			r.cfg.OnCaseStart(i, len(cases), c.Name)
		}

		var cr CaseResult
		if ctx.Err() != nil {
			cr = CaseResult{
				Name:      c.Name,
				Markers:   c.Markers,
				Status:    core.StatusSkipped,
				StartTime: time.Now(),
				Error:     "run cancelled",
			}
		} else {
			cr = r.runCase(ctx, c)
		}

		if r.cfg.OnCaseEnd != nil {
			r.cfg.OnCaseEnd(cr.Name, cr.Status, cr.Duration, cr.Error)
		}
		result.Cases = append(result.Cases, cr)
	}

	result.Duration = time.Since(result.StartTime)
	result.ComputeSummary()
	return result
}

// runCase walks one case through its lifecycle: open session, run the
// scenario, capture a screenshot if it failed, close the session. The
// close runs on every exit path, including panics inside the scenario.
func (r *Runner) runCase(ctx context.Context, c Case) CaseResult {
	res := CaseResult{
		Name:      c.Name,
		Markers:   c.Markers,
		StartTime: time.Now(),
	}
	defer func() {
		res.Duration = time.Since(res.StartTime)
	}()

	if c.NoSession {
		if err := runScenario(ctx, c, nil, r.cfg.APIBaseURL); err != nil {
			res.Status = core.StatusFailed
			res.Error = err.Error()
			return res
		}
		res.Status = core.StatusPassed
		return res
	}

	sess, err := r.newSession()
	if err != nil {
		logger.Error("case %s: session open failed: %v", c.Name, err)
		res.Status = core.StatusFailed
		res.Error = err.Error()
		return res
	}
	defer func() {
		if cerr := sess.Disconnect(); cerr != nil {
			logger.Warn("case %s: session close failed: %v", c.Name, cerr)
		}
	}()

	if err := runScenario(ctx, c, sess, r.cfg.APIBaseURL); err != nil {
		res.Status = core.StatusFailed
		res.Error = err.Error()
		res.Screenshot = r.captureFailure(sess, c.Name)
		return res
	}

	res.Status = core.StatusPassed
	return res
}

// runScenario invokes the case body, converting a panic into a failure so
// teardown still runs.
func runScenario(ctx context.Context, c Case, sess Session, apiBaseURL string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("scenario panicked: %v", rec)
		}
	}()

	sc := &Context{Ctx: ctx}
	if sess != nil {
		sc.Login = pages.NewLoginPage(sess)
		sc.Home = pages.NewHomePage(sess)
	}
	if apiBaseURL != "" {
		sc.API = api.NewClient(apiBaseURL)
	}
	return c.Run(sc)
}

// captureFailure grabs a screenshot from the still-open session and writes
// it under the screenshot directory. Capture problems are logged, never
// escalated: the case already failed for a more interesting reason.
func (r *Runner) captureFailure(sess Session, caseName string) string {
	png, err := sess.Screenshot()
	if err != nil {
		logger.Warn("case %s: screenshot capture failed: %v", caseName, err)
		return ""
	}

	path, err := r.namer.SaveScreenshot(r.cfg.ScreenshotDir, caseName, png)
	if err != nil {
		logger.Warn("case %s: screenshot write failed: %v", caseName, err)
		return ""
	}
	logger.Info("case %s: failure screenshot saved to %s", caseName, path)
	return path
}
