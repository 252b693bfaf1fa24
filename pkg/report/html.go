package report

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// htmlData is the template payload.
type htmlData struct {
	Report      *Report
	GeneratedAt string
	Duration    string
	Cases       []htmlCase
}

// htmlCase is one case formatted for the template.
type htmlCase struct {
	CaseEntry
	StatusClass string
	Duration    string
	MarkerList  string
	Screenshot  template.URL // data: URL, empty when no screenshot
}

// WriteHTML renders the report as report.html under dir. Failure
// screenshots are read from disk and embedded as base64 data URLs.
func WriteHTML(r *Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data := htmlData{
		Report:      r,
		GeneratedAt: time.Now().Format(time.RFC1123),
		Duration:    formatDuration(r.DurationMs),
	}
	for _, c := range r.Cases {
		hc := htmlCase{
			CaseEntry:   c,
			StatusClass: c.Status,
			Duration:    formatDuration(c.DurationMs),
			MarkerList:  strings.Join(c.Markers, ", "),
		}
		if c.Screenshot != "" {
			if png, err := os.ReadFile(c.Screenshot); err == nil {
				hc.Screenshot = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
			}
		}
		data.Cases = append(data.Cases, hc)
	}

	var buf strings.Builder
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}

	path := filepath.Join(dir, "report.html")
	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Report.Title}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem; color: #222; }
  h1 { font-size: 1.4rem; }
  .meta { color: #666; font-size: 0.85rem; margin-bottom: 1.5rem; }
  .summary { display: flex; gap: 1rem; margin-bottom: 1.5rem; }
  .summary .tile { border: 1px solid #ddd; border-radius: 6px; padding: 0.6rem 1.2rem; text-align: center; }
  .summary .tile .num { font-size: 1.5rem; font-weight: 600; }
  .summary .passed .num { color: #1a7f37; }
  .summary .failed .num { color: #cf222e; }
  .summary .skipped .num { color: #9a6700; }
  table { border-collapse: collapse; width: 100%; }
  th, td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid #eee; vertical-align: top; }
  th { font-size: 0.8rem; text-transform: uppercase; color: #666; }
  .status { font-weight: 600; text-transform: uppercase; font-size: 0.8rem; }
  .status.passed { color: #1a7f37; }
  .status.failed { color: #cf222e; }
  .status.skipped { color: #9a6700; }
  .error { color: #cf222e; font-family: monospace; font-size: 0.85rem; white-space: pre-wrap; }
  .markers { color: #666; font-size: 0.85rem; }
  img.shot { max-width: 320px; border: 1px solid #ddd; border-radius: 4px; margin-top: 0.5rem; }
</style>
</head>
<body>
<h1>{{.Report.Title}}</h1>
<div class="meta">
  Run {{.Report.RunID}} &middot; {{.Report.Device.Platform}} {{.Report.Device.OSVersion}}
  on {{.Report.Device.Name}} &middot; {{.Report.App.Package}} &middot;
  {{.Duration}} &middot; generated {{.GeneratedAt}}
</div>
<div class="summary">
  <div class="tile"><div class="num">{{.Report.Summary.Total}}</div>total</div>
  <div class="tile passed"><div class="num">{{.Report.Summary.Passed}}</div>passed</div>
  <div class="tile failed"><div class="num">{{.Report.Summary.Failed}}</div>failed</div>
  <div class="tile skipped"><div class="num">{{.Report.Summary.Skipped}}</div>skipped</div>
  <div class="tile"><div class="num">{{printf "%.0f%%" .Report.Summary.PassRate}}</div>pass rate</div>
</div>
<table>
<thead><tr><th>Case</th><th>Markers</th><th>Status</th><th>Duration</th><th>Detail</th></tr></thead>
<tbody>
{{range .Cases}}
<tr>
  <td>{{.Name}}</td>
  <td class="markers">{{.MarkerList}}</td>
  <td><span class="status {{.StatusClass}}">{{.Status}}</span></td>
  <td>{{.Duration}}</td>
  <td>
    {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
    {{if .Screenshot}}<img class="shot" src="{{.Screenshot}}" alt="failure screenshot for {{.Name}}">{{end}}
  </td>
</tr>
{{end}}
</tbody>
</table>
</body>
</html>
`))
