// Package core provides the execution model types shared by the suite:
// error taxonomy, case status, and failure artifact handling.
package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"
)

// Attachment represents a debug artifact captured for a failed case
type Attachment struct {
	Name        string `json:"name"`        // Descriptive name: screenshot
	ContentType string `json:"contentType"` // MIME type: image/png
	Path        string `json:"path"`        // File path relative to the working directory
}

// Common content types
const (
	ContentTypePNG = "image/png"
)

// failurePattern is the screenshot filename layout. Timestamps keep reruns
// from clobbering earlier failures.
const failurePattern = "FAILURE_{test}_{timestamp}.png"

const timestampLayout = "20060102_150405"

// ScreenshotNamer builds failure screenshot paths from the case name
// and capture time.
type ScreenshotNamer struct {
	tpl *fasttemplate.Template
	now func() time.Time
}

// NewScreenshotNamer creates a namer using the wall clock.
func NewScreenshotNamer() *ScreenshotNamer {
	return &ScreenshotNamer{
		tpl: fasttemplate.New(failurePattern, "{", "}"),
		now: time.Now,
	}
}

// FailurePath returns the path for a failure screenshot of the given case.
func (n *ScreenshotNamer) FailurePath(dir, caseName string) string {
	name := n.tpl.ExecuteString(map[string]interface{}{
		"test":      sanitizeName(caseName),
		"timestamp": n.now().Format(timestampLayout),
	})
	return filepath.Join(dir, name)
}

// SaveScreenshot writes PNG data to the failure path for the case,
// creating the directory if needed, and returns the written path.
func (n *ScreenshotNamer) SaveScreenshot(dir, caseName string, png []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := n.FailurePath(dir, caseName)
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// sanitizeName replaces characters that are awkward in filenames.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
