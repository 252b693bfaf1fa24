package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNamer() *ScreenshotNamer {
	n := NewScreenshotNamer()
	n.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	}
	return n
}

func TestFailurePath(t *testing.T) {
	n := fixedNamer()
	path := n.FailurePath("screenshots", "login_valid_credentials")
	assert.Equal(t,
		filepath.Join("screenshots", "FAILURE_login_valid_credentials_20240315_103045.png"),
		path)
}

func TestFailurePathSanitizesCaseName(t *testing.T) {
	n := fixedNamer()
	path := n.FailurePath("out", "login with spaces/slash")
	assert.Equal(t,
		filepath.Join("out", "FAILURE_login_with_spaces_slash_20240315_103045.png"),
		path)
}

func TestSaveScreenshot(t *testing.T) {
	n := fixedNamer()
	dir := filepath.Join(t.TempDir(), "nested", "shots")
	png := []byte{0x89, 'P', 'N', 'G'}

	path, err := n.SaveScreenshot(dir, "navigate_to_forms_screen", png)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, png, data)
	assert.Equal(t, "FAILURE_navigate_to_forms_screen_20240315_103045.png", filepath.Base(path))
}

func TestCaseStatusString(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "passed", StatusPassed.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
}

func TestCaseStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusRunning.IsTerminal())
	assert.True(t, StatusPassed.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.True(t, StatusSkipped.IsTerminal())
}
