package pages

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devicelab-dev/appiumqa/pkg/core"
	"github.com/devicelab-dev/appiumqa/pkg/mock"
)

// fastPage wraps a mock session with millisecond wait bounds so that
// timeout paths run quickly.
func fastPage(s Session) BasePage {
	p := NewBasePage(s)
	p.Wait = 50 * time.Millisecond
	p.ShortWait = 30 * time.Millisecond
	p.poll = 5 * time.Millisecond
	return p
}

func TestFind(t *testing.T) {
	sess := mock.NewSession()
	sess.AddElement("input-email")
	p := fastPage(sess)

	id, err := p.Find(AccessibilityID("input-email"), p.Wait)
	require.NoError(t, err)
	assert.Equal(t, "input-email", id)
}

func TestFindTimeout(t *testing.T) {
	sess := mock.NewSession()
	p := fastPage(sess)

	start := time.Now()
	_, err := p.Find(AccessibilityID("missing"), p.Wait)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrElementNotFound))

	var serr *core.SuiteError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "accessibility id=missing", serr.Details["locator"])

	// The poll must stop once the bound elapses.
	assert.Less(t, elapsed, time.Second)
	assert.GreaterOrEqual(t, elapsed, p.Wait)
}

func TestFindDefaultsTimeout(t *testing.T) {
	sess := mock.NewSession()
	sess.AddElement("btn")
	p := fastPage(sess)

	id, err := p.Find(AccessibilityID("btn"), 0)
	require.NoError(t, err)
	assert.Equal(t, "btn", id)
}

func TestClick(t *testing.T) {
	sess := mock.NewSession()
	sess.AddElement("button-LOGIN")
	p := fastPage(sess)

	require.NoError(t, p.Click(AccessibilityID("button-LOGIN"), p.Wait))
	assert.Equal(t, []string{"button-LOGIN"}, sess.Clicks)
}

func TestClickDisabledElement(t *testing.T) {
	sess := mock.NewSession()
	sess.AddElement("button-LOGIN").Enabled = false
	p := fastPage(sess)

	err := p.Click(AccessibilityID("button-LOGIN"), p.Wait)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotInteractable))
	assert.Empty(t, sess.Clicks)
}

func TestClickMissingElement(t *testing.T) {
	sess := mock.NewSession()
	p := fastPage(sess)

	err := p.Click(AccessibilityID("gone"), p.Wait)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrElementNotFound))
}

func TestTypeTextClearsFirst(t *testing.T) {
	sess := mock.NewSession()
	sess.AddElement("input-email").Text = "stale@example.com"
	p := fastPage(sess)

	require.NoError(t, p.TypeText(AccessibilityID("input-email"), "test@example.com", p.Wait))

	assert.Equal(t, []string{"input-email"}, sess.Cleared)
	assert.Equal(t, []string{"test@example.com"}, sess.Typed["input-email"])

	text, err := sess.GetElementText("input-email")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", text)
}

func TestTypeTextDisabledElement(t *testing.T) {
	sess := mock.NewSession()
	sess.AddElement("input-email").Enabled = false
	p := fastPage(sess)

	err := p.TypeText(AccessibilityID("input-email"), "x", p.Wait)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotInteractable))
	assert.Empty(t, sess.Cleared)
}

func TestIsVisible(t *testing.T) {
	sess := mock.NewSession()
	sess.AddElement("Home-screen")
	p := fastPage(sess)

	assert.True(t, p.IsVisible(AccessibilityID("Home-screen"), p.ShortWait))
}

func TestIsVisibleHiddenElement(t *testing.T) {
	sess := mock.NewSession()
	sess.AddElement("Home-screen").Displayed = false
	p := fastPage(sess)

	assert.False(t, p.IsVisible(AccessibilityID("Home-screen"), p.ShortWait))
}

func TestIsVisibleMissingElementDoesNotFail(t *testing.T) {
	sess := mock.NewSession()
	p := fastPage(sess)

	// A probe on an absent element returns false without error.
	assert.False(t, p.IsVisible(AccessibilityID("missing"), p.ShortWait))
}

func TestText(t *testing.T) {
	sess := mock.NewSession()
	sess.AddElement("android:id/alertTitle").Text = "Success"
	p := fastPage(sess)

	text, err := p.Text(ID("android:id/alertTitle"), p.ShortWait)
	require.NoError(t, err)
	assert.Equal(t, "Success", text)
}

func TestAttribute(t *testing.T) {
	sess := mock.NewSession()
	sess.AddElement("switch").Attrs = map[string]string{"checked": "true"}
	p := fastPage(sess)

	val, err := p.Attribute(AccessibilityID("switch"), "checked", p.ShortWait)
	require.NoError(t, err)
	assert.Equal(t, "true", val)
}

func TestLocatorString(t *testing.T) {
	assert.Equal(t, "accessibility id=input-email", AccessibilityID("input-email").String())
	assert.Equal(t, "id=android:id/message", ID("android:id/message").String())
	assert.Equal(t, "xpath=//x", XPath("//x").String())
}
