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

// navBarSession sets a mock session showing the bottom navigation bar.
func navBarSession() *mock.Session {
	sess := mock.NewSession()
	for _, tab := range []string{TabHome, TabWebview, TabLogin, TabForms, TabSwipe, TabDrag} {
		sess.AddElement(tab)
	}
	return sess
}

func fastHomePage(sess *mock.Session) *HomePage {
	p := NewHomePage(sess)
	p.BasePage = fastPage(sess)
	p.screenProbe = 20 * time.Millisecond
	return p
}

func TestNavigateTo(t *testing.T) {
	sess := navBarSession()
	p := fastHomePage(sess)

	require.NoError(t, p.NavigateTo(TabForms))
	require.NoError(t, p.NavigateTo(TabLogin))

	assert.Equal(t, []string{TabForms, TabLogin}, sess.Clicks)
}

func TestNavigateToUnknownTab(t *testing.T) {
	sess := navBarSession()
	p := fastHomePage(sess)

	err := p.NavigateTo("Settings")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnknownTab))

	var serr *core.SuiteError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, core.ErrCategoryConfig, serr.Category)
	assert.Equal(t, "Settings", serr.Details["tab"])

	// The session must not be touched for a bad tab name.
	assert.Empty(t, sess.Clicks)
}

func TestHomeScreenProbes(t *testing.T) {
	sess := navBarSession()
	p := fastHomePage(sess)

	assert.True(t, p.IsHomeScreenDisplayed())
	assert.True(t, p.IsNavigationBarVisible())
	assert.True(t, p.IsAppLaunched())
	assert.False(t, p.IsFormsScreenDisplayed())
	assert.False(t, p.IsWebviewScreenDisplayed())
}

func TestNavigationBarRequiresBothTabs(t *testing.T) {
	sess := navBarSession()
	sess.RemoveElement(TabLogin)
	p := fastHomePage(sess)

	assert.False(t, p.IsNavigationBarVisible())
}

func TestFormsScreen(t *testing.T) {
	sess := navBarSession()
	sess.AddElement("text-input")
	sess.AddElement("switch")
	sess.AddElement("Dropdown")
	p := fastHomePage(sess)

	assert.True(t, p.IsFormsScreenDisplayed())
	assert.True(t, p.IsFormsSwitchVisible())
	assert.True(t, p.IsFormsDropdownVisible())

	require.NoError(t, p.EnterFormsText("Test Input"))
	text, err := p.FormsInputText()
	require.NoError(t, err)
	assert.Equal(t, "Test Input", text)

	require.NoError(t, p.ToggleFormsSwitch())
	assert.Contains(t, sess.Clicks, "switch")
}

func TestCurrentScreen(t *testing.T) {
	tests := []struct {
		name     string
		elements []string
		want     string
	}{
		{"home", []string{"Home-screen"}, TabHome},
		{"forms", []string{"text-input"}, TabForms},
		{"webview", []string{"URL input field"}, TabWebview},
		{"unknown", nil, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := mock.NewSession()
			for _, el := range tt.elements {
				sess.AddElement(el)
			}
			p := fastHomePage(sess)
			assert.Equal(t, tt.want, p.CurrentScreen())
		})
	}
}
