package pages

import (
	"time"

	"github.com/devicelab-dev/appiumqa/pkg/core"
)

// Navigation tab names on the bottom bar.
const (
	TabHome    = "Home"
	TabWebview = "Webview"
	TabLogin   = "Login"
	TabForms   = "Forms"
	TabSwipe   = "Swipe"
	TabDrag    = "Drag"
)

// Home/navigation locators.
var (
	locNavHome    = AccessibilityID(TabHome)
	locNavWebview = AccessibilityID(TabWebview)
	locNavLogin   = AccessibilityID(TabLogin)
	locNavForms   = AccessibilityID(TabForms)
	locNavSwipe   = AccessibilityID(TabSwipe)
	locNavDrag    = AccessibilityID(TabDrag)

	locHomeLogo = AccessibilityID("Home-screen")

	locFormsInput    = AccessibilityID("text-input")
	locFormsSwitch   = AccessibilityID("switch")
	locFormsDropdown = AccessibilityID("Dropdown")

	locWebviewURLInput = AccessibilityID("URL input field")
)

// navTabs maps tab names to their bottom-bar locators.
var navTabs = map[string]Locator{
	TabHome:    locNavHome,
	TabWebview: locNavWebview,
	TabLogin:   locNavLogin,
	TabForms:   locNavForms,
	TabSwipe:   locNavSwipe,
	TabDrag:    locNavDrag,
}

// HomePage drives the home screen, bottom-bar navigation, and the Forms
// and Webview screens reachable from it.
type HomePage struct {
	BasePage

	// screenProbe bounds the per-screen checks in CurrentScreen.
	screenProbe time.Duration
}

// NewHomePage builds a HomePage over the session.
func NewHomePage(s Session) *HomePage {
	return &HomePage{
		BasePage:    NewBasePage(s),
		screenProbe: 2 * time.Second,
	}
}

// NavigateTo taps the named bottom-bar tab. An unrecognized tab name fails
// with unknown_tab before touching the session.
func (p *HomePage) NavigateTo(tab string) error {
	loc, ok := navTabs[tab]
	if !ok {
		return core.ErrUnknownTab.WithDetails(map[string]interface{}{
			"tab": tab,
		})
	}
	return p.Click(loc, p.Wait)
}

// Probes

// IsHomeScreenDisplayed reports whether the home screen is visible.
func (p *HomePage) IsHomeScreenDisplayed() bool {
	return p.IsVisible(locNavHome, p.ShortWait)
}

// IsFormsScreenDisplayed reports whether the forms screen is visible.
func (p *HomePage) IsFormsScreenDisplayed() bool {
	return p.IsVisible(locFormsInput, p.ShortWait)
}

// IsFormsSwitchVisible reports whether the forms switch is visible.
func (p *HomePage) IsFormsSwitchVisible() bool {
	return p.IsVisible(locFormsSwitch, p.ShortWait)
}

// IsFormsDropdownVisible reports whether the forms dropdown is visible.
func (p *HomePage) IsFormsDropdownVisible() bool {
	return p.IsVisible(locFormsDropdown, p.ShortWait)
}

// IsWebviewScreenDisplayed reports whether the webview screen is visible.
func (p *HomePage) IsWebviewScreenDisplayed() bool {
	return p.IsVisible(locWebviewURLInput, p.ShortWait)
}

// IsNavigationBarVisible reports whether the bottom navigation bar is
// visible. Checks two tabs so a lone matching element elsewhere does not
// count.
func (p *HomePage) IsNavigationBarVisible() bool {
	return p.IsVisible(locNavHome, p.ShortWait) && p.IsVisible(locNavLogin, p.ShortWait)
}

// IsAppLaunched reports whether the app launched into a usable state.
func (p *HomePage) IsAppLaunched() bool {
	return p.IsNavigationBarVisible()
}

// Forms screen actions

// EnterFormsText fills the forms input field.
func (p *HomePage) EnterFormsText(text string) error {
	return p.TypeText(locFormsInput, text, p.Wait)
}

// ToggleFormsSwitch toggles the switch on the forms screen.
func (p *HomePage) ToggleFormsSwitch() error {
	return p.Click(locFormsSwitch, p.Wait)
}

// FormsInputText reads back the forms input field.
func (p *HomePage) FormsInputText() (string, error) {
	return p.Text(locFormsInput, p.ShortWait)
}

// CurrentScreen identifies the screen currently displayed by probing each
// screen's characteristic element with a short bound.
func (p *HomePage) CurrentScreen() string {
	switch {
	case p.IsVisible(locHomeLogo, p.screenProbe):
		return TabHome
	case p.IsVisible(locFormsInput, p.screenProbe):
		return TabForms
	case p.IsVisible(locWebviewURLInput, p.screenProbe):
		return TabWebview
	default:
		return "Unknown"
	}
}
