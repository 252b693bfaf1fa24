package pages

import (
	"strings"
	"time"
)

// Login screen locators. Accessibility IDs match the demo app's test IDs;
// the alert locators are the stock Android dialog resource IDs.
var (
	locLoginTab       = AccessibilityID("button-login-container")
	locSignUpTab      = AccessibilityID("button-sign-up-container")
	locEmailInput     = AccessibilityID("input-email")
	locPasswordInput  = AccessibilityID("input-password")
	locRepeatPassword = AccessibilityID("input-repeat-password")
	locLoginButton    = AccessibilityID("button-LOGIN")
	locSignUpButton   = AccessibilityID("button-SIGN UP")

	locEmailError    = XPath(`//android.widget.TextView[contains(@text, 'Please enter a valid email')]`)
	locPasswordError = XPath(`//android.widget.TextView[contains(@text, 'Please enter at least 8 characters')]`)

	locAlertTitle    = ID("android:id/alertTitle")
	locAlertMessage  = ID("android:id/message")
	locAlertOKButton = ID("android:id/button1")
)

// LoginPage drives the Login screen: the login and sign-up forms, their
// validation messages, and the result dialog.
type LoginPage struct {
	BasePage

	// errProbe bounds the wait for inline validation errors, which render
	// immediately or not at all.
	errProbe time.Duration
}

// NewLoginPage builds a LoginPage over the session.
func NewLoginPage(s Session) *LoginPage {
	return &LoginPage{
		BasePage: NewBasePage(s),
		errProbe: 3 * time.Second,
	}
}

// SelectLoginTab switches to the login form.
func (p *LoginPage) SelectLoginTab() error {
	return p.Click(locLoginTab, p.Wait)
}

// SelectSignUpTab switches to the sign-up form.
func (p *LoginPage) SelectSignUpTab() error {
	return p.Click(locSignUpTab, p.Wait)
}

// EnterEmail fills the email field.
func (p *LoginPage) EnterEmail(email string) error {
	return p.TypeText(locEmailInput, email, p.Wait)
}

// EnterPassword fills the password field.
func (p *LoginPage) EnterPassword(password string) error {
	return p.TypeText(locPasswordInput, password, p.Wait)
}

// TapLogin taps the LOGIN button.
func (p *LoginPage) TapLogin() error {
	return p.Click(locLoginButton, p.Wait)
}

// Login performs the complete login flow. It leaves the UI in the
// resulting state and does not assert; assertions live in the scenarios.
func (p *LoginPage) Login(email, password string) error {
	if err := p.EnterEmail(email); err != nil {
		return err
	}
	if err := p.EnterPassword(password); err != nil {
		return err
	}
	return p.TapLogin()
}

// SignUp performs the complete sign-up flow on the sign-up form.
func (p *LoginPage) SignUp(email, password, confirmPassword string) error {
	if err := p.SelectSignUpTab(); err != nil {
		return err
	}
	if err := p.TypeText(locEmailInput, email, p.Wait); err != nil {
		return err
	}
	if err := p.TypeText(locPasswordInput, password, p.Wait); err != nil {
		return err
	}
	if err := p.TypeText(locRepeatPassword, confirmPassword, p.Wait); err != nil {
		return err
	}
	return p.Click(locSignUpButton, p.Wait)
}

// Probes

// IsLoginScreenDisplayed reports whether the login form is visible.
func (p *LoginPage) IsLoginScreenDisplayed() bool {
	return p.IsVisible(locEmailInput, p.ShortWait)
}

// IsEmailInputVisible reports whether the email field is visible.
func (p *LoginPage) IsEmailInputVisible() bool {
	return p.IsVisible(locEmailInput, p.ShortWait)
}

// IsPasswordInputVisible reports whether the password field is visible.
func (p *LoginPage) IsPasswordInputVisible() bool {
	return p.IsVisible(locPasswordInput, p.ShortWait)
}

// IsLoginButtonVisible reports whether the LOGIN button is visible.
func (p *LoginPage) IsLoginButtonVisible() bool {
	return p.IsVisible(locLoginButton, p.ShortWait)
}

// IsEmailErrorDisplayed reports whether the email validation error is shown.
func (p *LoginPage) IsEmailErrorDisplayed() bool {
	return p.IsVisible(locEmailError, p.errProbe)
}

// IsPasswordErrorDisplayed reports whether the password validation error
// is shown.
func (p *LoginPage) IsPasswordErrorDisplayed() bool {
	return p.IsVisible(locPasswordError, p.errProbe)
}

// EmailErrorMessage returns the email validation error text.
func (p *LoginPage) EmailErrorMessage() (string, error) {
	return p.Text(locEmailError, p.ShortWait)
}

// PasswordErrorMessage returns the password validation error text.
func (p *LoginPage) PasswordErrorMessage() (string, error) {
	return p.Text(locPasswordError, p.ShortWait)
}

// Alert handling

// IsAlertDisplayed reports whether the result dialog is shown.
func (p *LoginPage) IsAlertDisplayed() bool {
	return p.IsVisible(locAlertTitle, p.ShortWait)
}

// AlertTitle returns the dialog title.
func (p *LoginPage) AlertTitle() (string, error) {
	return p.Text(locAlertTitle, p.ShortWait)
}

// AlertMessage returns the dialog message.
func (p *LoginPage) AlertMessage() (string, error) {
	return p.Text(locAlertMessage, p.ShortWait)
}

// DismissAlert closes the dialog via its OK button.
func (p *LoginPage) DismissAlert() error {
	return p.Click(locAlertOKButton, p.ShortWait)
}

// LoginSucceeded reports whether a success dialog is showing. The demo app
// confirms a valid login with a dialog titled "Success".
func (p *LoginPage) LoginSucceeded() bool {
	if !p.IsAlertDisplayed() {
		return false
	}
	title, err := p.AlertTitle()
	if err != nil {
		return false
	}
	return strings.Contains(title, "Success")
}
