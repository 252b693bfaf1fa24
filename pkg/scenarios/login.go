// Package scenarios registers the test cases: each one arranges page
// objects over the fixture-provided session, acts through composed page
// actions, and asserts on the resulting visible state.
package scenarios

import (
	"github.com/devicelab-dev/appiumqa/pkg/pages"
	"github.com/devicelab-dev/appiumqa/pkg/suite"
)

// Test data for the demo app. The app validates format, not stored
// credentials, so "invalid password" keeps the user on the login screen.
const (
	validEmail         = "test@example.com"
	validPassword      = "Password123"
	invalidPassword    = "wrongpassword"
	invalidEmailFormat = "invalidemail"
	shortPassword      = "abc"
)

func init() {
	suite.Register(suite.Case{
		Name:    "app_launch",
		Markers: []string{suite.MarkerSmoke, suite.MarkerLogin},
		Run:     appLaunch,
	})
	suite.Register(suite.Case{
		Name:    "login_valid_credentials",
		Markers: []string{suite.MarkerSmoke, suite.MarkerLogin},
		Run:     loginValidCredentials,
	})
	suite.Register(suite.Case{
		Name:    "login_invalid_password",
		Markers: []string{suite.MarkerRegression, suite.MarkerLogin},
		Run:     loginInvalidPassword,
	})
	suite.Register(suite.Case{
		Name:    "login_empty_fields",
		Markers: []string{suite.MarkerRegression, suite.MarkerLogin},
		Run:     loginEmptyFields,
	})
	suite.Register(suite.Case{
		Name:    "login_invalid_email_format",
		Markers: []string{suite.MarkerRegression, suite.MarkerLogin},
		Run:     loginInvalidEmailFormat,
	})
	suite.Register(suite.Case{
		Name:    "login_short_password",
		Markers: []string{suite.MarkerRegression, suite.MarkerLogin},
		Run:     loginShortPassword,
	})
	suite.Register(suite.Case{
		Name:    "login_screen_elements_visible",
		Markers: []string{suite.MarkerRegression, suite.MarkerLogin},
		Run:     loginScreenElementsVisible,
	})
}

// appLaunch verifies the app starts into a usable state. Prerequisite for
// every other UI case.
func appLaunch(c *suite.Context) error {
	return suite.Expect(c.Home.IsAppLaunched(), "navigation bar visible after launch")
}

func loginValidCredentials(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabLogin); err != nil {
		return err
	}
	if err := c.Login.SelectLoginTab(); err != nil {
		return err
	}
	if err := c.Login.Login(validEmail, validPassword); err != nil {
		return err
	}

	if err := suite.Expect(c.Login.IsAlertDisplayed(), "alert displayed after valid login"); err != nil {
		return err
	}
	if err := suite.Expect(c.Login.LoginSucceeded(), "alert reports a successful login"); err != nil {
		return err
	}
	return c.Login.DismissAlert()
}

func loginInvalidPassword(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabLogin); err != nil {
		return err
	}
	if err := c.Login.SelectLoginTab(); err != nil {
		return err
	}
	if err := c.Login.Login(validEmail, invalidPassword); err != nil {
		return err
	}

	return suite.Expect(c.Login.IsLoginScreenDisplayed(), "still on login screen after failed login")
}

func loginEmptyFields(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabLogin); err != nil {
		return err
	}
	if err := c.Login.SelectLoginTab(); err != nil {
		return err
	}
	// Submit without entering anything.
	if err := c.Login.TapLogin(); err != nil {
		return err
	}

	if err := suite.Expect(c.Login.IsEmailErrorDisplayed(), "email validation error shown for empty email"); err != nil {
		return err
	}
	if err := suite.Expect(c.Login.IsPasswordErrorDisplayed(), "password validation error shown for empty password"); err != nil {
		return err
	}
	return suite.Expect(c.Login.IsLoginScreenDisplayed(), "still on login screen with empty fields")
}

func loginInvalidEmailFormat(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabLogin); err != nil {
		return err
	}
	if err := c.Login.SelectLoginTab(); err != nil {
		return err
	}
	if err := c.Login.EnterEmail(invalidEmailFormat); err != nil {
		return err
	}
	// Move focus to trigger validation.
	if err := c.Login.EnterPassword(validPassword); err != nil {
		return err
	}

	return suite.Expect(c.Login.IsEmailErrorDisplayed(), "email validation error shown for bad format")
}

func loginShortPassword(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabLogin); err != nil {
		return err
	}
	if err := c.Login.SelectLoginTab(); err != nil {
		return err
	}
	if err := c.Login.EnterEmail(validEmail); err != nil {
		return err
	}
	if err := c.Login.EnterPassword(shortPassword); err != nil {
		return err
	}
	if err := c.Login.TapLogin(); err != nil {
		return err
	}

	return suite.Expect(c.Login.IsPasswordErrorDisplayed(), "password length error shown for short password")
}

func loginScreenElementsVisible(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabLogin); err != nil {
		return err
	}

	if err := suite.Expect(c.Login.IsLoginScreenDisplayed(), "login screen displayed"); err != nil {
		return err
	}
	if err := suite.Expect(c.Login.IsEmailInputVisible(), "email input visible"); err != nil {
		return err
	}
	if err := suite.Expect(c.Login.IsPasswordInputVisible(), "password input visible"); err != nil {
		return err
	}
	return suite.Expect(c.Login.IsLoginButtonVisible(), "login button visible")
}
