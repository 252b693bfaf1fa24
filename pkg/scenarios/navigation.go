package scenarios

import (
	"github.com/devicelab-dev/appiumqa/pkg/pages"
	"github.com/devicelab-dev/appiumqa/pkg/suite"
)

func init() {
	suite.Register(suite.Case{
		Name:    "navigate_to_login_screen",
		Markers: []string{suite.MarkerSmoke, suite.MarkerNavigation},
		Run:     navigateToLoginScreen,
	})
	suite.Register(suite.Case{
		Name:    "navigate_to_forms_screen",
		Markers: []string{suite.MarkerSmoke, suite.MarkerNavigation},
		Run:     navigateToFormsScreen,
	})
	suite.Register(suite.Case{
		Name:    "navigate_to_webview_screen",
		Markers: []string{suite.MarkerRegression, suite.MarkerNavigation},
		Run:     navigateToWebviewScreen,
	})
	suite.Register(suite.Case{
		Name:    "navigate_back_to_home",
		Markers: []string{suite.MarkerRegression, suite.MarkerNavigation},
		Run:     navigateBackToHome,
	})
	suite.Register(suite.Case{
		Name:    "navigation_bar_always_visible",
		Markers: []string{suite.MarkerRegression, suite.MarkerNavigation},
		Run:     navigationBarAlwaysVisible,
	})
	suite.Register(suite.Case{
		Name:    "sequential_navigation",
		Markers: []string{suite.MarkerRegression, suite.MarkerNavigation},
		Run:     sequentialNavigation,
	})
	suite.Register(suite.Case{
		Name:    "forms_input_interaction",
		Markers: []string{suite.MarkerRegression, suite.MarkerNavigation},
		Run:     formsInputInteraction,
	})
}

func navigateToLoginScreen(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabLogin); err != nil {
		return err
	}

	if err := suite.Expect(c.Login.IsLoginScreenDisplayed(), "login screen displayed after navigation"); err != nil {
		return err
	}
	if err := suite.Expect(c.Login.IsEmailInputVisible(), "email input visible on login screen"); err != nil {
		return err
	}
	return suite.Expect(c.Login.IsPasswordInputVisible(), "password input visible on login screen")
}

func navigateToFormsScreen(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabForms); err != nil {
		return err
	}

	if err := suite.Expect(c.Home.IsFormsScreenDisplayed(), "forms screen displayed after navigation"); err != nil {
		return err
	}
	if err := suite.Expect(c.Home.IsFormsSwitchVisible(), "forms switch visible"); err != nil {
		return err
	}
	return suite.Expect(c.Home.IsFormsDropdownVisible(), "forms dropdown visible")
}

func navigateToWebviewScreen(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabWebview); err != nil {
		return err
	}

	return suite.Expect(c.Home.IsWebviewScreenDisplayed(), "webview screen displayed after navigation")
}

func navigateBackToHome(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabLogin); err != nil {
		return err
	}
	if err := c.Home.NavigateTo(pages.TabHome); err != nil {
		return err
	}

	return suite.Expect(c.Home.IsHomeScreenDisplayed(), "home screen displayed after navigating back")
}

func navigationBarAlwaysVisible(c *suite.Context) error {
	if err := suite.Expect(c.Home.IsNavigationBarVisible(), "navigation bar visible on home screen"); err != nil {
		return err
	}

	if err := c.Home.NavigateTo(pages.TabLogin); err != nil {
		return err
	}
	if err := suite.Expect(c.Home.IsNavigationBarVisible(), "navigation bar visible on login screen"); err != nil {
		return err
	}

	if err := c.Home.NavigateTo(pages.TabForms); err != nil {
		return err
	}
	return suite.Expect(c.Home.IsNavigationBarVisible(), "navigation bar visible on forms screen")
}

// sequentialNavigation walks Home -> Login -> Forms -> Webview -> Home and
// checks each screen on arrival.
func sequentialNavigation(c *suite.Context) error {
	if err := c.Home.NavigateTo(pages.TabLogin); err != nil {
		return err
	}
	if err := suite.Expect(c.Login.IsLoginScreenDisplayed(), "login screen displayed"); err != nil {
		return err
	}

	if err := c.Home.NavigateTo(pages.TabForms); err != nil {
		return err
	}
	if err := suite.Expect(c.Home.IsFormsScreenDisplayed(), "forms screen displayed"); err != nil {
		return err
	}

	if err := c.Home.NavigateTo(pages.TabWebview); err != nil {
		return err
	}
	if err := suite.Expect(c.Home.IsWebviewScreenDisplayed(), "webview screen displayed"); err != nil {
		return err
	}

	if err := c.Home.NavigateTo(pages.TabHome); err != nil {
		return err
	}
	return suite.Expect(c.Home.IsHomeScreenDisplayed(), "home screen displayed")
}

func formsInputInteraction(c *suite.Context) error {
	const testText = "Test Input"

	if err := c.Home.NavigateTo(pages.TabForms); err != nil {
		return err
	}
	if err := c.Home.EnterFormsText(testText); err != nil {
		return err
	}

	return suite.Expect(c.Home.IsFormsScreenDisplayed(), "still on forms screen after input")
}
