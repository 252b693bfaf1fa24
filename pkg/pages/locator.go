// Package pages implements the page object layer: per-screen locators and
// composed actions over a live automation session. All element waits funnel
// through BasePage so no page hand-rolls its own polling loop.
package pages

import "fmt"

// Strategy is a WebDriver locator strategy.
type Strategy string

// Locator strategies used by the demo app's pages.
const (
	ByAccessibilityID Strategy = "accessibility id"
	ByID              Strategy = "id"
	ByXPath           Strategy = "xpath"
)

// Locator identifies a UI element as a (strategy, selector) pair.
// Locators are static per page and never mutated.
type Locator struct {
	Strategy Strategy
	Value    string
}

// AccessibilityID builds an accessibility-id locator.
func AccessibilityID(value string) Locator {
	return Locator{Strategy: ByAccessibilityID, Value: value}
}

// ID builds a resource-id locator.
func ID(value string) Locator {
	return Locator{Strategy: ByID, Value: value}
}

// XPath builds an xpath locator.
func XPath(value string) Locator {
	return Locator{Strategy: ByXPath, Value: value}
}

// String describes the locator for errors and logs.
func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Strategy, l.Value)
}
