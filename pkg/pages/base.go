package pages

import (
	"time"

	"github.com/devicelab-dev/appiumqa/pkg/core"
	"github.com/devicelab-dev/appiumqa/pkg/logger"
)

// Session is the element-level surface of a live automation session.
// *appium.Client satisfies it.
type Session interface {
	FindElement(strategy, value string) (string, error)
	ClickElement(elementID string) error
	ClearElement(elementID string) error
	SendKeysToElement(elementID, text string) error
	GetElementText(elementID string) (string, error)
	GetElementAttribute(elementID, name string) (string, error)
	IsElementDisplayed(elementID string) (bool, error)
	IsElementEnabled(elementID string) (bool, error)
	Back() error
}

// Wait bounds. Long waits are for actions, the short wait for visibility
// probes used in assertions.
const (
	DefaultWaitTimeout = 15 * time.Second
	ShortWaitTimeout   = 5 * time.Second
	pollInterval       = 200 * time.Millisecond
)

// BasePage wraps a session and centralizes the explicit-wait discipline
// shared by every page object. No fixed sleeps: every lookup is a bounded
// poll that returns as soon as the element appears.
type BasePage struct {
	Session   Session
	Wait      time.Duration
	ShortWait time.Duration

	poll time.Duration
}

// NewBasePage wraps a session with the default wait bounds.
func NewBasePage(s Session) BasePage {
	return BasePage{
		Session:   s,
		Wait:      DefaultWaitTimeout,
		ShortWait: ShortWaitTimeout,
		poll:      pollInterval,
	}
}

// Find polls for the element until it is present or the bound elapses.
// On timeout it fails with an element_not_found error carrying the locator.
func (p *BasePage) Find(loc Locator, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = p.Wait
	}

	deadline := time.Now().Add(timeout)
	for {
		id, err := p.Session.FindElement(string(loc.Strategy), loc.Value)
		if err == nil && id != "" {
			return id, nil
		}

		if time.Now().After(deadline) {
			notFound := core.ErrElementNotFound.WithDetails(map[string]interface{}{
				"locator": loc.String(),
				"timeout": timeout.String(),
			})
			if err != nil {
				return "", notFound.WithCause(err)
			}
			return "", notFound
		}
		time.Sleep(p.poll)
	}
}

// Click waits for the element and clicks it. An element that is present
// but disabled fails with element_not_interactable.
func (p *BasePage) Click(loc Locator, timeout time.Duration) error {
	id, err := p.Find(loc, timeout)
	if err != nil {
		return err
	}

	enabled, err := p.Session.IsElementEnabled(id)
	if err == nil && !enabled {
		return core.ErrNotInteractable.WithDetails(map[string]interface{}{
			"locator": loc.String(),
		})
	}

	logger.Debug("click %s", loc)
	return p.Session.ClickElement(id)
}

// TypeText waits for the element, clears it, and types the text.
func (p *BasePage) TypeText(loc Locator, text string, timeout time.Duration) error {
	id, err := p.Find(loc, timeout)
	if err != nil {
		return err
	}

	enabled, err := p.Session.IsElementEnabled(id)
	if err == nil && !enabled {
		return core.ErrNotInteractable.WithDetails(map[string]interface{}{
			"locator": loc.String(),
		})
	}

	if err := p.Session.ClearElement(id); err != nil {
		return err
	}
	logger.Debug("type %q into %s", text, loc)
	return p.Session.SendKeysToElement(id, text)
}

// IsVisible is a non-failing probe: true if the element becomes visible
// within the bound, false otherwise. Used by assertions, never as a
// precondition for actions.
func (p *BasePage) IsVisible(loc Locator, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = p.ShortWait
	}

	deadline := time.Now().Add(timeout)
	for {
		id, err := p.Session.FindElement(string(loc.Strategy), loc.Value)
		if err == nil && id != "" {
			displayed, derr := p.Session.IsElementDisplayed(id)
			if derr == nil && displayed {
				return true
			}
		}

		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(p.poll)
	}
}

// Text waits for the element and returns its text.
func (p *BasePage) Text(loc Locator, timeout time.Duration) (string, error) {
	id, err := p.Find(loc, timeout)
	if err != nil {
		return "", err
	}
	return p.Session.GetElementText(id)
}

// Attribute waits for the element and returns an attribute value.
func (p *BasePage) Attribute(loc Locator, name string, timeout time.Duration) (string, error) {
	id, err := p.Find(loc, timeout)
	if err != nil {
		return "", err
	}
	return p.Session.GetElementAttribute(id, name)
}

// Back navigates back using the device back button.
func (p *BasePage) Back() error {
	return p.Session.Back()
}
