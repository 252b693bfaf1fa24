// Package mock provides an in-memory session for testing page objects and
// the fixture runner without a device or an Appium server.
package mock

import (
	"fmt"
)

// Element is one fake UI element, keyed by its selector value.
type Element struct {
	Text      string
	Displayed bool
	Enabled   bool
	Attrs     map[string]string
}

// Session is a scriptable in-memory implementation of pages.Session plus
// the screenshot/close surface the suite runner needs.
type Session struct {
	elements map[string]*Element

	// Recorded interactions, in call order.
	Clicks  []string
	Typed   map[string][]string
	Cleared []string

	// Scripted behavior.
	ScreenshotPNG []byte
	ScreenshotErr error
	DisconnectErr error
	OnClick       func(selector string) // runs after a click is recorded

	// Observed lifecycle.
	Disconnected    bool
	ScreenshotCalls int
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		elements: make(map[string]*Element),
		Typed:    make(map[string][]string),
	}
}

// AddElement registers a visible, enabled element under the selector value.
func (s *Session) AddElement(selector string) *Element {
	el := &Element{Displayed: true, Enabled: true}
	s.elements[selector] = el
	return el
}

// RemoveElement makes the selector stop matching.
func (s *Session) RemoveElement(selector string) {
	delete(s.elements, selector)
}

// Element IDs double as selector values so recorded interactions are easy
// to assert on.

// FindElement implements pages.Session.
func (s *Session) FindElement(strategy, value string) (string, error) {
	if _, ok := s.elements[value]; !ok {
		return "", fmt.Errorf("no such element: %s=%s", strategy, value)
	}
	return value, nil
}

// ClickElement implements pages.Session.
func (s *Session) ClickElement(elementID string) error {
	if _, ok := s.elements[elementID]; !ok {
		return fmt.Errorf("stale element: %s", elementID)
	}
	s.Clicks = append(s.Clicks, elementID)
	if s.OnClick != nil {
		s.OnClick(elementID)
	}
	return nil
}

// ClearElement implements pages.Session.
func (s *Session) ClearElement(elementID string) error {
	el, ok := s.elements[elementID]
	if !ok {
		return fmt.Errorf("stale element: %s", elementID)
	}
	el.Text = ""
	s.Cleared = append(s.Cleared, elementID)
	return nil
}

// SendKeysToElement implements pages.Session.
func (s *Session) SendKeysToElement(elementID, text string) error {
	el, ok := s.elements[elementID]
	if !ok {
		return fmt.Errorf("stale element: %s", elementID)
	}
	el.Text += text
	s.Typed[elementID] = append(s.Typed[elementID], text)
	return nil
}

// GetElementText implements pages.Session.
func (s *Session) GetElementText(elementID string) (string, error) {
	el, ok := s.elements[elementID]
	if !ok {
		return "", fmt.Errorf("stale element: %s", elementID)
	}
	return el.Text, nil
}

// GetElementAttribute implements pages.Session.
func (s *Session) GetElementAttribute(elementID, name string) (string, error) {
	el, ok := s.elements[elementID]
	if !ok {
		return "", fmt.Errorf("stale element: %s", elementID)
	}
	return el.Attrs[name], nil
}

// IsElementDisplayed implements pages.Session.
func (s *Session) IsElementDisplayed(elementID string) (bool, error) {
	el, ok := s.elements[elementID]
	if !ok {
		return false, fmt.Errorf("stale element: %s", elementID)
	}
	return el.Displayed, nil
}

// IsElementEnabled implements pages.Session.
func (s *Session) IsElementEnabled(elementID string) (bool, error) {
	el, ok := s.elements[elementID]
	if !ok {
		return false, fmt.Errorf("stale element: %s", elementID)
	}
	return el.Enabled, nil
}

// Back implements pages.Session.
func (s *Session) Back() error {
	return nil
}

// Screenshot returns the scripted PNG data.
func (s *Session) Screenshot() ([]byte, error) {
	s.ScreenshotCalls++
	if s.ScreenshotErr != nil {
		return nil, s.ScreenshotErr
	}
	if s.ScreenshotPNG != nil {
		return s.ScreenshotPNG, nil
	}
	return []byte("mock-png"), nil
}

// Disconnect marks the session closed.
func (s *Session) Disconnect() error {
	s.Disconnected = true
	return s.DisconnectErr
}
