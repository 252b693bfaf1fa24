// Package caps handles the capability configuration describing the target
// device, app, and automation driver for a session.
package caps

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/appiumqa/pkg/core"
)

// Capabilities describes one device/app target. Loaded once per run and
// never mutated afterwards.
type Capabilities struct {
	PlatformName         string `yaml:"platformName"`
	PlatformVersion      string `yaml:"platformVersion"`
	DeviceName           string `yaml:"deviceName"`
	AutomationName       string `yaml:"automationName"`
	App                  string `yaml:"app"`
	AppPackage           string `yaml:"appPackage"`
	AppActivity          string `yaml:"appActivity"`
	NoReset              bool   `yaml:"noReset"`
	FullReset            bool   `yaml:"fullReset"`
	NewCommandTimeout    int    `yaml:"newCommandTimeout"`
	AutoGrantPermissions bool   `yaml:"autoGrantPermissions"`
}

// Default returns the capabilities for the demo app on a local emulator.
func Default() *Capabilities {
	return &Capabilities{
		PlatformName:         "Android",
		PlatformVersion:      "13",
		DeviceName:           "emulator-5554",
		AutomationName:       "UiAutomator2",
		AppPackage:           "com.wdiodemoapp",
		AppActivity:          "com.wdiodemoapp.MainActivity",
		NewCommandTimeout:    300,
		AutoGrantPermissions: true,
	}
}

// Load reads capabilities from a YAML file.
func Load(path string) (*Capabilities, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided caps file
	if err != nil {
		return nil, err
	}

	var c Capabilities
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, core.ErrInvalidCapabilities.WithCause(err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the fields the session provider depends on are set.
func (c *Capabilities) Validate() error {
	var missing []string
	if c.PlatformName == "" {
		missing = append(missing, "platformName")
	}
	if c.DeviceName == "" {
		missing = append(missing, "deviceName")
	}
	if c.AutomationName == "" {
		missing = append(missing, "automationName")
	}
	if c.App == "" && c.AppPackage == "" {
		missing = append(missing, "app or appPackage")
	}
	if len(missing) > 0 {
		return core.ErrInvalidCapabilities.WithDetails(map[string]interface{}{
			"missing": missing,
		})
	}
	return nil
}

// ToW3C converts the capabilities to the W3C alwaysMatch map. Non-standard
// keys carry the appium: vendor prefix.
func (c *Capabilities) ToW3C() map[string]interface{} {
	m := map[string]interface{}{
		"platformName":                c.PlatformName,
		"appium:automationName":       c.AutomationName,
		"appium:deviceName":           c.DeviceName,
		"appium:noReset":              c.NoReset,
		"appium:fullReset":            c.FullReset,
		"appium:autoGrantPermissions": c.AutoGrantPermissions,
	}
	if c.PlatformVersion != "" {
		m["appium:platformVersion"] = c.PlatformVersion
	}
	if c.App != "" {
		m["appium:app"] = c.App
	}
	if c.AppPackage != "" {
		m["appium:appPackage"] = c.AppPackage
	}
	if c.AppActivity != "" {
		m["appium:appActivity"] = c.AppActivity
	}
	if c.NewCommandTimeout > 0 {
		m["appium:newCommandTimeout"] = c.NewCommandTimeout
	}
	return m
}
