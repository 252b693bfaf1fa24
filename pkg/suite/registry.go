// Package suite holds the case registry and the fixture runner: per-case
// session lifecycle, failure screenshots, and result aggregation.
package suite

import (
	"sort"

	"github.com/samber/lo"
)

// Markers recognized by the CLI.
const (
	MarkerSmoke      = "smoke"
	MarkerRegression = "regression"
	MarkerLogin      = "login"
	MarkerNavigation = "navigation"
	MarkerAPI        = "api"
)

// Case is one registered test scenario. Cases are independent: no case
// shares session state or ordering with another.
type Case struct {
	Name    string
	Markers []string
	Run     func(*Context) error

	// NoSession cases run without opening a device session (API checks).
	NoSession bool
}

var registry []Case

// Register adds a case to the registry. Called from scenario package
// init functions.
func Register(c Case) {
	registry = append(registry, c)
}

// Cases returns all registered cases, sorted by name for stable runs.
func Cases() []Case {
	out := make([]Case, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FilterByMarkers keeps cases carrying at least one requested marker.
// An empty request selects everything.
func FilterByMarkers(cases []Case, markers []string) []Case {
	if len(markers) == 0 {
		return cases
	}
	return lo.Filter(cases, func(c Case, _ int) bool {
		return lo.Some(c.Markers, markers)
	})
}
