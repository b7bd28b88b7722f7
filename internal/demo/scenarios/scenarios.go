// Package scenarios contains built-in demo scenarios for tally.
package scenarios

import "github.com/zhubert/tally/internal/demo"

// All returns every built-in scenario.
func All() []*demo.Scenario {
	return []*demo.Scenario{Overview, Actions}
}

// Get returns the scenario named name, or nil.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
