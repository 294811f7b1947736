package catalog

import "sort"

// Scenarios are named requirement templates for common application shapes.
// They seed the initial fact set; CLI flags may override individual values.
var scenarios = map[string]map[string]bool{
	"simple_crud": {
		"multi_user": false,
		"offline":    false,
		"realtime":   false,
	},
	"team_app": {
		"multi_user":     true,
		"shared_content": true,
		"offline":        false,
		"realtime":       false,
	},
	"offline_first": {
		"offline":    true,
		"multi_user": false,
	},
	"collaborative": {
		"multi_user":     true,
		"realtime":       true,
		"shared_content": true,
	},
	"offline_collaborative": {
		"multi_user":     true,
		"realtime":       true,
		"offline":        true,
		"shared_content": true,
	},
}

// Scenario returns the requirement template for a named scenario. The
// returned map is a copy; callers may mutate it freely.
func Scenario(name string) (map[string]bool, bool) {
	template, ok := scenarios[name]
	if !ok {
		return nil, false
	}
	reqs := make(map[string]bool, len(template))
	for k, v := range template {
		reqs[k] = v
	}
	return reqs, true
}

// ScenarioNames returns all scenario names in sorted order.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
