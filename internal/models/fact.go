// Package models defines the data model shared by the solver, validator and
// auto-solver: facts, inference rules, composable blocks, derivation traces
// and validation results.
package models

import (
	"fmt"
	"sort"
)

// Fact is a named boolean requirement or architecture decision, e.g.
// {Name: "offline", Value: true}. Facts are immutable once set: the fact
// store only ever adds facts, it never flips an existing value.
type Fact struct {
	Name  string `json:"name" yaml:"name"`
	Value bool   `json:"value" yaml:"value"`
}

// String returns the fact in "name=value" form.
func (f Fact) String() string {
	return fmt.Sprintf("%s=%t", f.Name, f.Value)
}

// FactsFromMap converts a requirements map into a sorted fact slice.
// Sorting keeps downstream traces deterministic regardless of map iteration.
func FactsFromMap(m map[string]bool) []Fact {
	facts := make([]Fact, 0, len(m))
	for name, value := range m {
		facts = append(facts, Fact{Name: name, Value: value})
	}
	sort.Slice(facts, func(i, j int) bool { return facts[i].Name < facts[j].Name })
	return facts
}
