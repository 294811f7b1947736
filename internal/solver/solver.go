// Package solver implements the forward-chaining inference engine that
// derives architecture facts from user requirements.
//
// The engine repeatedly scans the rule set against the current fact store,
// applying every applicable rule, until a full pass adds no new facts. Facts
// are only ever added, never removed or changed, so the computation is
// monotonically non-decreasing over a finite lattice and must terminate in
// at most |fact universe| passes. Because rule application is a pure union
// operation, the final fact set is independent of rule ordering; only the
// trace step ordering depends on it.
package solver

import (
	"fmt"
	"strings"

	"github.com/harrison/blueprint/internal/models"
)

// Solver runs forward-chaining inference over a fixed rule set. The rule set
// is read-only after construction, and Solve keeps all mutable state local
// to the call, so a single Solver may be shared across goroutines.
type Solver struct {
	rules []models.Rule
}

// New creates a Solver over the given rule set. Rule order is preserved; it
// defines the trace step ordering, not the result.
func New(rules []models.Rule) *Solver {
	return &Solver{rules: append([]models.Rule(nil), rules...)}
}

// Solve computes the fixed point of the rule set over the initial facts.
// It returns the full derived fact set (a superset of the initial facts)
// and the derivation trace. Solve never fails: an unsatisfiable rule set
// simply reaches a smaller fixed point.
//
// Facts follow first-value-wins semantics. If the initial facts contain the
// same name twice, the first occurrence is kept; if a rule concludes a
// different value for a fact already present, the conclusion is silently
// dropped and noted in the trace reason.
func (s *Solver) Solve(initial []models.Fact) (map[string]bool, models.Trace) {
	facts := make(map[string]bool, len(initial))
	for _, f := range initial {
		if _, ok := facts[f.Name]; !ok {
			facts[f.Name] = f.Value
		}
	}

	var trace models.Trace
	for pass := 0; ; pass++ {
		fired := false
		for _, rule := range s.rules {
			if !applicable(rule, facts) {
				continue
			}

			var added []string
			var kept []string
			for _, c := range rule.Conclusions {
				existing, present := facts[c.Fact]
				if present {
					if existing != c.Value {
						// First value wins: a later rule never flips a fact.
						kept = append(kept, c.Fact)
					}
					continue
				}
				facts[c.Fact] = c.Value
				added = append(added, c.Fact)
			}

			// A rule only fires (and only appears in the trace) when it
			// introduced at least one absent fact.
			if len(added) == 0 {
				continue
			}
			fired = true

			reason := rule.Reason()
			if len(kept) > 0 {
				reason = fmt.Sprintf("%s (existing value kept for %s)", reason, strings.Join(kept, ", "))
			}
			trace = trace.Append(models.Step{
				Type:   models.StepRule,
				ID:     rule.ID,
				Added:  added,
				Reason: reason,
			})
		}
		if !fired {
			break
		}
	}

	return facts, trace
}

// applicable reports whether every condition of the rule holds in the
// current fact store. Absent facts satisfy no condition.
func applicable(rule models.Rule, facts map[string]bool) bool {
	for _, cond := range rule.Conditions {
		value, ok := facts[cond.Fact]
		if !ok || value != cond.Value {
			return false
		}
	}
	return true
}
