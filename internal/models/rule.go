package models

import (
	"fmt"
	"strings"
)

// Condition is a single (fact name, required value) pair. All of a rule's
// conditions must hold in the fact store for the rule to be applicable.
type Condition struct {
	Fact  string `json:"fact" yaml:"fact"`
	Value bool   `json:"value" yaml:"value"`
}

// Conclusion is a single (fact name, value) pair added to the fact store
// when a rule fires.
type Conclusion struct {
	Fact  string `json:"fact" yaml:"fact"`
	Value bool   `json:"value" yaml:"value"`
}

// Rule is a forward-chaining inference rule: when every condition is
// satisfied, its conclusions are added to the fact store. Rules are static
// configuration, validated once at load time and never mutated afterwards.
type Rule struct {
	ID          string       `json:"id" yaml:"id"`
	Conditions  []Condition  `json:"conditions" yaml:"conditions"`
	Conclusions []Conclusion `json:"conclusions" yaml:"conclusions"`
}

// Validate checks structural invariants on a single rule:
//   - the ID is non-empty (required for trace entries)
//   - at least one conclusion exists (a rule that derives nothing is dead config)
//   - no conclusion references one of the rule's own condition facts, which
//     would make the rule fire on its own output
func (r Rule) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("rule has empty id")
	}
	if len(r.Conclusions) == 0 {
		return fmt.Errorf("rule %s: no conclusions", r.ID)
	}
	conditionFacts := make(map[string]bool, len(r.Conditions))
	for _, c := range r.Conditions {
		if strings.TrimSpace(c.Fact) == "" {
			return fmt.Errorf("rule %s: condition with empty fact name", r.ID)
		}
		conditionFacts[c.Fact] = true
	}
	for _, c := range r.Conclusions {
		if strings.TrimSpace(c.Fact) == "" {
			return fmt.Errorf("rule %s: conclusion with empty fact name", r.ID)
		}
		if conditionFacts[c.Fact] {
			return fmt.Errorf("rule %s: conclusion %q references its own condition", r.ID, c.Fact)
		}
	}
	return nil
}

// Reason renders a human-readable justification of the rule firing,
// e.g. "offline=true + multi_user=true".
func (r Rule) Reason() string {
	if len(r.Conditions) == 0 {
		return "unconditional"
	}
	parts := make([]string, 0, len(r.Conditions))
	for _, c := range r.Conditions {
		parts = append(parts, fmt.Sprintf("%s=%t", c.Fact, c.Value))
	}
	return strings.Join(parts, " + ")
}
