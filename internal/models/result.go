package models

import "fmt"

// Conflict records a pair of selected blocks that declare mutual exclusion.
type Conflict struct {
	BlockA string `json:"block_a"`
	BlockB string `json:"block_b"`
	Reason string `json:"reason"`
}

// MissingRequirement records one unsatisfied capability of a selected block.
type MissingRequirement struct {
	BlockID    string `json:"block_id"`
	Capability string `json:"capability"`
}

// String renders the missing requirement the way it is shown to users.
func (m MissingRequirement) String() string {
	return fmt.Sprintf("block %s requires %s, not provided by any selected block", m.BlockID, m.Capability)
}

// Suggestion lists the catalog blocks (in catalog order) whose provides would
// cover a missing capability. Already-selected blocks are excluded.
type Suggestion struct {
	Capability string   `json:"capability"`
	Blocks     []string `json:"blocks"`
}

// Result is the outcome of validating a block selection. Valid is true iff
// Missing and Conflicts are both empty.
type Result struct {
	Valid       bool                 `json:"valid"`
	Conflicts   []Conflict           `json:"conflicts,omitempty"`
	Missing     []MissingRequirement `json:"missing,omitempty"`
	Suggestions []Suggestion         `json:"suggestions,omitempty"`
}

// SuggestionsFor returns the suggested provider blocks for a capability,
// or nil when the catalog has none.
func (r Result) SuggestionsFor(capability string) []string {
	for _, s := range r.Suggestions {
		if s.Capability == capability {
			return s.Blocks
		}
	}
	return nil
}

// Derivation is the full output of an architecture derivation: the derived
// fact set, the selected blocks and the trace explaining both. It is the
// unit recorded in the history store and rendered by the CLI.
type Derivation struct {
	Requirements map[string]bool `json:"requirements"`
	Facts        map[string]bool `json:"facts"`
	Blocks       []string        `json:"blocks"`
	Trace        Trace           `json:"trace"`
}
