package models

import "fmt"

// UnsatisfiableError is returned by the auto-solver when a required capability
// is provided by no block in the catalog (or only by blocks that are already
// selected and cannot satisfy their own requirement).
type UnsatisfiableError struct {
	Capability string
	BlockID    string // the block whose requirement could not be met
}

func (e *UnsatisfiableError) Error() string {
	if e.BlockID != "" {
		return fmt.Sprintf("unsatisfiable requirement: no catalog block provides %q (needed by %s)", e.Capability, e.BlockID)
	}
	return fmt.Sprintf("unsatisfiable requirement: no catalog block provides %q", e.Capability)
}

// ConflictError is returned by the auto-solver when two required blocks are
// mutually incompatible. The solver reports the pair rather than guessing
// which block to drop; resolving the conflict is a value judgment left to
// the caller.
type ConflictError struct {
	BlockA string
	BlockB string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting blocks: %s", e.Reason)
}

// ConfigError is returned when the rule set, block catalog or fact-block
// mapping is malformed. Configuration is validated eagerly at load time so
// these surface at startup, not mid-solve.
type ConfigError struct {
	Detail string
}

func (e *ConfigError) Error() string {
	return "invalid solver configuration: " + e.Detail
}
