package models

import (
	"fmt"
	"strings"
)

// Block is a composable architecture unit (e.g. "crdt_sync", "auth_basic").
// Blocks are static configuration defined at process start and never mutated
// at runtime; a selection is an ephemeral subset chosen per derivation request.
type Block struct {
	ID string `json:"id" yaml:"id"`

	// Requires lists capability names that must be present among the union
	// of Provides of the other selected blocks. A block cannot satisfy its
	// own requirement.
	Requires []string `json:"requires,omitempty" yaml:"requires,omitempty"`

	// Provides lists capability names this block offers once selected.
	Provides []string `json:"provides,omitempty" yaml:"provides,omitempty"`

	// IncompatibleWith lists block IDs that cannot coexist with this block
	// in the same selection. The relation is checked in both directions.
	IncompatibleWith []string `json:"incompatible_with,omitempty" yaml:"incompatible_with,omitempty"`
}

// Validate checks structural invariants on a single block.
func (b Block) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("block has empty id")
	}
	for _, cap := range b.Requires {
		if strings.TrimSpace(cap) == "" {
			return fmt.Errorf("block %s: empty capability in requires", b.ID)
		}
	}
	for _, cap := range b.Provides {
		if strings.TrimSpace(cap) == "" {
			return fmt.Errorf("block %s: empty capability in provides", b.ID)
		}
	}
	for _, other := range b.IncompatibleWith {
		if other == b.ID {
			return fmt.Errorf("block %s: declares itself incompatible", b.ID)
		}
	}
	return nil
}

// ProvidesCapability reports whether the block provides the named capability.
func (b Block) ProvidesCapability(capability string) bool {
	for _, cap := range b.Provides {
		if cap == capability {
			return true
		}
	}
	return false
}
