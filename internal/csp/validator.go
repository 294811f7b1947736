// Package csp implements the constraint layer over the block catalog: the
// conflict/dependency validator and the auto-solver that completes a partial
// block selection.
package csp

import (
	"fmt"

	"github.com/harrison/blueprint/internal/catalog"
	"github.com/harrison/blueprint/internal/models"
)

// Validator checks block selections against the catalog's requires/provides
// declarations and incompatibility pairs. Validation is pure: it never
// mutates the catalog or the selection.
type Validator struct {
	catalog *catalog.Catalog
}

// NewValidator creates a Validator over the given catalog.
func NewValidator(c *catalog.Catalog) *Validator {
	return &Validator{catalog: c}
}

// Validate checks that every selected block's requires is satisfied by some
// other selected block's provides, and that no two selected blocks declare
// mutual incompatibility. Result.Valid is true iff both lists are empty.
// Duplicate IDs in the selection are ignored; unknown IDs are an error.
func (v *Validator) Validate(selected []string) (models.Result, error) {
	blocks, err := v.resolve(selected)
	if err != nil {
		return models.Result{}, err
	}

	result := models.Result{}

	// providerCount tracks how many selected blocks provide each capability,
	// so a block's own provides can be excluded when checking its requires.
	providerCount := make(map[string]int)
	for _, b := range blocks {
		for _, cap := range b.Provides {
			providerCount[cap]++
		}
	}

	seenMissing := make(map[string]bool)
	for _, b := range blocks {
		for _, cap := range b.Requires {
			others := providerCount[cap]
			if b.ProvidesCapability(cap) {
				others--
			}
			if others > 0 {
				continue
			}
			result.Missing = append(result.Missing, models.MissingRequirement{
				BlockID:    b.ID,
				Capability: cap,
			})
			if !seenMissing[cap] {
				seenMissing[cap] = true
				result.Suggestions = append(result.Suggestions, models.Suggestion{
					Capability: cap,
					Blocks:     v.unselectedProviders(cap, blocks),
				})
			}
		}
	}

	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if incompatible(blocks[i], blocks[j]) {
				result.Conflicts = append(result.Conflicts, models.Conflict{
					BlockA: blocks[i].ID,
					BlockB: blocks[j].ID,
					Reason: fmt.Sprintf("block %s and block %s are mutually incompatible", blocks[i].ID, blocks[j].ID),
				})
			}
		}
	}

	result.Valid = len(result.Missing) == 0 && len(result.Conflicts) == 0
	return result, nil
}

// resolve maps selected IDs to catalog blocks, deduplicating while
// preserving order.
func (v *Validator) resolve(selected []string) ([]models.Block, error) {
	blocks := make([]models.Block, 0, len(selected))
	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		if seen[id] {
			continue
		}
		seen[id] = true
		b, ok := v.catalog.Block(id)
		if !ok {
			return nil, fmt.Errorf("unknown block %q: not in catalog", id)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// unselectedProviders returns catalog-order providers of a capability that
// are not part of the current selection.
func (v *Validator) unselectedProviders(capability string, selected []models.Block) []string {
	inSelection := make(map[string]bool, len(selected))
	for _, b := range selected {
		inSelection[b.ID] = true
	}
	var ids []string
	for _, id := range v.catalog.Providers(capability) {
		if !inSelection[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// incompatible checks the incompatibility declaration in both directions.
func incompatible(a, b models.Block) bool {
	for _, id := range a.IncompatibleWith {
		if id == b.ID {
			return true
		}
	}
	for _, id := range b.IncompatibleWith {
		if id == a.ID {
			return true
		}
	}
	return false
}
