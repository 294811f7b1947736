package csp

import (
	"fmt"
	"strings"

	"github.com/harrison/blueprint/internal/catalog"
	"github.com/harrison/blueprint/internal/models"
	"github.com/harrison/blueprint/internal/solver"
)

// AutoSolver derives a complete, valid block selection from initial
// requirements and an optional manual block selection.
type AutoSolver struct {
	catalog   *catalog.Catalog
	validator *Validator
}

// NewAutoSolver creates an AutoSolver over the given catalog.
func NewAutoSolver(c *catalog.Catalog) *AutoSolver {
	return &AutoSolver{catalog: c, validator: NewValidator(c)}
}

// AutoSolve runs the forward-chaining engine on the initial facts, maps true
// derived facts to blocks through the catalog's fact-block table, unions the
// result with the manual selection, and then adds blocks until every
// requirement is satisfied.
//
// When several catalog blocks could satisfy a missing capability the first
// one in catalog order is chosen. This tie-break is for reproducibility, not
// optimality. Each iteration adds at least one new block, so the loop is
// bounded by the catalog size.
//
// It returns UnsatisfiableError when a required capability has no available
// provider, and ConflictError when the completed selection still contains a
// mutually incompatible pair; conflicts are reported, never auto-resolved.
// The returned trace lists the fact derivation steps followed by the block
// addition steps.
func (a *AutoSolver) AutoSolve(initial []models.Fact, manual []string) ([]string, models.Trace, error) {
	_, selection, trace, err := a.solve(initial, manual)
	return selection, trace, err
}

// Derive is AutoSolve plus the derived fact set, packaged for callers that
// render or persist the whole architecture decision.
func (a *AutoSolver) Derive(requirements map[string]bool, manual []string) (models.Derivation, error) {
	facts, selection, trace, err := a.solve(models.FactsFromMap(requirements), manual)
	if err != nil {
		return models.Derivation{}, err
	}
	return models.Derivation{
		Requirements: requirements,
		Facts:        facts,
		Blocks:       selection,
		Trace:        trace,
	}, nil
}

func (a *AutoSolver) solve(initial []models.Fact, manual []string) (map[string]bool, []string, models.Trace, error) {
	eng := solver.New(a.catalog.Rules())
	facts, trace := eng.Solve(initial)

	var selection []string
	selected := make(map[string]bool)
	add := func(id string, reason string) {
		if selected[id] {
			return
		}
		selected[id] = true
		selection = append(selection, id)
		block, _ := a.catalog.Block(id)
		trace = trace.Append(models.Step{
			Type:   models.StepBlock,
			ID:     id,
			Added:  append([]string(nil), block.Provides...),
			Reason: reason,
		})
	}

	for _, id := range manual {
		if _, ok := a.catalog.Block(id); !ok {
			return nil, nil, nil, fmt.Errorf("unknown block %q: not in catalog", id)
		}
		add(id, "manually selected")
	}
	for _, fb := range a.catalog.FactBlocks() {
		if !facts[fb.Fact] {
			continue
		}
		// A manual pin of an alternative provider (say auth_oauth) wins over
		// the fact mapping's default (auth_basic); silently adding the
		// default would manufacture a conflict.
		if a.conflictsWithSelection(fb.Block, selection) {
			continue
		}
		add(fb.Block, fmt.Sprintf("selected for derived fact %s=true", fb.Fact))
	}

	// Each pass adds a provider for every currently missing capability or
	// fails; the catalog is finite, so this terminates.
	maxPasses := len(a.catalog.Blocks()) + 1
	var result models.Result
	for pass := 0; ; pass++ {
		if pass > maxPasses {
			return nil, nil, nil, fmt.Errorf("auto-solve did not converge within %d passes", maxPasses)
		}
		var err error
		result, err = a.validator.Validate(selection)
		if err != nil {
			return nil, nil, nil, err
		}
		if len(result.Missing) == 0 {
			break
		}
		for _, m := range result.Missing {
			candidates := result.SuggestionsFor(m.Capability)
			if len(candidates) == 0 {
				return nil, nil, nil, &models.UnsatisfiableError{Capability: m.Capability, BlockID: m.BlockID}
			}
			// add deduplicates, so two blocks missing the same capability
			// in one pass share a single provider.
			add(candidates[0], fmt.Sprintf("provides %s required by %s", m.Capability, m.BlockID))
		}
	}

	if len(result.Conflicts) > 0 {
		c := result.Conflicts[0]
		return nil, nil, nil, &models.ConflictError{BlockA: c.BlockA, BlockB: c.BlockB, Reason: c.Reason}
	}

	return facts, selection, trace, nil
}

// conflictsWithSelection reports whether the candidate block is incompatible
// with any block already in the selection.
func (a *AutoSolver) conflictsWithSelection(id string, selection []string) bool {
	candidate, ok := a.catalog.Block(id)
	if !ok {
		return false
	}
	for _, selectedID := range selection {
		selected, ok := a.catalog.Block(selectedID)
		if !ok {
			continue
		}
		if incompatible(candidate, selected) {
			return true
		}
	}
	return false
}

// Explain renders a trace as indented text, one step per line, the way the
// CLI prints it under --explain.
func Explain(trace models.Trace) string {
	var sb strings.Builder
	for _, step := range trace {
		fmt.Fprintf(&sb, "  [%s] %s -> %s\n", step.ID, step.Reason, strings.Join(step.Added, ", "))
	}
	return sb.String()
}
