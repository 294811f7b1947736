package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/harrison/blueprint/internal/models"
)

func TestNewRejectsDuplicateRuleID(t *testing.T) {
	rules := []models.Rule{
		{ID: "dup", Conditions: []models.Condition{{Fact: "a", Value: true}}, Conclusions: []models.Conclusion{{Fact: "b", Value: true}}},
		{ID: "dup", Conditions: []models.Condition{{Fact: "c", Value: true}}, Conclusions: []models.Conclusion{{Fact: "d", Value: true}}},
	}

	_, err := New(rules, nil, nil)
	assertConfigError(t, err, "duplicate rule id")
}

func TestNewRejectsSelfFiringRule(t *testing.T) {
	rules := []models.Rule{
		{
			ID:          "loop",
			Conditions:  []models.Condition{{Fact: "a", Value: true}},
			Conclusions: []models.Conclusion{{Fact: "a", Value: false}},
		},
	}

	_, err := New(rules, nil, nil)
	assertConfigError(t, err, "references its own condition")
}

func TestNewRejectsDuplicateBlockID(t *testing.T) {
	blocks := []models.Block{
		{ID: "dup", Provides: []string{"x"}},
		{ID: "dup", Provides: []string{"y"}},
	}

	_, err := New(nil, blocks, nil)
	assertConfigError(t, err, "duplicate block id")
}

func TestNewRejectsUnknownIncompatibleRef(t *testing.T) {
	blocks := []models.Block{
		{ID: "a", Provides: []string{"x"}, IncompatibleWith: []string{"ghost"}},
	}

	_, err := New(nil, blocks, nil)
	assertConfigError(t, err, "unknown block")
}

func TestNewRejectsUnprovidableRequirement(t *testing.T) {
	blocks := []models.Block{
		{ID: "a", Requires: []string{"teleportation"}, Provides: []string{"x"}},
	}

	_, err := New(nil, blocks, nil)
	assertConfigError(t, err, "no catalog block provides")
}

func TestNewRejectsFactMappedToUnknownBlock(t *testing.T) {
	blocks := []models.Block{{ID: "a", Provides: []string{"x"}}}
	factBlocks := []FactBlock{{Fact: "needs_x", Block: "ghost"}}

	_, err := New(nil, blocks, factBlocks)
	assertConfigError(t, err, "unknown block")
}

func TestNewRejectsFactMappedTwice(t *testing.T) {
	blocks := []models.Block{
		{ID: "a", Provides: []string{"x"}},
		{ID: "b", Provides: []string{"y"}},
	}
	factBlocks := []FactBlock{
		{Fact: "needs_x", Block: "a"},
		{Fact: "needs_x", Block: "b"},
	}

	_, err := New(nil, blocks, factBlocks)
	assertConfigError(t, err, "more than one block")
}

func TestProvidersCatalogOrder(t *testing.T) {
	c, err := New(nil, []models.Block{
		{ID: "second_choice", Provides: []string{"storage"}},
		{ID: "first_choice", Provides: []string{"storage"}},
	}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := c.Providers("storage")
	if len(got) != 2 || got[0] != "second_choice" || got[1] != "first_choice" {
		t.Errorf("Providers = %v, want declaration order", got)
	}
	if got := c.Providers("nothing"); len(got) != 0 {
		t.Errorf("Providers(nothing) = %v, want empty", got)
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()

	if len(c.Rules()) == 0 || len(c.Blocks()) == 0 || len(c.FactBlocks()) == 0 {
		t.Fatal("default catalog is missing sections")
	}

	// Every fact-block mapping must point at an existing block (New checks
	// this, but Default panicking in production would be worse).
	for _, fb := range c.FactBlocks() {
		if _, ok := c.Block(fb.Block); !ok {
			t.Errorf("fact %s maps to missing block %s", fb.Fact, fb.Block)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	blocks := c.Blocks()
	blocks[0].ID = "mutated"
	if c.Blocks()[0].ID == "mutated" {
		t.Error("Blocks() exposed internal state")
	}

	rules := c.Rules()
	rules[0].ID = "mutated"
	if c.Rules()[0].ID == "mutated" {
		t.Error("Rules() exposed internal state")
	}
}

func assertConfigError(t *testing.T, err error, fragment string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected ConfigError, got nil")
	}
	var cfgErr *models.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %T, want *models.ConfigError", err)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Errorf("error %q does not contain %q", err, fragment)
	}
}
