// Package catalog owns the static solver configuration: the inference rule
// set, the block catalog and the fact-to-block mapping used by the
// auto-solver. A Catalog is validated eagerly at load time, is read-only
// afterwards, and is safe for concurrent use by any number of solver
// invocations.
package catalog

import (
	"fmt"

	"github.com/harrison/blueprint/internal/models"
)

// FactBlock maps a derived boolean fact to the block selected when the fact
// is true, e.g. crdt_sync=true selects the "crdt_sync" block. Order matters:
// the auto-solver applies mappings in declaration order so traces stay
// deterministic.
type FactBlock struct {
	Fact  string `yaml:"fact"`
	Block string `yaml:"block"`
}

// Catalog is the immutable solver configuration.
type Catalog struct {
	rules      []models.Rule
	blocks     []models.Block
	factBlocks []FactBlock
	blockByID  map[string]models.Block
}

// New builds a Catalog from rules, blocks and the fact-block mapping,
// validating the whole configuration before returning. Malformed
// configuration fails here with a ConfigError rather than surfacing
// confusingly at solve time.
func New(rules []models.Rule, blocks []models.Block, factBlocks []FactBlock) (*Catalog, error) {
	c := &Catalog{
		rules:      append([]models.Rule(nil), rules...),
		blocks:     append([]models.Block(nil), blocks...),
		factBlocks: append([]FactBlock(nil), factBlocks...),
		blockByID:  make(map[string]models.Block, len(blocks)),
	}

	seenRules := make(map[string]bool, len(rules))
	for _, r := range c.rules {
		if err := r.Validate(); err != nil {
			return nil, &models.ConfigError{Detail: err.Error()}
		}
		if seenRules[r.ID] {
			return nil, &models.ConfigError{Detail: fmt.Sprintf("duplicate rule id %q", r.ID)}
		}
		seenRules[r.ID] = true
	}

	provided := make(map[string]bool)
	for _, b := range c.blocks {
		if err := b.Validate(); err != nil {
			return nil, &models.ConfigError{Detail: err.Error()}
		}
		if _, dup := c.blockByID[b.ID]; dup {
			return nil, &models.ConfigError{Detail: fmt.Sprintf("duplicate block id %q", b.ID)}
		}
		c.blockByID[b.ID] = b
		for _, cap := range b.Provides {
			provided[cap] = true
		}
	}

	for _, b := range c.blocks {
		for _, cap := range b.Requires {
			if !provided[cap] {
				return nil, &models.ConfigError{
					Detail: fmt.Sprintf("block %s requires %q, which no catalog block provides", b.ID, cap),
				}
			}
		}
		for _, other := range b.IncompatibleWith {
			if _, ok := c.blockByID[other]; !ok {
				return nil, &models.ConfigError{
					Detail: fmt.Sprintf("block %s declares incompatibility with unknown block %q", b.ID, other),
				}
			}
		}
	}

	seenFacts := make(map[string]bool, len(c.factBlocks))
	for _, fb := range c.factBlocks {
		if fb.Fact == "" || fb.Block == "" {
			return nil, &models.ConfigError{Detail: "fact-block mapping with empty fact or block"}
		}
		if _, ok := c.blockByID[fb.Block]; !ok {
			return nil, &models.ConfigError{
				Detail: fmt.Sprintf("fact %q maps to unknown block %q", fb.Fact, fb.Block),
			}
		}
		if seenFacts[fb.Fact] {
			return nil, &models.ConfigError{Detail: fmt.Sprintf("fact %q mapped to more than one block", fb.Fact)}
		}
		seenFacts[fb.Fact] = true
	}

	return c, nil
}

// Rules returns a copy of the rule set in stable declaration order.
func (c *Catalog) Rules() []models.Rule {
	return append([]models.Rule(nil), c.rules...)
}

// Blocks returns a copy of the block catalog in declaration order.
func (c *Catalog) Blocks() []models.Block {
	return append([]models.Block(nil), c.blocks...)
}

// Block looks up a block by ID.
func (c *Catalog) Block(id string) (models.Block, bool) {
	b, ok := c.blockByID[id]
	return b, ok
}

// FactBlocks returns a copy of the fact-to-block mapping in declaration order.
func (c *Catalog) FactBlocks() []FactBlock {
	return append([]FactBlock(nil), c.factBlocks...)
}

// Providers returns the IDs of all catalog blocks whose provides contains
// the given capability, in catalog order. The auto-solver's "first suggestion
// wins" tie-break depends on this ordering.
func (c *Catalog) Providers(capability string) []string {
	var ids []string
	for _, b := range c.blocks {
		if b.ProvidesCapability(capability) {
			ids = append(ids, b.ID)
		}
	}
	return ids
}
