package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/blueprint/internal/models"
)

// fileCatalog is the YAML shape of a catalog file. Any section left empty
// falls back to the built-in defaults, so a file can override just the
// blocks, just the rules, or both.
type fileCatalog struct {
	Rules      []models.Rule  `yaml:"rules"`
	Blocks     []models.Block `yaml:"blocks"`
	FactBlocks []FactBlock    `yaml:"fact_blocks"`
}

// LoadFile reads a catalog definition from a YAML file and validates it.
// Sections missing from the file inherit the built-in defaults.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	rules := fc.Rules
	if len(rules) == 0 {
		rules = defaultRules()
	}
	blocks := fc.Blocks
	if len(blocks) == 0 {
		blocks = defaultBlocks()
	}
	factBlocks := fc.FactBlocks
	if len(factBlocks) == 0 {
		factBlocks = defaultFactBlocks()
	}

	c, err := New(rules, blocks, factBlocks)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Load returns the catalog at path, or the built-in defaults when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
