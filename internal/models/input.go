package models

// Input is a parsed blueprint file: the boolean requirements to derive an
// architecture from, plus any manually pinned blocks.
type Input struct {
	Requirements map[string]bool `json:"requirements" yaml:"requirements"`
	Blocks       []string        `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}
