package parser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/harrison/blueprint/internal/models"
)

// YAMLParser parses plain YAML blueprint files:
//
//	requirements:
//	  offline: true
//	  multi_user: true
//	blocks:
//	  - crdt_sync
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(r io.Reader) (*models.Input, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	var input models.Input
	if err := yaml.Unmarshal(content, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(input.Requirements) == 0 {
		return nil, fmt.Errorf("no requirements found")
	}
	return &input, nil
}
