// Package parser reads blueprint files describing application requirements.
// Two formats are supported: plain YAML, and markdown documents carrying
// their requirements in YAML frontmatter or a fenced yaml code block.
package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/blueprint/internal/models"
)

// Format represents the format of a blueprint file
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatMarkdown represents a Markdown (.md, .markdown) blueprint file
	FormatMarkdown
	// FormatYAML represents a YAML (.yaml, .yml) blueprint file
	FormatYAML
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Parser is the interface that all blueprint parsers implement
type Parser interface {
	// Parse reads from an io.Reader and returns the parsed Input
	Parse(r io.Reader) (*models.Input, error)
}

// DetectFormat automatically detects the blueprint format based on file
// extension. Supported extensions:
//   - .md, .markdown -> FormatMarkdown
//   - .yaml, .yml -> FormatYAML
//   - all others -> FormatUnknown
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// NewParser creates a new parser instance for the specified format
// Returns an error if the format is unknown or unsupported
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatMarkdown:
		return NewMarkdownParser(), nil
	case FormatYAML:
		return NewYAMLParser(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// ParseFile auto-detects the format from the file extension, opens the file
// and parses it. This is the recommended way to read blueprint files from
// disk.
func ParseFile(path string) (*models.Input, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unknown file format: %s (supported: .md, .markdown, .yaml, .yml)", path)
	}

	p, err := NewParser(format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	input, err := p.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse blueprint: %w", err)
	}
	return input, nil
}
