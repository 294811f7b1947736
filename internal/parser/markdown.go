package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/harrison/blueprint/internal/models"
)

// MarkdownParser parses blueprint documents written as markdown. The
// requirements live either in YAML frontmatter:
//
//	---
//	requirements:
//	  offline: true
//	---
//
// or in the first fenced yaml code block that declares a requirements map.
// The surrounding prose is ignored, so a design document doubles as a
// machine-readable blueprint.
type MarkdownParser struct {
	markdown goldmark.Markdown
}

func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		markdown: goldmark.New(),
	}
}

func (p *MarkdownParser) Parse(r io.Reader) (*models.Input, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	content, frontmatter := extractFrontmatter(content)
	if frontmatter != nil {
		input, err := parseInputYAML(frontmatter)
		if err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
		}
		if input != nil {
			return input, nil
		}
	}

	doc := p.markdown.Parser().Parse(text.NewReader(content))

	var input *models.Input
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || input != nil {
			return ast.WalkContinue, nil
		}

		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		lang := string(block.Language(content))
		if lang != "yaml" && lang != "yml" {
			return ast.WalkContinue, nil
		}

		parsed, err := parseInputYAML(codeBlockText(block, content))
		if err != nil {
			return ast.WalkStop, err
		}
		if parsed != nil {
			input = parsed
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if input == nil {
		return nil, fmt.Errorf("no requirements found: expected frontmatter or a fenced yaml block with a requirements map")
	}
	return input, nil
}

// parseInputYAML unmarshals a YAML fragment and returns the contained Input,
// or nil when the fragment is valid YAML but declares no requirements.
func parseInputYAML(data []byte) (*models.Input, error) {
	var input models.Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, err
	}
	if len(input.Requirements) == 0 {
		return nil, nil
	}
	return &input, nil
}

// codeBlockText collects the raw text of a fenced code block from the source
func codeBlockText(block *ast.FencedCodeBlock, source []byte) []byte {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return buf.Bytes()
}

// extractFrontmatter extracts YAML frontmatter from markdown content
// Returns the content without frontmatter and the frontmatter bytes
func extractFrontmatter(content []byte) ([]byte, []byte) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) < 3 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return content, nil
	}

	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			frontmatter := bytes.Join(lines[1:i], []byte("\n"))
			body := bytes.Join(lines[i+1:], []byte("\n"))
			return body, frontmatter
		}
	}

	return content, nil
}
