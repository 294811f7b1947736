package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"blueprint.md", FormatMarkdown},
		{"blueprint.markdown", FormatMarkdown},
		{"BLUEPRINT.MD", FormatMarkdown},
		{"blueprint.yaml", FormatYAML},
		{"blueprint.yml", FormatYAML},
		{"blueprint.txt", FormatUnknown},
		{"blueprint", FormatUnknown},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.filename); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if FormatMarkdown.String() != "markdown" || FormatYAML.String() != "yaml" || FormatUnknown.String() != "unknown" {
		t.Error("Format.String() mismatch")
	}
}

func TestNewParserUnknownFormat(t *testing.T) {
	if _, err := NewParser(FormatUnknown); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestYAMLParser(t *testing.T) {
	input, err := NewYAMLParser().Parse(strings.NewReader(`
requirements:
  offline: true
  multi_user: true
  realtime: false
blocks:
  - auth_oauth
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(input.Requirements) != 3 {
		t.Errorf("requirements = %v", input.Requirements)
	}
	if !input.Requirements["offline"] || input.Requirements["realtime"] {
		t.Errorf("requirement values wrong: %v", input.Requirements)
	}
	if len(input.Blocks) != 1 || input.Blocks[0] != "auth_oauth" {
		t.Errorf("blocks = %v", input.Blocks)
	}
}

func TestYAMLParserNoRequirements(t *testing.T) {
	if _, err := NewYAMLParser().Parse(strings.NewReader("blocks: [auth_basic]")); err == nil {
		t.Error("expected error for missing requirements")
	}
}

func TestMarkdownParserFrontmatter(t *testing.T) {
	doc := `---
requirements:
  offline: true
  multi_user: true
blocks:
  - crdt_sync
---

# My app

Some prose describing the app.
`
	input, err := NewMarkdownParser().Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !input.Requirements["offline"] || !input.Requirements["multi_user"] {
		t.Errorf("requirements = %v", input.Requirements)
	}
	if len(input.Blocks) != 1 || input.Blocks[0] != "crdt_sync" {
		t.Errorf("blocks = %v", input.Blocks)
	}
}

func TestMarkdownParserFencedBlock(t *testing.T) {
	doc := "# Design doc\n\nThe app must work offline.\n\n```yaml\nrequirements:\n  offline: true\n  sensitive_data: true\n```\n\nMore prose.\n"

	input, err := NewMarkdownParser().Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !input.Requirements["offline"] || !input.Requirements["sensitive_data"] {
		t.Errorf("requirements = %v", input.Requirements)
	}
}

func TestMarkdownParserSkipsNonYAMLBlocks(t *testing.T) {
	doc := "```json\n{\"requirements\": {\"offline\": true}}\n```\n\n```yaml\nrequirements:\n  realtime: true\n```\n"

	input, err := NewMarkdownParser().Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !input.Requirements["realtime"] || len(input.Requirements) != 1 {
		t.Errorf("requirements = %v, want only the yaml block's", input.Requirements)
	}
}

func TestMarkdownParserNoRequirements(t *testing.T) {
	_, err := NewMarkdownParser().Parse(strings.NewReader("# Just prose\n\nNothing machine readable here.\n"))
	if err == nil || !strings.Contains(err.Error(), "no requirements found") {
		t.Errorf("err = %v, want no-requirements error", err)
	}
}

func TestMarkdownParserFrontmatterWithoutRequirementsFallsThrough(t *testing.T) {
	doc := "---\ntitle: design\n---\n\n```yaml\nrequirements:\n  offline: true\n```\n"

	input, err := NewMarkdownParser().Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !input.Requirements["offline"] {
		t.Errorf("requirements = %v", input.Requirements)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "blueprint.yaml")
	if err := os.WriteFile(yamlPath, []byte("requirements:\n  offline: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	input, err := ParseFile(yamlPath)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if !input.Requirements["offline"] {
		t.Errorf("requirements = %v", input.Requirements)
	}
}

func TestParseFileUnknownExtension(t *testing.T) {
	if _, err := ParseFile("blueprint.txt"); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
