package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/harrison/blueprint/internal/models"
)

func init() {
	// Keep rendered output free of escape codes in tests.
	color.NoColor = true
}

func TestSummarize(t *testing.T) {
	d := models.Derivation{
		Requirements: map[string]bool{"offline": true, "multi_user": true},
		Facts: map[string]bool{
			"offline":           true,
			"multi_user":        true,
			"needs_storage":     true,
			"needs_auth":        true,
			"needs_backend":     true,
			"crdt_sync":         true,
			"some_custom_fact":  true,
			"last_write_wins":   false,
			"needs_conflict_ui": true,
		},
	}

	summary := Summarize(d)

	if got := summary["storage"]; len(got) != 2 || got[0] != "crdt_sync" || got[1] != "needs_storage" {
		t.Errorf("storage = %v, want sorted [crdt_sync needs_storage]", got)
	}
	if got := summary["security"]; len(got) != 1 || got[0] != "needs_auth" {
		t.Errorf("security = %v", got)
	}
	if got := summary["other"]; len(got) != 1 || got[0] != "some_custom_fact" {
		t.Errorf("other = %v", got)
	}

	// Inputs and false facts are excluded.
	for category, facts := range summary {
		for _, f := range facts {
			if f == "offline" || f == "multi_user" || f == "last_write_wins" {
				t.Errorf("category %s contains excluded fact %s", category, f)
			}
		}
	}
}

func TestRenderDerivation(t *testing.T) {
	d := models.Derivation{
		Requirements: map[string]bool{"offline": true},
		Facts:        map[string]bool{"offline": true, "needs_storage": true},
		Blocks:       []string{"storage_sqlite"},
		Trace: models.Trace{
			{Type: models.StepRule, ID: "sync_needs_storage", Added: []string{"needs_storage"}, Reason: "needs_sync=true"},
		},
	}

	var buf bytes.Buffer
	RenderDerivation(&buf, d, false)
	out := buf.String()

	for _, want := range []string{"Requirements", "offline=true", "Derived architecture", "STORAGE", "needs_storage", "Selected blocks", "storage_sqlite"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Derivation trace") {
		t.Error("trace rendered without explain")
	}

	buf.Reset()
	RenderDerivation(&buf, d, true)
	out = buf.String()
	for _, want := range []string{"Derivation trace", "[sync_needs_storage] needs_sync=true -> needs_storage"} {
		if !strings.Contains(out, want) {
			t.Errorf("explain output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTraceEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderTrace(&buf, nil)
	if !strings.Contains(buf.String(), "no derivations made") {
		t.Errorf("empty trace output: %q", buf.String())
	}
}

func TestRenderResultValid(t *testing.T) {
	var buf bytes.Buffer
	RenderResult(&buf, []string{"storage_sqlite", "backend_flask"}, models.Result{Valid: true})

	out := buf.String()
	if !strings.Contains(out, "Selection is valid") || !strings.Contains(out, "storage_sqlite, backend_flask") {
		t.Errorf("output: %q", out)
	}
}

func TestRenderResultInvalid(t *testing.T) {
	result := models.Result{
		Valid: false,
		Conflicts: []models.Conflict{
			{BlockA: "storage_sqlite", BlockB: "storage_json", Reason: "block storage_sqlite and block storage_json are mutually incompatible"},
		},
		Missing: []models.MissingRequirement{
			{BlockID: "crdt_sync", Capability: "backend"},
		},
		Suggestions: []models.Suggestion{
			{Capability: "backend", Blocks: []string{"backend_flask", "backend_fastapi"}},
		},
	}

	var buf bytes.Buffer
	RenderResult(&buf, []string{"storage_sqlite", "storage_json", "crdt_sync"}, result)
	out := buf.String()

	for _, want := range []string{
		"Selection is invalid",
		"mutually incompatible",
		"block crdt_sync requires backend",
		"add one of: backend_flask, backend_fastapi",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBlocks(t *testing.T) {
	blocks := []models.Block{
		{
			ID:               "storage_sqlite",
			Provides:         []string{"storage", "persistence"},
			IncompatibleWith: []string{"storage_json"},
		},
		{ID: "crdt_sync", Requires: []string{"storage", "backend"}, Provides: []string{"sync"}},
	}

	var buf bytes.Buffer
	RenderBlocks(&buf, blocks)
	out := buf.String()

	for _, want := range []string{
		"storage_sqlite",
		"provides: storage, persistence",
		"incompatible with: storage_json",
		"requires: storage, backend",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
