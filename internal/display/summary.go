// Package display renders derivation results, validation reports and catalog
// listings for the terminal. It centralizes color handling so the solver
// packages stay free of presentation concerns.
package display

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/blueprint/internal/models"
)

// factCategories buckets derived fact names for the architecture summary.
// Facts not listed here land in "other".
var factCategories = map[string]string{
	"local_first_storage":  "storage",
	"last_write_wins":      "storage",
	"needs_storage":        "storage",
	"needs_sync":           "storage",
	"crdt_sync":            "storage",
	"needs_backend":        "backend",
	"needs_api":            "backend",
	"needs_websocket":      "backend",
	"needs_conflict_ui":    "frontend",
	"needs_auth":           "security",
	"needs_permissions":    "security",
	"needs_roles":          "security",
	"needs_encryption":     "security",
	"needs_audit_log":      "security",
	"needs_pci_compliance": "security",
	"use_payment_provider": "security",
	"needs_message_queue":  "infrastructure",
	"needs_retry_logic":    "infrastructure",
}

// categoryOrder fixes the rendering order of summary sections.
var categoryOrder = []string{"storage", "backend", "frontend", "security", "infrastructure", "other"}

// Summarize groups the true derived facts (excluding the caller's own
// requirements) into architecture categories.
func Summarize(d models.Derivation) map[string][]string {
	summary := make(map[string][]string)
	for name, value := range d.Facts {
		if !value {
			continue
		}
		if _, isInput := d.Requirements[name]; isInput {
			continue
		}
		category, ok := factCategories[name]
		if !ok {
			category = "other"
		}
		summary[category] = append(summary[category], name)
	}
	for _, facts := range summary {
		sort.Strings(facts)
	}
	return summary
}

// RenderDerivation writes the full derivation report: input requirements,
// the categorized architecture summary, the selected blocks, and optionally
// the derivation trace.
func RenderDerivation(w io.Writer, d models.Derivation, explain bool) {
	heading := color.New(color.FgCyan, color.Bold)
	success := color.New(color.FgGreen)

	fmt.Fprintf(w, "%s\n", heading.Sprint("Requirements"))
	for _, f := range models.FactsFromMap(d.Requirements) {
		fmt.Fprintf(w, "  %s\n", f)
	}

	fmt.Fprintf(w, "\n%s\n", heading.Sprint("Derived architecture"))
	summary := Summarize(d)
	for _, category := range categoryOrder {
		facts := summary[category]
		if len(facts) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s:\n", strings.ToUpper(category))
		for _, fact := range facts {
			fmt.Fprintf(w, "    %s %s\n", success.Sprint("✓"), fact)
		}
	}

	fmt.Fprintf(w, "\n%s\n", heading.Sprint("Selected blocks"))
	for _, id := range d.Blocks {
		fmt.Fprintf(w, "  %s %s\n", success.Sprint("✓"), id)
	}

	if explain {
		fmt.Fprintf(w, "\n%s\n", heading.Sprint("Derivation trace"))
		RenderTrace(w, d.Trace)
	}
}

// RenderTrace writes one line per derivation step.
func RenderTrace(w io.Writer, trace models.Trace) {
	if len(trace) == 0 {
		fmt.Fprintln(w, "  (no derivations made)")
		return
	}
	for _, step := range trace {
		fmt.Fprintf(w, "  [%s] %s -> %s\n", step.ID, step.Reason, strings.Join(step.Added, ", "))
	}
}
