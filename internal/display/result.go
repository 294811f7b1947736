package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/blueprint/internal/models"
)

// RenderResult writes a validation report: a green check for a valid
// selection, otherwise every conflict and missing requirement with the
// suggested fixes.
func RenderResult(w io.Writer, selected []string, result models.Result) {
	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed)
	hint := color.New(color.FgYellow)

	if result.Valid {
		fmt.Fprintf(w, "%s Selection is valid: %s\n", success.Sprint("✓"), strings.Join(selected, ", "))
		return
	}

	fmt.Fprintf(w, "%s Selection is invalid\n", failure.Sprint("✗"))

	for _, c := range result.Conflicts {
		fmt.Fprintf(w, "  %s %s\n", failure.Sprint("✗"), c.Reason)
	}

	for _, m := range result.Missing {
		fmt.Fprintf(w, "  %s %s\n", failure.Sprint("✗"), m)
		if suggestions := result.SuggestionsFor(m.Capability); len(suggestions) > 0 {
			fmt.Fprintf(w, "    %s add one of: %s\n", hint.Sprint("→"), strings.Join(suggestions, ", "))
		}
	}
}

// RenderBlocks writes the catalog listing, one block per line with its
// requires/provides declarations.
func RenderBlocks(w io.Writer, blocks []models.Block) {
	name := color.New(color.FgCyan)
	for _, b := range blocks {
		fmt.Fprintf(w, "%s\n", name.Sprint(b.ID))
		if len(b.Provides) > 0 {
			fmt.Fprintf(w, "  provides: %s\n", strings.Join(b.Provides, ", "))
		}
		if len(b.Requires) > 0 {
			fmt.Fprintf(w, "  requires: %s\n", strings.Join(b.Requires, ", "))
		}
		if len(b.IncompatibleWith) > 0 {
			fmt.Fprintf(w, "  incompatible with: %s\n", strings.Join(b.IncompatibleWith, ", "))
		}
	}
}
