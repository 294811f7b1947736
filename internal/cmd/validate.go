package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/blueprint/internal/csp"
	"github.com/harrison/blueprint/internal/display"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <block-id>...",
		Short: "Validate a manually chosen set of blocks",
		Long: `Check a block selection against the catalog constraints:
  - Every required capability is provided by another selected block
  - No two selected blocks are incompatible

For each missing capability the report suggests catalog blocks that would
provide it.

Exit code: 0 if valid, 1 if conflicts or missing requirements are found`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().Bool("json", false, "emit the validation result as JSON")

	return cmd
}

func runValidate(cmd *cobra.Command, selected []string, output io.Writer) error {
	_, cat, _, err := loadSetup(cmd)
	if err != nil {
		return err
	}

	validator := csp.NewValidator(cat)
	result, err := validator.Validate(selected)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	} else {
		display.RenderResult(output, selected, result)
	}

	if !result.Valid {
		return fmt.Errorf("selection is invalid: %d conflict(s), %d missing requirement(s)",
			len(result.Conflicts), len(result.Missing))
	}
	return nil
}
