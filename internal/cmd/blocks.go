package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/blueprint/internal/display"
)

// NewBlocksCommand creates and returns the blocks subcommand
func NewBlocksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "List the block catalog",
		Long: `List every implementation block in the catalog with its provided
capabilities, requirements and incompatibilities.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlocks(cmd, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().Bool("json", false, "emit the catalog as JSON")

	return cmd
}

func runBlocks(cmd *cobra.Command, output io.Writer) error {
	_, cat, _, err := loadSetup(cmd)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cat.Blocks()); err != nil {
			return fmt.Errorf("failed to encode blocks: %w", err)
		}
		return nil
	}

	display.RenderBlocks(output, cat.Blocks())
	return nil
}
