package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/blueprint/internal/catalog"
	"github.com/harrison/blueprint/internal/models"
)

// NewScenariosCommand creates and returns the scenarios subcommand
func NewScenariosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the named requirement scenarios",
		Long: `List the built-in scenarios usable with 'blueprint solve --scenario'.
Each scenario is a requirement template for a common application shape.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

func runScenarios(output io.Writer) error {
	for _, name := range catalog.ScenarioNames() {
		requirements, _ := catalog.Scenario(name)
		fmt.Fprintf(output, "%s\n", name)
		for _, f := range models.FactsFromMap(requirements) {
			fmt.Fprintf(output, "  %s\n", f)
		}
	}
	return nil
}
