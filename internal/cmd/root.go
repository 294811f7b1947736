package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for blueprint
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blueprint",
		Short: "Derive application architecture from requirements",
		Long: `Blueprint turns a handful of boolean requirements (offline? multi-user?
realtime?) into a concrete application architecture.

A forward-chaining rule engine derives the technical facts your requirements
imply, and a constraint solver picks a compatible set of implementation
blocks (storage, backend, auth, sync) that provides every derived capability.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", ".blueprint/config.yaml", "path to configuration file")
	cmd.PersistentFlags().String("catalog", "", "path to a YAML catalog overriding the built-in rules and blocks")

	cmd.AddCommand(NewSolveCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewBlocksCommand())
	cmd.AddCommand(NewScenariosCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
