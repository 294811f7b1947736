package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/blueprint/internal/history"
	"github.com/harrison/blueprint/internal/models"
)

// NewHistoryCommand creates and returns the history subcommand
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "history",
		Short:        "Inspect recorded derivations",
		SilenceUsage: true,
	}

	cmd.AddCommand(newHistoryShowCommand())
	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

func newHistoryShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show recorded derivations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return runHistoryShow(cmd, limit, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 10, "maximum number of derivations to show (0 = all)")

	return cmd
}

func newHistoryClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded derivations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryClear(cmd, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
}

func runHistoryShow(cmd *cobra.Command, limit int, output io.Writer) error {
	cfg, _, _, err := loadSetup(cmd)
	if err != nil {
		return err
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	records, err := store.List(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(output, "No derivations recorded.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(output, "%s  %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"), rec.ID)
		fmt.Fprintf(output, "  requirements: %s\n", formatFacts(rec.Derivation.Requirements))
		fmt.Fprintf(output, "  blocks: %s\n", strings.Join(rec.Derivation.Blocks, ", "))
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, output io.Writer) error {
	cfg, _, _, err := loadSetup(cmd)
	if err != nil {
		return err
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(output, "History cleared.")
	return nil
}

func formatFacts(facts map[string]bool) string {
	parts := make([]string, 0, len(facts))
	for _, f := range models.FactsFromMap(facts) {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, ", ")
}
