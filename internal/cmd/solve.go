package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/blueprint/internal/catalog"
	"github.com/harrison/blueprint/internal/csp"
	"github.com/harrison/blueprint/internal/display"
	"github.com/harrison/blueprint/internal/history"
	"github.com/harrison/blueprint/internal/models"
	"github.com/harrison/blueprint/internal/parser"
)

// requirementFlags maps the shortcut flags to their requirement facts
var requirementFlags = map[string]string{
	"offline":        "offline",
	"multi-user":     "multi_user",
	"realtime":       "realtime",
	"shared-content": "shared_content",
	"sensitive":      "sensitive_data",
	"payment":        "handles_payment",
}

// NewSolveCommand creates and returns the solve subcommand
func NewSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Derive an architecture from requirements",
		Long: `Derive the technical facts and implementation blocks implied by a set
of boolean requirements.

Requirements can come from shortcut flags, --require key=value pairs, a named
scenario, or a blueprint file (YAML or markdown). Later sources override
earlier ones: scenario < file < flags.

Examples:
  blueprint solve --offline --multi-user
  blueprint solve --scenario collaborative --explain
  blueprint solve --file blueprint.md --block auth_oauth
  blueprint solve --require offline=true --require realtime=false --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	for flag, fact := range requirementFlags {
		cmd.Flags().Bool(flag, false, fmt.Sprintf("set the %s requirement", fact))
	}
	cmd.Flags().StringArray("require", nil, "additional requirement as key=value (repeatable)")
	cmd.Flags().String("scenario", "", "start from a named scenario (see 'blueprint scenarios')")
	cmd.Flags().String("file", "", "read requirements from a blueprint file (.yaml or .md)")
	cmd.Flags().StringArray("block", nil, "manually pin a block by ID (repeatable)")
	cmd.Flags().Bool("explain", false, "include the derivation trace in the output")
	cmd.Flags().Bool("json", false, "emit the derivation as JSON")
	cmd.Flags().Bool("no-history", false, "skip recording the derivation in the history database")

	return cmd
}

func runSolve(cmd *cobra.Command, output io.Writer) error {
	cfg, cat, log, err := loadSetup(cmd)
	if err != nil {
		return err
	}

	requirements, manual, err := collectRequirements(cmd)
	if err != nil {
		return err
	}
	if len(requirements) == 0 {
		return fmt.Errorf("no requirements given: use shortcut flags, --require, --scenario or --file")
	}

	auto := csp.NewAutoSolver(cat)
	derivation, err := auto.Derive(requirements, manual)
	if err != nil {
		var unsat *models.UnsatisfiableError
		var conflict *models.ConflictError
		switch {
		case errors.As(err, &unsat):
			log.Error("derivation unsatisfiable: %v", unsat)
		case errors.As(err, &conflict):
			log.Error("derivation conflict: %v", conflict)
		}
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	explain, _ := cmd.Flags().GetBool("explain")
	if asJSON {
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(derivation); err != nil {
			return fmt.Errorf("failed to encode derivation: %w", err)
		}
	} else {
		display.RenderDerivation(output, derivation, explain)
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")
	if cfg.History.Enabled && !noHistory {
		if err := recordDerivation(cfg.History.DBPath, derivation); err != nil {
			// History is best effort; the derivation already succeeded.
			log.Warn("failed to record derivation: %v", err)
		}
	}
	return nil
}

// collectRequirements merges requirement sources in precedence order:
// scenario, then file, then shortcut flags and --require pairs.
func collectRequirements(cmd *cobra.Command) (map[string]bool, []string, error) {
	requirements := make(map[string]bool)
	var manual []string

	scenarioName, _ := cmd.Flags().GetString("scenario")
	if scenarioName != "" {
		scenario, ok := catalog.Scenario(scenarioName)
		if !ok {
			return nil, nil, fmt.Errorf("unknown scenario %q (see 'blueprint scenarios')", scenarioName)
		}
		for fact, value := range scenario {
			requirements[fact] = value
		}
	}

	filePath, _ := cmd.Flags().GetString("file")
	if filePath != "" {
		input, err := parser.ParseFile(filePath)
		if err != nil {
			return nil, nil, err
		}
		for fact, value := range input.Requirements {
			requirements[fact] = value
		}
		manual = append(manual, input.Blocks...)
	}

	for flag, fact := range requirementFlags {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetBool(flag)
			requirements[fact] = value
		}
	}

	pairs, _ := cmd.Flags().GetStringArray("require")
	for _, pair := range pairs {
		fact, value, err := parseRequirePair(pair)
		if err != nil {
			return nil, nil, err
		}
		requirements[fact] = value
	}

	blocks, _ := cmd.Flags().GetStringArray("block")
	manual = append(manual, blocks...)

	return requirements, manual, nil
}

// parseRequirePair parses a --require argument of the form key=value.
// A bare key is shorthand for key=true.
func parseRequirePair(pair string) (string, bool, error) {
	key, value, found := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, fmt.Errorf("invalid --require %q: empty key", pair)
	}
	if !found {
		return key, true, nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1":
		return key, true, nil
	case "false", "no", "0":
		return key, false, nil
	default:
		return "", false, fmt.Errorf("invalid --require %q: value must be true or false", pair)
	}
}

func recordDerivation(dbPath string, d models.Derivation) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(d)
	return err
}
