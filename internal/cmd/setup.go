package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/blueprint/internal/catalog"
	"github.com/harrison/blueprint/internal/config"
	"github.com/harrison/blueprint/internal/logger"
)

// loadSetup resolves config and catalog for a command invocation. The
// --catalog flag wins over the config file's catalog_path; both empty means
// the built-in defaults.
func loadSetup(cmd *cobra.Command) (*config.Config, *catalog.Catalog, *logger.ConsoleLogger, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	catalogPath, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return nil, nil, nil, err
	}
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return cfg, cat, log, nil
}
