// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for tablekit using the
// Cobra library. It defines the root command, its flags, and the main entry
// point for execution. Running without arguments launches the interactive
// dataset browser.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toeirei/tablekit/buildvars"
	"github.com/toeirei/tablekit/internal/config"
	"github.com/toeirei/tablekit/internal/datasource"
	"github.com/toeirei/tablekit/internal/filter"
	"github.com/toeirei/tablekit/internal/i18n"
	"github.com/toeirei/tablekit/internal/logging"
	"github.com/toeirei/tablekit/internal/model"
	"github.com/toeirei/tablekit/internal/optionset"
	"github.com/toeirei/tablekit/ui/tui"
	"github.com/toeirei/tablekit/ui/tui/models/views/browser"
)

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

func setupDefaultServices(cmd *cobra.Command) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := map[string]any{
		"dataset":  "",
		"db_type":  "",
		"dsn":      "",
		"language": "en",
		"debug":    false,
	}

	appConfig, err = config.Load(cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it
	// specifically and persist a default config for subsequent runs.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			log.Warnf("could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	if verbose || appConfig.Debug {
		logging.SetDebug(true)
		datasource.SetDebug(true)
	}

	i18n.Init(appConfig.Language)
	return nil
}

// buildSource resolves the configured data source: a database when db_type
// is set (seeded from the dataset file when one is given), otherwise the
// dataset file in memory, otherwise a built-in sample.
func buildSource(cfg config.Config) (browser.Source, func() error, error) {
	noClose := func() error { return nil }

	if cfg.DBType != "" {
		store, err := datasource.NewStore(cfg.DBType, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Dataset != "" {
			ds, err := datasource.LoadDataset(cfg.Dataset)
			if err != nil {
				store.Close()
				return nil, nil, err
			}
			if err := store.Seed(context.Background(), ds); err != nil {
				store.Close()
				return nil, nil, err
			}
		}
		return store, store.Close, nil
	}

	if cfg.Dataset != "" {
		ds, err := datasource.LoadDataset(cfg.Dataset)
		if err != nil {
			return nil, nil, err
		}
		return datasource.NewMemory(ds), noClose, nil
	}

	return datasource.NewMemory(sampleDataset()), noClose, nil
}

// sampleDataset is the issue tracker shown when no dataset is configured.
func sampleDataset() *model.Dataset {
	return &model.Dataset{
		Name: "sample",
		Columns: []model.Column{
			{ID: "title", Title: "Title"},
			{ID: "status", Title: "Status", FilterFn: filter.FnIncludesSome},
			{ID: "priority", Title: "Priority"},
			{ID: "assignee", Title: "Assignee", FilterFn: filter.FnIncludesSome},
		},
		Rows: []model.Row{
			{"title": optionset.String("Fix login crash"), "status": optionset.String("open"), "priority": optionset.Number(1), "assignee": optionset.String("mika")},
			{"title": optionset.String("Add CSV export"), "status": optionset.String("open"), "priority": optionset.Number(3), "assignee": optionset.String("sam")},
			{"title": optionset.String("Update onboarding docs"), "status": optionset.String("closed"), "priority": optionset.Number(2), "assignee": optionset.String("mika")},
			{"title": optionset.String("Speed up search index"), "status": optionset.String("in progress"), "priority": optionset.Number(1), "assignee": optionset.String("alex")},
			{"title": optionset.String("Rotate API tokens"), "status": optionset.String("open"), "priority": optionset.Number(2), "assignee": optionset.Null()},
			{"title": optionset.String("Migrate CI runners"), "status": optionset.String("closed"), "priority": optionset.Number(3), "assignee": optionset.String("sam")},
		},
	}
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tablekit",
		Short: "tablekit is an interactive table browser with column filters.",
		Long: `Tablekit browses tabular datasets in the terminal.
Each column can carry a select filter whose options are derived from the
data itself, or supplied explicitly by the dataset. Datasets come from a
YAML file (optionally zstd-compressed) or a SQL database.

Running without a subcommand launches the interactive browser.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Printf("%s\n", buildvars.VersionOrDefault("dev"))
				os.Exit(0)
			}
			return setupDefaultServices(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source, closeSource, err := buildSource(appConfig)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeSource(); err != nil {
					log.Errorf("closing data source: %v", err)
				}
			}()
			return tui.Run(source)
		},
	}

	cmd.Version = buildvars.VersionOrDefault("dev")

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.Flags().String("dataset", "", "Path of a YAML dataset file (.yaml or .yaml.zst)")
	cmd.Flags().String("db_type", "", "Database type (sqlite, postgres, mysql); empty serves from memory")
	cmd.Flags().String("dsn", "", "Database connection string (DSN)")

	return cmd
}
