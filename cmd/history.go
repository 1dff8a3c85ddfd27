package cmd

import (
	"fmt"
	"os"

	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/internal/runstore"
	"github.com/mmmkit/decomp/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadHistoryConfig reads only the history settings, skipping payload validation.
func loadHistoryConfig() error {
	if err := readConfigFile(); err != nil {
		return err
	}

	backend, err := contract.ParseHistoryBackend(viper.GetString("history-backend"))
	if err != nil {
		return err
	}
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historySetup loads minimal configuration needed for history operations and opens the store.
func historySetup(_ *cobra.Command, _ []string) error {
	if err := loadHistoryConfig(); err != nil {
		return err
	}
	if err := runstore.InitStores(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}
	return nil
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// It does NOT initialize stores or create tables, so migrations can run on a fresh database.
func historyMigrateSetup(_ *cobra.Command, _ []string) error {
	if err := loadHistoryConfig(); err != nil {
		return err
	}
	// For SQLite backend with empty connection string, use default path
	if cfg.HistoryBackend == schema.SQLiteBackend && cfg.HistoryDBConnect == "" {
		cfg.HistoryDBConnect = runstore.GetHistoryDBFilePath()
	}
	return nil
}

// historyCmd focused on run history management.
//
// Note: history subcommands use minimal initialization instead of the full
// sharedSetup, so no payload arguments are needed.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the run history of engine commands",
	Long: `Manage the history of overall, groups, drilldown and compare runs.

When a history backend is configured, every run records its kind, model,
start and end time, duration, rows produced and configuration.

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status  - Show run history statistics
  export  - Export runs to Parquet
  clear   - Remove all run history
  migrate - Run database schema migrations

Examples:
  decomp history status --history-backend sqlite
  decomp history export --history-backend sqlite --output-file history`,
}

// historyStatusCmd shows run history status.
var historyStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display run history statistics and connection details",
	PreRunE: historySetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		store := runstore.Manager.GetRunStore()
		if store == nil {
			runstore.PrintHistoryStatus(os.Stdout, schema.HistoryStatus{Backend: string(cfg.HistoryBackend)})
			return nil
		}
		status, err := store.GetStatus()
		if err != nil {
			return fmt.Errorf("failed to get history status: %w", err)
		}
		runstore.PrintHistoryStatus(os.Stdout, status)
		return nil
	},
}

// historyExportCmd exports run history to Parquet.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for analytics",
	Long: `Export every stored run to <output-file>.runs.parquet.

Requires: --output-file parameter

Examples:
  decomp history export --history-backend sqlite --output-file history
  duckdb -c "SELECT kind, count(*) FROM read_parquet('history.runs.parquet') GROUP BY kind"`,
	PreRunE: historySetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := runstore.ExecuteHistoryExport(os.Stdout, cfg.OutputFile); err != nil {
			return fmt.Errorf("failed to export run history: %w", err)
		}
		return nil
	},
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all run history",
	Long: `Delete all stored runs. For SQLite the database file is removed;
for MySQL and PostgreSQL the runs table is dropped.

WARNING: This action cannot be undone. Consider exporting first.`,
	PreRunE: historyMigrateSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := runstore.ClearHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, cfg.HistoryDBConnect); err != nil {
			return fmt.Errorf("failed to clear run history: %w", err)
		}
		fmt.Println("Run history cleared successfully.")
		return nil
	},
}

// historyMigrateCmd runs database migrations for the run history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  decomp history migrate --history-backend sqlite

  # Rollback to initial state
  decomp history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyMigrateSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateHistory(os.Stdout, cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		return nil
	},
}
