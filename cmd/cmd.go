// Package cmd defines the command-line interface for decomp.
package cmd

import (
	"fmt"

	"github.com/mmmkit/decomp/core"
	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(overallCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(drilldownCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("colors-file", "", "YAML file mapping series keys to colours")
	rootCmd.PersistentFlags().String("history-backend", "", "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname?parseTime=true)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write run metrics in Prometheus text format to this file on exit")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of drilldownCmd to Viper
	drilldownCmd.Flags().StringP("group", "g", "", "Group to break down into its variables")
	if err := viper.BindPFlags(drilldownCmd.Flags()); err != nil {
		contract.LogFatal("Error binding drilldown flags", err)
	}

	// Bind all flags of colorsCmd to Viper
	colorsCmd.Flags().Bool("variables", false, "Colour keys as variables of one group instead of as groups")
	if err := viper.BindPFlags(colorsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding colors flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}

// runExecutor runs one engine executor against the shared configuration.
// Errors are returned so main can write metrics and close stores before exiting.
func runExecutor(exec core.ExecutorFunc, failure string) error {
	if err := exec(rootCtx, cfg, historyManager, writer); err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}
	return nil
}
