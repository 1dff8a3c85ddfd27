package cmd

import (
	"github.com/mmmkit/decomp/core"
	"github.com/spf13/cobra"
)

// overallCmd aligns the actual and predicted series of a model.
var overallCmd = &cobra.Command{
	Use:   "overall <payload.json>",
	Short: "Show actual versus predicted values by date.",
	Long: `Align the actual and predicted series of a fitted model into one record per date.

Missing values stay missing: they print as "-" in tables, empty fields in CSV
and null in JSON.

Examples:
  # Show the fit of a model
  decomp overall spring_model.json

  # Export chart-ready rows
  decomp overall spring_model.json --output csv --output-file overall.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExecutor(core.ExecuteOverall, "cannot build overall series")
	},
}

// groupsCmd builds the contribution-by-group series.
var groupsCmd = &cobra.Command{
	Use:   "groups <payload.json>",
	Short: "Show contributions by group for a stacked chart.",
	Long: `Build one record per date holding the contribution of every group.

Group columns keep the order of the payload. The actual and predicted series
are never treated as groups.

Examples:
  # Show group contributions
  decomp groups spring_model.json

  # Write a parquet file for a notebook
  decomp groups spring_model.json --output parquet --output-file groups.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExecutor(core.ExecuteGroups, "cannot build group series")
	},
}

// drilldownCmd breaks one group into its variables.
var drilldownCmd = &cobra.Command{
	Use:   "drilldown <payload.json> --group <name>",
	Short: "Break a group down into its variables.",
	Long: `Build one record per date holding each variable of a group plus the group total.

The total is reported as given by the model. When it differs from the sum of
the variables, the largest difference is printed under the table.

Examples:
  # Drill into the media group
  decomp drilldown spring_model.json --group Media`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExecutor(core.ExecuteDrilldown, "cannot build drilldown series")
	},
}
