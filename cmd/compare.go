package cmd

import (
	"github.com/mmmkit/decomp/core"
	"github.com/spf13/cobra"
)

// compareCmd compares variables between two fitted models.
var compareCmd = &cobra.Command{
	Use:   "compare <model-a.json> <model-b.json>",
	Short: "Compare coefficients and t-statistics between two models.",
	Long: `Align the variables of two fitted models and report how each one changed.

Every variable present in either model gets one row. The intercept (const)
comes first, the rest are sorted by name. Changes are B minus A; percentage
changes are relative to |A| and left empty when A is zero or missing.

Examples:
  # Compare two refits
  decomp compare spring_model.json summer_model.json

  # Keep the comparison for a report
  decomp compare spring_model.json summer_model.json --output csv --output-file diff.csv`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExecutor(core.ExecuteCompare, "cannot compare models")
	},
}
