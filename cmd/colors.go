package cmd

import (
	"github.com/mmmkit/decomp/core"
	"github.com/spf13/cobra"
)

// colorsCmd resolves display colours for series keys.
var colorsCmd = &cobra.Command{
	Use:   "colors <key>...",
	Short: "Resolve stable display colours for series keys.",
	Long: `Print the colour each key would be drawn with.

Overrides from --colors-file win, then the curated colours of well-known
groups, then a palette entry picked by hashing the key. With --variables the
keys are treated as the variables of one group and coloured by position.

Examples:
  decomp colors Base Media Loyalty
  decomp colors tv_spend radio_spend --variables
  decomp colors Media --colors-file brand-colors.yaml`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExecutor(core.ExecuteColors, "cannot resolve colors")
	},
}

// suggestCmd suggests default groups for variables.
var suggestCmd = &cobra.Command{
	Use:   "suggest <variable>... | <payload.json>",
	Short: "Suggest a default group for each variable.",
	Long: `Classify variable names into default groups by keyword.

Pass variable names, or a single payload file whose variables should be
classified.

Examples:
  decomp suggest tv_spend avg_price holiday_flag
  decomp suggest spring_model.json --output json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExecutor(core.ExecuteSuggest, "cannot suggest groups")
	},
}
