package outwriter

import (
	"os"

	"github.com/mmmkit/decomp/internal/contract"
	"golang.org/x/term"
)

// Label width bounds for table headers.
const (
	minLabelWidth = 6
	maxLabelWidth = 24
	dateColWidth  = 12
)

// terminalWidth returns the configured or detected terminal width.
func terminalWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return 80
	}
	return detectedWidth
}

// getMaxLabelWidth splits the terminal width evenly between numCols value
// columns after reserving the date column.
func getMaxLabelWidth(cfg *contract.Config, numCols int) int {
	if numCols <= 0 {
		return maxLabelWidth
	}

	// Each column costs separators and padding on top of its label
	available := (terminalWidth(cfg)-dateColWidth)/numCols - 3
	if available < minLabelWidth {
		return minLabelWidth
	}
	if available > maxLabelWidth {
		return maxLabelWidth
	}
	return available
}
