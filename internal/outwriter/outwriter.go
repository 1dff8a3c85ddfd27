// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.OutputWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSeries prints an aligned series using the configured output format.
func (ow *OutWriter) WriteSeries(result schema.SeriesResult, cfg *contract.Config, duration time.Duration) error {
	return PrintSeriesResults(result, cfg, duration)
}

// WriteComparison prints a model comparison using the configured output format.
func (ow *OutWriter) WriteComparison(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return PrintComparisonResults(result, cfg, duration)
}

// WriteColors prints colour assignments using the configured output format.
func (ow *OutWriter) WriteColors(assignments []schema.ColorAssignment, cfg *contract.Config) error {
	return PrintColorAssignments(assignments, cfg)
}

// WriteSuggestions prints group suggestions using the configured output format.
func (ow *OutWriter) WriteSuggestions(assignments []schema.GroupAssignment, cfg *contract.Config) error {
	return PrintGroupSuggestions(assignments, cfg)
}
