// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/mmmkit/decomp/schema"
)

// HistoryManager defines the interface for reaching the run history store.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for tracking engine runs.
type RunStore interface {
	// BeginRun creates a new run record and returns its unique ID
	BeginRun(kind schema.RunKind, model string, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run record with completion data
	EndRun(runID int64, endTime time.Time, totalRows int) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns returns every stored run ordered by ID
	GetAllRuns() ([]schema.RunRecord, error)

	// Close closes the underlying connection
	Close() error
}

// OutputWriter renders engine results in the configured output format.
type OutputWriter interface {
	WriteSeries(result schema.SeriesResult, cfg *Config, duration time.Duration) error
	WriteComparison(result schema.ComparisonResult, cfg *Config, duration time.Duration) error
	WriteColors(assignments []schema.ColorAssignment, cfg *Config) error
	WriteSuggestions(assignments []schema.GroupAssignment, cfg *Config) error
}
