package runstore

import (
	"errors"
	"fmt"
	"io"

	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/internal/parquet"
)

// ExecuteHistoryExport exports the run history of the global manager to
// <outputFile>.runs.parquet.
func ExecuteHistoryExport(out io.Writer, outputFile string) error {
	return exportHistory(out, Manager, outputFile)
}

func exportHistory(out io.Writer, mgr contract.HistoryManager, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := mgr.GetRunStore()
	if store == nil {
		return errors.New("run history is not enabled; set --history-backend")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	_, _ = fmt.Fprintf(out, "Exporting run history from %s backend...\n", status.Backend)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteHistoryRunsParquet(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Exported %d runs to: %s\n", len(runs), runsFile)
	return nil
}
