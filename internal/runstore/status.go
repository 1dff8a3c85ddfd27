package runstore

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/mmmkit/decomp/schema"
)

// PrintHistoryStatus prints run history status information.
func PrintHistoryStatus(w io.Writer, status schema.HistoryStatus) {
	_, _ = fmt.Fprintf(w, "History Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Runs: %s\n", humanize.Comma(int64(status.TotalRuns)))
	if status.TotalRuns == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "Last Run ID: %d\n", status.LastRunID)
	_, _ = fmt.Fprintf(w, "Last Run: %s (%s)\n", status.LastRunTime.Format("2006-01-02 15:04:05"), humanize.Time(status.LastRunTime))
	_, _ = fmt.Fprintf(w, "Oldest Run: %s (%s)\n", status.OldestRunTime.Format("2006-01-02 15:04:05"), humanize.Time(status.OldestRunTime))
	_, _ = fmt.Fprintf(w, "Total Rows Produced: %s\n", humanize.Comma(status.TotalRows))
	_, _ = fmt.Fprintln(w, "Runs by Kind:")
	for _, kind := range schema.AllRunKinds {
		if n, ok := status.RunsByKind[kind]; ok {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", kind, humanize.Comma(int64(n)))
		}
	}
}
