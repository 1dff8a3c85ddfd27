package outwriter

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/mmmkit/decomp/core"
	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/internal/parquet"
	"github.com/mmmkit/decomp/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSeriesResults outputs a series bundle to stdout or the configured output file.
func PrintSeriesResults(result schema.SeriesResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteSeriesResults(w, result, cfg, duration)
	}, fmt.Sprintf("Wrote %s %s series", cfg.Output, result.Kind))
}

// WriteSeriesResults writes the series bundle, dispatching based on the output format configured.
func WriteSeriesResults(w io.Writer, result schema.SeriesResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := core.WriteCSV(w, result.Records, result.Columns); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteSeriesParquet(w, parquet.ConvertSeriesResult(result)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		if err := writeSeriesTable(w, result, cfg, duration); err != nil {
			return fmt.Errorf("error writing series table output: %w", err)
		}
	}
	return nil
}

// writeSeriesTable renders one row per date with a column per series.
func writeSeriesTable(w io.Writer, result schema.SeriesResult, cfg *contract.Config, duration time.Duration) error {
	_, fmtOpt := createFormatters(cfg.Precision)
	labelWidth := getMaxLabelWidth(cfg, len(result.Columns))

	if err := writeSeriesTitle(w, result, cfg); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	// --- 1. Define Headers ---
	headers := make([]string, 0, len(result.Columns)+1)
	headers = append(headers, schema.DateColumn)
	for _, col := range result.Columns {
		headers = append(headers, contract.TruncateLabel(col, labelWidth))
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	data := make([][]string, 0, len(result.Records))
	for _, rec := range result.Records {
		row := make([]string, 0, len(headers))
		row = append(row, rec.Date)
		for _, col := range result.Columns {
			v, _ := rec.Value(col)
			row = append(row, fmtOpt(v, missingValue))
		}
		data = append(data, row)
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if err := writeColorLegend(w, result, cfg, labelWidth); err != nil {
		return err
	}
	if result.Kind == schema.DrilldownRun {
		if maxGap, ok := maxAbsGap(result.Gaps); ok {
			if _, err := fmt.Fprintf(w, "Max reconciliation gap: %.*f\n", cfg.Precision, maxGap); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d periods, %d series. Completed in %v. History backend: %s\n",
		len(result.Records), len(result.Columns), duration, cfg.HistoryBackend)
	return err
}

func writeSeriesTitle(w io.Writer, result schema.SeriesResult, cfg *contract.Config) error {
	title := fmt.Sprintf("%s series for model %q", result.Kind, result.Model)
	if result.Group != "" {
		title = fmt.Sprintf("%s (group %q)", title, result.Group)
	}
	if cfg.UseColors {
		title = contract.HeaderColor.Sprint(title)
	}
	_, err := fmt.Fprintln(w, title)
	return err
}

// writeColorLegend lists the display colour of every coloured column.
func writeColorLegend(w io.Writer, result schema.SeriesResult, cfg *contract.Config, labelWidth int) error {
	if len(result.Colors) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Colors:"); err != nil {
		return err
	}
	for _, col := range result.Columns {
		hex, ok := result.Colors[col]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %-*s %s", labelWidth, contract.TruncateLabel(col, labelWidth), hex)
		if s := swatch(hex, cfg.UseColors); s != "" {
			line += " " + s
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// maxAbsGap returns the largest absolute gap, ignoring missing entries.
func maxAbsGap(gaps []*float64) (float64, bool) {
	var maxGap float64
	found := false
	for _, g := range gaps {
		if g == nil {
			continue
		}
		if a := math.Abs(*g); !found || a > maxGap {
			maxGap = a
			found = true
		}
	}
	return maxGap, found
}
