package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/internal/parquet"
	"github.com/mmmkit/decomp/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// comparisonCSVHeader is the column order of the CSV comparison output.
var comparisonCSVHeader = []string{
	"variable_name",
	"membership",
	"coef_a",
	"t_stat_a",
	"coef_b",
	"t_stat_b",
	"coef_change",
	"t_stat_change",
	"coef_pct_change",
	"t_stat_pct_change",
}

// PrintComparisonResults outputs a model comparison to stdout or the configured output file.
func PrintComparisonResults(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteComparisonResults(w, result, cfg, duration)
	}, fmt.Sprintf("Wrote %s comparison", cfg.Output))
}

// WriteComparisonResults outputs the comparison, dispatching based on the output format configured.
func WriteComparisonResults(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtOpt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForComparison(w, result, fmtOpt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteComparisonParquet(w, parquet.ConvertComparisonResult(result)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeComparisonTable(w, result, cfg, fmtFloat, fmtOpt, duration)
	}
	return nil
}

// writeComparisonTable writes the aligned variables with colour-coded deltas.
func writeComparisonTable(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string, fmtOpt func(*float64, string) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	// --- 1. Define Headers ---
	table.Header([]string{
		"Variable",
		"In",
		"Coef A",
		"Coef B",
		"Δ Coef",
		"Δ Coef %",
		"t A",
		"t B",
		"Δ t",
		"Δ t %",
	})

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	up, down, neutral := colorFuncs(cfg.UseColors)
	delta := func(v *float64, suffix string) string {
		if v == nil {
			return missingValue
		}
		switch {
		case *v > 0:
			return up("+" + fmtFloat(*v) + suffix + " ▲")
		case *v < 0:
			return down(fmtFloat(*v) + suffix + " ▼")
		default:
			return neutral(fmtFloat(*v) + suffix)
		}
	}

	labelWidth := getMaxLabelWidth(cfg, 10)
	data := make([][]string, 0, len(result.Rows))
	for _, r := range result.Rows {
		data = append(data, []string{
			contract.TruncateLabel(r.VariableName, labelWidth),
			string(r.Membership),
			fmtOpt(r.CoefA, missingValue),
			fmtOpt(r.CoefB, missingValue),
			delta(r.CoefChange, ""),
			delta(r.CoefPctChange, "%"),
			fmtOpt(r.TStatA, missingValue),
			fmtOpt(r.TStatB, missingValue),
			delta(r.TStatChange, ""),
			delta(r.TStatPctChange, "%"),
		})
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := result.Summary
	if _, err := fmt.Fprintf(w, "Comparing %s (A) with %s (B): %d variables\n", result.ModelA, result.ModelB, s.TotalVariables); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "In both: %d, Only in A: %d, Only in B: %d, Sign flips: %d\n", s.InBoth, s.OnlyInA, s.OnlyInB, s.SignFlips); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Comparison completed in %v. History backend: %s\n", duration, cfg.HistoryBackend)
	return err
}

// writeCSVResultsForComparison writes one CSV row per variable. Missing values are empty.
func writeCSVResultsForComparison(w io.Writer, result schema.ComparisonResult, fmtOpt func(*float64, string) string) error {
	return writeCSVWithHeader(w, comparisonCSVHeader, func(cw *csv.Writer) error {
		for _, r := range result.Rows {
			row := []string{
				r.VariableName,
				string(r.Membership),
				fmtOpt(r.CoefA, ""),
				fmtOpt(r.TStatA, ""),
				fmtOpt(r.CoefB, ""),
				fmtOpt(r.TStatB, ""),
				fmtOpt(r.CoefChange, ""),
				fmtOpt(r.TStatChange, ""),
				fmtOpt(r.CoefPctChange, ""),
				fmtOpt(r.TStatPctChange, ""),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row for %s: %w", r.VariableName, err)
			}
		}
		return nil
	})
}
