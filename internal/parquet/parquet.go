// Package parquet provides data structures and functions for exporting
// decomposition series, model comparisons and run history to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mmmkit/decomp/schema"
	"github.com/parquet-go/parquet-go"
)

// HistoryRun represents a single tracked engine run.
// This struct maps to the decomp_runs database table.
type HistoryRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RunUUID is the globally unique identifier assigned when the run began
	RunUUID string `parquet:"run_uuid,snappy"`

	// Kind is the run kind (overall, groups, drilldown or compare)
	Kind string `parquet:"kind,snappy"`

	// Model is the model name, or "A vs B" for comparisons
	Model string `parquet:"model,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalRows is the number of records or comparison rows produced
	TotalRows int32 `parquet:"total_rows,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// SeriesPoint is one value of one series on one date, in long format.
type SeriesPoint struct {
	Model     string    `parquet:"model,snappy"`
	Kind      string    `parquet:"kind,snappy"`
	Group     string    `parquet:"group,snappy"`
	Date      string    `parquet:"date,snappy"`
	Timestamp time.Time `parquet:"timestamp,snappy"`
	Series    string    `parquet:"series,snappy"`

	// Value is nil when the upstream series had no value for the date
	Value *float64 `parquet:"value,optional,snappy"`
}

// ComparisonRecord is one variable row of a model comparison.
type ComparisonRecord struct {
	ModelA         string   `parquet:"model_a,snappy"`
	ModelB         string   `parquet:"model_b,snappy"`
	VariableName   string   `parquet:"variable_name,snappy"`
	Membership     string   `parquet:"membership,snappy"`
	CoefA          *float64 `parquet:"coef_a,optional,snappy"`
	TStatA         *float64 `parquet:"t_stat_a,optional,snappy"`
	CoefB          *float64 `parquet:"coef_b,optional,snappy"`
	TStatB         *float64 `parquet:"t_stat_b,optional,snappy"`
	CoefChange     *float64 `parquet:"coef_change,optional,snappy"`
	TStatChange    *float64 `parquet:"t_stat_change,optional,snappy"`
	CoefPctChange  *float64 `parquet:"coef_pct_change,optional,snappy"`
	TStatPctChange *float64 `parquet:"t_stat_pct_change,optional,snappy"`
}

// WriteHistoryRunsParquet writes a slice of HistoryRun structs to a Parquet file.
func WriteHistoryRunsParquet(data []HistoryRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return writeRows(file, data)
}

// WriteSeriesParquet writes series points to w.
func WriteSeriesParquet(w io.Writer, data []SeriesPoint) error {
	return writeRows(w, data)
}

// WriteComparisonParquet writes comparison records to w.
func WriteComparisonParquet(w io.Writer, data []ComparisonRecord) error {
	return writeRows(w, data)
}

// writeRows writes data with a schema inferred from the struct tags of T.
func writeRows[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes the row group and writes the footer
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertRunRecords converts schema.RunRecord to HistoryRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []HistoryRun {
	result := make([]HistoryRun, len(records))
	for i, record := range records {
		result[i] = HistoryRun{
			RunID:         record.RunID,
			RunUUID:       record.RunUUID,
			Kind:          string(record.Kind),
			Model:         record.Model,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalRows:     record.TotalRows,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertSeriesResult flattens a series result into one point per date and column.
func ConvertSeriesResult(result schema.SeriesResult) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(result.Records)*len(result.Columns))
	for _, rec := range result.Records {
		for _, col := range result.Columns {
			v, _ := rec.Value(col)
			points = append(points, SeriesPoint{
				Model:     result.Model,
				Kind:      string(result.Kind),
				Group:     result.Group,
				Date:      rec.Date,
				Timestamp: rec.Timestamp,
				Series:    col,
				Value:     v,
			})
		}
	}
	return points
}

// ConvertComparisonResult converts comparison rows for Parquet export.
func ConvertComparisonResult(result schema.ComparisonResult) []ComparisonRecord {
	out := make([]ComparisonRecord, len(result.Rows))
	for i, row := range result.Rows {
		out[i] = ComparisonRecord{
			ModelA:         result.ModelA,
			ModelB:         result.ModelB,
			VariableName:   row.VariableName,
			Membership:     string(row.Membership),
			CoefA:          row.CoefA,
			TStatA:         row.TStatA,
			CoefB:          row.CoefB,
			TStatB:         row.TStatB,
			CoefChange:     row.CoefChange,
			TStatChange:    row.TStatChange,
			CoefPctChange:  row.CoefPctChange,
			TStatPctChange: row.TStatPctChange,
		}
	}
	return out
}
