package parquet

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmmkit/decomp/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRunRecords() []schema.RunRecord {
	now := time.Now()
	end := now.Add(1500 * time.Millisecond)
	durationMs := int32(1500)
	params := `{"group":"Media","output":"csv"}`

	return []schema.RunRecord{
		{
			RunID:         1,
			RunUUID:       "0f8fad5b-d9cb-469f-a165-70867728950e",
			Kind:          schema.DrilldownRun,
			Model:         "spring",
			StartTime:     now,
			EndTime:       &end,
			RunDurationMs: &durationMs,
			TotalRows:     52,
			ConfigParams:  &params,
		},
		{
			RunID:     2,
			RunUUID:   "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			Kind:      schema.CompareRun,
			Model:     "spring vs summer",
			StartTime: now.Add(time.Minute),
			// Unfinished run: nullable fields stay nil
		},
	}
}

func readAll[T any](t *testing.T, r *bytes.Reader) []T {
	t.Helper()
	reader := parquet.NewGenericReader[T](r)
	defer func() { _ = reader.Close() }()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	return rows[:n]
}

func TestHistoryRunStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(HistoryRun))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"run_id",
		"run_uuid",
		"kind",
		"model",
		"start_time",
		"end_time",
		"run_duration_ms",
		"total_rows",
		"config_params",
	}
	for _, colName := range expectedColumns {
		_, ok := sch.Lookup(colName)
		assert.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteHistoryRunsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "history.runs.parquet")
	data := ConvertRunRecords(sampleRunRecords())

	require.NoError(t, WriteHistoryRunsParquet(data, outputPath))

	raw, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	got := readAll[HistoryRun](t, bytes.NewReader(raw))
	require.Len(t, got, len(data))

	for i := range data {
		assert.Equal(t, data[i].RunID, got[i].RunID)
		assert.Equal(t, data[i].RunUUID, got[i].RunUUID)
		assert.Equal(t, data[i].Kind, got[i].Kind)
		assert.Equal(t, data[i].Model, got[i].Model)
		assert.Equal(t, data[i].TotalRows, got[i].TotalRows)

		if data[i].EndTime == nil {
			assert.Nil(t, got[i].EndTime)
		} else {
			require.NotNil(t, got[i].EndTime)
			assert.WithinDuration(t, *data[i].EndTime, *got[i].EndTime, time.Microsecond)
		}
		if data[i].ConfigParams == nil {
			assert.Nil(t, got[i].ConfigParams)
		} else {
			require.NotNil(t, got[i].ConfigParams)
			assert.Equal(t, *data[i].ConfigParams, *got[i].ConfigParams)
		}
	}
}

func TestWriteHistoryRunsParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")

	require.NoError(t, WriteHistoryRunsParquet([]HistoryRun{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteHistoryRunsParquet_InvalidPath(t *testing.T) {
	err := WriteHistoryRunsParquet(ConvertRunRecords(sampleRunRecords()), "/nonexistent/directory/output.parquet")
	require.Error(t, err)
}

func TestConvertSeriesResult(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	result := schema.SeriesResult{
		Kind:    schema.DrilldownRun,
		Model:   "spring",
		Group:   "Media",
		Columns: []string{"tv", schema.TotalColumn},
		Records: []schema.AlignedRecord{
			{Date: "2024-01-01", Timestamp: ts, Values: map[string]*float64{"tv": schema.Float(3)}, Total: schema.Float(4)},
			{Date: "2024-01-08", Timestamp: ts.AddDate(0, 0, 7), Values: map[string]*float64{"tv": nil}},
		},
	}

	points := ConvertSeriesResult(result)
	require.Len(t, points, 4)

	assert.Equal(t, SeriesPoint{
		Model: "spring", Kind: "drilldown", Group: "Media",
		Date: "2024-01-01", Timestamp: ts, Series: "tv", Value: schema.Float(3),
	}, points[0])
	assert.Equal(t, schema.TotalColumn, points[1].Series)
	assert.Equal(t, 4.0, *points[1].Value)
	assert.Nil(t, points[2].Value)
	assert.Nil(t, points[3].Value)
}

func TestWriteSeriesParquet(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := []SeriesPoint{
		{Model: "m", Kind: "groups", Date: "2024-01-01", Timestamp: ts, Series: "Base", Value: schema.Float(10)},
		{Model: "m", Kind: "groups", Date: "2024-01-01", Timestamp: ts, Series: "Media", Value: nil},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSeriesParquet(&buf, points))

	got := readAll[SeriesPoint](t, bytes.NewReader(buf.Bytes()))
	require.Len(t, got, 2)
	assert.Equal(t, "Base", got[0].Series)
	assert.Equal(t, 10.0, *got[0].Value)
	assert.Nil(t, got[1].Value)
}

func TestWriteComparisonParquet(t *testing.T) {
	result := schema.ComparisonResult{
		ModelA: "spring",
		ModelB: "summer",
		Rows: []schema.ComparisonRow{
			{
				VariableName: "const", PresentInA: true, PresentInB: true, Membership: schema.BothMembership,
				CoefA: schema.Float(2), CoefB: schema.Float(3), CoefChange: schema.Float(1), CoefPctChange: schema.Float(50),
			},
			{VariableName: "tv", PresentInB: true, Membership: schema.OnlyBMembership, CoefB: schema.Float(0.2)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonParquet(&buf, ConvertComparisonResult(result)))

	got := readAll[ComparisonRecord](t, bytes.NewReader(buf.Bytes()))
	require.Len(t, got, 2)
	assert.Equal(t, "spring", got[0].ModelA)
	assert.Equal(t, "both", got[0].Membership)
	assert.Equal(t, 50.0, *got[0].CoefPctChange)
	assert.Equal(t, "only_b", got[1].Membership)
	assert.Nil(t, got[1].CoefA)
	assert.Nil(t, got[1].CoefPctChange)
}
