package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparisonResult() schema.ComparisonResult {
	return schema.ComparisonResult{
		ModelA: "baseline",
		ModelB: "refit",
		Rows: []schema.ComparisonRow{
			{
				VariableName: "const", PresentInA: true, PresentInB: true, Membership: schema.BothMembership,
				CoefA: schema.Float(2), TStatA: schema.Float(4), CoefB: schema.Float(3), TStatB: schema.Float(3),
				CoefChange: schema.Float(1), TStatChange: schema.Float(-1),
				CoefPctChange: schema.Float(50), TStatPctChange: schema.Float(-25),
			},
			{
				VariableName: "tv_spend", PresentInA: true, Membership: schema.OnlyAMembership,
				CoefA: schema.Float(0.5), TStatA: schema.Float(2.1),
			},
		},
		Summary: schema.ComparisonSummary{TotalVariables: 2, InBoth: 1, OnlyInA: 1},
	}
}

func TestWriteComparisonResults_Text(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 2, Width: 160, HistoryBackend: schema.SQLiteBackend}

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonResults(&buf, comparisonResult(), cfg, time.Millisecond))
	out := buf.String()

	assert.Contains(t, out, "+1.00 ▲")
	assert.Contains(t, out, "+50.00% ▲")
	assert.Contains(t, out, "-1.00 ▼")
	assert.Contains(t, out, "-25.00% ▼", "t-stat percentage change")
	assert.Contains(t, out, "only_a")
	assert.Contains(t, out, "Comparing baseline (A) with refit (B): 2 variables")
	assert.Contains(t, out, "In both: 1, Only in A: 1, Only in B: 0, Sign flips: 0")
	assert.Contains(t, out, "History backend: sqlite")
}

func TestWriteComparisonResults_CSV(t *testing.T) {
	cfg := &contract.Config{Output: schema.CSVOut, Precision: 1}

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonResults(&buf, comparisonResult(), cfg, 0))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(comparisonCSVHeader, ","), lines[0])
	assert.Equal(t, "const,both,2.0,4.0,3.0,3.0,1.0,-1.0,50.0,-25.0", lines[1])
	assert.Equal(t, "tv_spend,only_a,0.5,2.1,,,,,,", lines[2])
}

func TestWriteComparisonResults_JSON(t *testing.T) {
	cfg := &contract.Config{Output: schema.JSONOut}

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonResults(&buf, comparisonResult(), cfg, 0))

	var decoded schema.ComparisonResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "refit", decoded.ModelB)
	require.Len(t, decoded.Rows, 2)
	assert.Nil(t, decoded.Rows[1].CoefB)
	assert.Equal(t, 1, decoded.Summary.OnlyInA)
}

func TestWriteComparisonResults_Parquet(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonResults(&buf, comparisonResult(), cfg, 0))
	assert.Equal(t, "PAR1", buf.String()[:4])
}
