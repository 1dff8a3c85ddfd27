package outwriter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColors = []schema.ColorAssignment{
	{Key: "Media", Color: "#4682B4", Source: schema.WellKnownColorSource},
	{Key: "Loyalty", Color: "#2ca02c", Source: schema.HashColorSource},
}

var testSuggestions = []schema.GroupAssignment{
	{Variable: "tv_spend", Group: schema.MediaGroup},
	{Variable: "avg_price", Group: schema.PriceGroup},
}

func TestWriteColorAssignments(t *testing.T) {
	tests := []struct {
		name     string
		output   schema.OutputMode
		contains []string
		wantErr  bool
	}{
		{name: "text", output: schema.TextOut, contains: []string{"Media", "#4682B4", "well-known"}},
		{name: "csv", output: schema.CSVOut, contains: []string{"key,color,source\n", "Loyalty,#2ca02c,hash\n"}},
		{name: "json", output: schema.JSONOut, contains: []string{`"key": "Media"`, `"source": "hash"`}},
		{name: "parquet", output: schema.ParquetOut, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteColorAssignments(&buf, testColors, &contract.Config{Output: tt.output})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWriteGroupSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		output   schema.OutputMode
		contains []string
		wantErr  bool
	}{
		{name: "text", output: schema.TextOut, contains: []string{"tv_spend", "Media", "Price"}},
		{name: "csv", output: schema.CSVOut, contains: []string{"variable,group\n", "avg_price,Price\n"}},
		{name: "parquet", output: schema.ParquetOut, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteGroupSuggestions(&buf, testSuggestions, &contract.Config{Output: tt.output})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteGroupSuggestions(&buf, testSuggestions, &contract.Config{Output: schema.JSONOut}))
		var decoded []schema.GroupAssignment
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, testSuggestions, decoded)
	})
}
