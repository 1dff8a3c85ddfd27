package outwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutWriter(t *testing.T) {
	ow := NewOutWriter()
	dir := t.TempDir()

	tests := []struct {
		name  string
		write func(cfg *contract.Config) error
		want  string
	}{
		{
			name:  "series",
			write: func(cfg *contract.Config) error { return ow.WriteSeries(drilldownResult(), cfg, 0) },
			want:  "Date,tv_spend",
		},
		{
			name:  "comparison",
			write: func(cfg *contract.Config) error { return ow.WriteComparison(comparisonResult(), cfg, 0) },
			want:  "variable_name,membership",
		},
		{
			name:  "colors",
			write: func(cfg *contract.Config) error { return ow.WriteColors(testColors, cfg) },
			want:  "Media,#4682B4",
		},
		{
			name:  "suggestions",
			write: func(cfg *contract.Config) error { return ow.WriteSuggestions(testSuggestions, cfg) },
			want:  "tv_spend,Media",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".csv")
			require.NoError(t, tt.write(&contract.Config{Output: schema.CSVOut, OutputFile: path}))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
		})
	}
}
