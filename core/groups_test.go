package core

import (
	"testing"

	"github.com/mmmkit/decomp/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReservedKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"actual", true},
		{"Actual", true},
		{"PREDICTED", true},
		{"predicted", true},
		{"actuals", false},
		{"Base", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsReservedKey(tt.key), "key %q", tt.key)
	}
}

func TestAggregateGroups(t *testing.T) {
	result := schema.DecompositionResult{
		Dates: []string{"2024-01-01", "2024-02-01"},
		Contributions: schema.SeriesList{
			series("Base", f(10), f(12)),
			series("Media", f(5), f(8)),
		},
	}

	got, err := AggregateGroups(result)
	require.NoError(t, err)

	assert.Equal(t, []string{"Base", "Media"}, got.GroupKeys)
	require.Len(t, got.Records, 2)
	assert.Equal(t, 10.0, *got.Records[0].Values["Base"])
	assert.Equal(t, 5.0, *got.Records[0].Values["Media"])
	assert.Equal(t, 12.0, *got.Records[1].Values["Base"])
	assert.Equal(t, 8.0, *got.Records[1].Values["Media"])
}

func TestAggregateGroupsSkipsReservedKeys(t *testing.T) {
	result := schema.DecompositionResult{
		Dates: []string{"2024-01-01"},
		Contributions: schema.SeriesList{
			series("Media", f(1)),
			series("Actual", f(100)),
			series("Base", f(2)),
			series("predicted", f(99)),
		},
	}

	got, err := AggregateGroups(result)
	require.NoError(t, err)
	assert.Equal(t, []string{"Media", "Base"}, got.GroupKeys)
	assert.NotContains(t, got.Records[0].Values, "Actual")
	assert.NotContains(t, got.Records[0].Values, "predicted")
	assert.Equal(t, got.GroupKeys, GroupKeys(result.Contributions))
}

func TestAggregateGroupsPreservesUpstreamOrder(t *testing.T) {
	result := schema.DecompositionResult{
		Dates: []string{"2024-01-01"},
		Contributions: schema.SeriesList{
			series("Weather", f(1)),
			series("Base", f(2)),
			series("Competition", f(3)),
			series("Media", f(4)),
		},
	}

	got, err := AggregateGroups(result)
	require.NoError(t, err)
	assert.Equal(t, []string{"Weather", "Base", "Competition", "Media"}, got.GroupKeys)
}

func TestAggregateGroupsShapeMismatch(t *testing.T) {
	result := schema.DecompositionResult{
		Dates:         []string{"2024-01-01", "2024-02-01"},
		Contributions: schema.SeriesList{series("Base", f(1))},
	}

	_, err := AggregateGroups(result)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAggregateGroupsNoGroups(t *testing.T) {
	result := schema.DecompositionResult{
		Dates:         []string{"2024-01-01"},
		Contributions: schema.SeriesList{series("actual", f(1))},
	}

	got, err := AggregateGroups(result)
	require.NoError(t, err)
	assert.Empty(t, got.GroupKeys)
	require.Len(t, got.Records, 1)
}
