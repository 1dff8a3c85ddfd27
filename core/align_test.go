package core

import (
	"testing"
	"time"

	"github.com/mmmkit/decomp/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(key string, values ...*float64) schema.NamedSeries {
	return schema.NamedSeries{Key: key, Values: values}
}

func f(v float64) *float64 { return schema.Float(v) }

func TestAlign(t *testing.T) {
	dates := []string{"2024-01-01", "2024-02-01"}
	list := schema.SeriesList{
		series("Base", f(10), f(12)),
		series("Media", f(5), nil),
	}

	records, err := Align(dates, list)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2024-01-01", records[0].Date)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), records[0].Timestamp)
	assert.Equal(t, 10.0, *records[0].Values["Base"])
	assert.Equal(t, 5.0, *records[0].Values["Media"])

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), records[1].Timestamp)
	assert.Equal(t, 12.0, *records[1].Values["Base"])
	v, ok := records[1].Values["Media"]
	assert.True(t, ok, "missing values keep their key")
	assert.Nil(t, v)
}

func TestAlignKeepsInputOrder(t *testing.T) {
	dates := []string{"2024-03-01", "2024-01-01", "2024-02-01"}
	records, err := Align(dates, schema.SeriesList{series("x", f(1), f(2), f(3))})
	require.NoError(t, err)

	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.Date
	}
	assert.Equal(t, dates, got)
}

func TestAlignErrors(t *testing.T) {
	tests := []struct {
		name    string
		dates   []string
		list    schema.SeriesList
		wantErr error
	}{
		{
			name:    "series shorter than dates",
			dates:   []string{"2024-01-01", "2024-01-02"},
			list:    schema.SeriesList{series("Base", f(1))},
			wantErr: ErrShapeMismatch,
		},
		{
			name:    "series longer than dates",
			dates:   []string{"2024-01-01"},
			list:    schema.SeriesList{series("Base", f(1), f(2))},
			wantErr: ErrShapeMismatch,
		},
		{
			name:    "impossible calendar date",
			dates:   []string{"2024-01-01", "2024-02-30"},
			list:    schema.SeriesList{series("Base", f(1), f(2))},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "garbage date",
			dates:   []string{"soon"},
			list:    schema.SeriesList{series("Base", f(1))},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "duplicate key",
			dates:   []string{"2024-01-01"},
			list:    schema.SeriesList{series("Base", f(1)), series("Base", f(2))},
			wantErr: ErrDuplicateSeries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Align(tt.dates, tt.list)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, records)
		})
	}
}

func TestAlignEmpty(t *testing.T) {
	records, err := Align(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = Align([]string{"2024-01-01"}, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Values)
}

func TestAlignCopiesValues(t *testing.T) {
	v := f(7)
	records, err := Align([]string{"2024-01-01"}, schema.SeriesList{series("Base", v)})
	require.NoError(t, err)

	*v = 99
	assert.Equal(t, 7.0, *records[0].Values["Base"])
}

func TestAlignOverall(t *testing.T) {
	result := schema.DecompositionResult{
		Dates:     []string{"2024-01-01", "2024-01-08"},
		Actual:    []*float64{f(100), f(110)},
		Predicted: []*float64{f(98), nil},
	}

	records, err := AlignOverall(result)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 100.0, *records[0].Values[schema.ActualKey])
	assert.Equal(t, 98.0, *records[0].Values[schema.PredictedKey])
	assert.Nil(t, records[1].Values[schema.PredictedKey])

	result.Predicted = []*float64{f(1)}
	_, err = AlignOverall(result)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{" 2024-06-30 ", time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01T12:30:00Z", time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2024-01-01 08:00:00", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		{"2024-01-01T08:00:00", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		{"2024/03/15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}

	for _, bad := range []string{"", "   ", "2023-02-29", "13/01/2024", "2024-13-01"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}
