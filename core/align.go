package core

import (
	"fmt"

	"github.com/mmmkit/decomp/schema"
)

// Align zips dates with every series into one record per date.
// Records keep the input index order; nothing is re-sorted. The call is
// atomic: any length mismatch or bad date fails the whole alignment.
func Align(dates []string, series schema.SeriesList) ([]schema.AlignedRecord, error) {
	n := len(dates)
	seen := make(map[string]struct{}, len(series))
	for _, ns := range series {
		if _, dup := seen[ns.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSeries, ns.Key)
		}
		seen[ns.Key] = struct{}{}
		if len(ns.Values) != n {
			return nil, fmt.Errorf("%w: series %q has %d values for %d dates", ErrShapeMismatch, ns.Key, len(ns.Values), n)
		}
	}

	records := make([]schema.AlignedRecord, n)
	for i, raw := range dates {
		ts, err := ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("date at index %d: %w", i, err)
		}
		values := make(map[string]*float64, len(series))
		for _, ns := range series {
			values[ns.Key] = copyFloat(ns.Values[i])
		}
		records[i] = schema.AlignedRecord{
			Date:      raw,
			Timestamp: ts,
			Values:    values,
		}
	}
	return records, nil
}

// AlignOverall builds the actual-vs-predicted view of a decomposition.
func AlignOverall(result schema.DecompositionResult) ([]schema.AlignedRecord, error) {
	return Align(result.Dates, schema.SeriesList{
		{Key: schema.ActualKey, Values: result.Actual},
		{Key: schema.PredictedKey, Values: result.Predicted},
	})
}

// copyFloat detaches a value from the caller's backing array.
func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
