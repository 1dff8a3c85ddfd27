package core

import (
	"strings"

	"github.com/mmmkit/decomp/schema"
)

// IsReservedKey reports whether key names the actual or predicted series,
// which never count as contribution groups.
func IsReservedKey(key string) bool {
	return strings.EqualFold(key, schema.ActualKey) || strings.EqualFold(key, schema.PredictedKey)
}

// GroupKeys returns the contribution keys that are groups, in upstream order.
func GroupKeys(contributions schema.SeriesList) []string {
	keys := make([]string, 0, len(contributions))
	for _, ns := range contributions {
		if !IsReservedKey(ns.Key) {
			keys = append(keys, ns.Key)
		}
	}
	return keys
}

// AggregateGroups builds the stacked contribution-by-group series.
func AggregateGroups(result schema.DecompositionResult) (schema.GroupSeries, error) {
	groups := make(schema.SeriesList, 0, len(result.Contributions))
	for _, ns := range result.Contributions {
		if !IsReservedKey(ns.Key) {
			groups = append(groups, ns)
		}
	}

	records, err := Align(result.Dates, groups)
	if err != nil {
		return schema.GroupSeries{}, err
	}
	return schema.GroupSeries{
		GroupKeys: groups.Keys(),
		Records:   records,
	}, nil
}
