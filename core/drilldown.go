package core

import (
	"fmt"

	"github.com/mmmkit/decomp/schema"
)

// BuildGroupSeries builds the contribution-by-variable series for one group.
// Total is carried through from the upstream result as-is.
func BuildGroupSeries(result schema.GroupDecompositionResult) ([]schema.AlignedRecord, error) {
	selected := make(schema.SeriesList, 0, len(result.Variables))
	seen := make(map[string]struct{}, len(result.Variables))
	for _, name := range result.Variables {
		// The total is emitted under TotalColumn, so a variable of that name would shadow it.
		if name == schema.TotalColumn {
			return nil, fmt.Errorf("%w: variable %q in group %q collides with the total column", ErrDuplicateSeries, name, result.Group)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: variable %q listed twice in group %q", ErrDuplicateSeries, name, result.Group)
		}
		seen[name] = struct{}{}

		values, ok := result.Contributions.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q in group %q", ErrMissingVariableSeries, name, result.Group)
		}
		selected = append(selected, schema.NamedSeries{Key: name, Values: values})
	}

	if len(result.Total) != len(result.Dates) {
		return nil, fmt.Errorf("%w: total has %d values for %d dates", ErrShapeMismatch, len(result.Total), len(result.Dates))
	}

	records, err := Align(result.Dates, selected)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Total = copyFloat(result.Total[i])
	}
	return records, nil
}

// ReconciliationGaps returns Total minus the sum of the variables per record.
// A gap is nil when the total or any variable value is missing.
func ReconciliationGaps(records []schema.AlignedRecord, variables []string) []*float64 {
	gaps := make([]*float64, len(records))
	for i, rec := range records {
		if rec.Total == nil {
			continue
		}
		sum, complete := 0.0, true
		for _, name := range variables {
			v := rec.Values[name]
			if v == nil {
				complete = false
				break
			}
			sum += *v
		}
		if complete {
			gaps[i] = schema.Float(*rec.Total - sum)
		}
	}
	return gaps
}
