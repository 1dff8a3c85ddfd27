package core

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mmmkit/decomp/schema"
)

// Compare aligns two models' variables by name and computes the change of
// each coefficient and t-stat from model A to model B.
func Compare(a, b []schema.VariableSnapshot) ([]schema.ComparisonRow, error) {
	mapA, err := indexSnapshots(a, "A")
	if err != nil {
		return nil, err
	}
	mapB, err := indexSnapshots(b, "B")
	if err != nil {
		return nil, err
	}

	// 1. Collect the union of names
	allNames := make(map[string]struct{}, len(mapA)+len(mapB))
	for name := range mapA {
		allNames[name] = struct{}{}
	}
	for name := range mapB {
		allNames[name] = struct{}{}
	}

	// 2. Build one row per name
	rows := make([]schema.ComparisonRow, 0, len(allNames))
	for name := range allNames {
		snapA, inA := mapA[name]
		snapB, inB := mapB[name]

		row := schema.ComparisonRow{
			VariableName: name,
			PresentInA:   inA,
			PresentInB:   inB,
			Membership:   determineMembership(inA, inB),
		}
		if inA {
			row.CoefA = copyFloat(snapA.Coefficient)
			row.TStatA = copyFloat(snapA.TStat)
		}
		if inB {
			row.CoefB = copyFloat(snapB.Coefficient)
			row.TStatB = copyFloat(snapB.TStat)
		}
		row.CoefChange = absoluteChange(row.CoefA, row.CoefB)
		row.TStatChange = absoluteChange(row.TStatA, row.TStatB)
		row.CoefPctChange = pctChange(row.CoefA, row.CoefB)
		row.TStatPctChange = pctChange(row.TStatA, row.TStatB)
		rows = append(rows, row)
	}

	// 3. Order deterministically
	sortComparisonRows(rows)
	return rows, nil
}

// CompareModels wraps Compare and summarizes the result.
func CompareModels(nameA string, a []schema.VariableSnapshot, nameB string, b []schema.VariableSnapshot) (schema.ComparisonResult, error) {
	rows, err := Compare(a, b)
	if err != nil {
		return schema.ComparisonResult{}, err
	}

	summary := schema.ComparisonSummary{TotalVariables: len(rows)}
	for _, r := range rows {
		switch r.Membership {
		case schema.BothMembership:
			summary.InBoth++
			if signFlipped(r.CoefA, r.CoefB) {
				summary.SignFlips++
			}
		case schema.OnlyAMembership:
			summary.OnlyInA++
		case schema.OnlyBMembership:
			summary.OnlyInB++
		}
	}

	return schema.ComparisonResult{ModelA: nameA, ModelB: nameB, Rows: rows, Summary: summary}, nil
}

// indexSnapshots keys snapshots by name, rejecting duplicates within one side.
func indexSnapshots(snaps []schema.VariableSnapshot, side string) (map[string]schema.VariableSnapshot, error) {
	m := make(map[string]schema.VariableSnapshot, len(snaps))
	for _, s := range snaps {
		if _, dup := m[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q appears more than once in model %s", ErrDuplicateVariable, s.Name, side)
		}
		m[s.Name] = s
	}
	return m, nil
}

// determineMembership returns which side(s) a variable was found on.
func determineMembership(inA, inB bool) schema.Membership {
	switch {
	case inA && inB:
		return schema.BothMembership
	case inA:
		return schema.OnlyAMembership
	default:
		return schema.OnlyBMembership
	}
}

// pctChange is (b-a)/|a|*100, or nil when either side is missing or a is zero.
func pctChange(a, b *float64) *float64 {
	if a == nil || b == nil || *a == 0 {
		return nil
	}
	return schema.Float((*b - *a) / math.Abs(*a) * 100)
}

// absoluteChange is b-a, or nil when either side is missing.
func absoluteChange(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	return schema.Float(*b - *a)
}

func signFlipped(a, b *float64) bool {
	if a == nil || b == nil || *a == 0 || *b == 0 {
		return false
	}
	return (*a > 0) != (*b > 0)
}

// sortComparisonRows puts the intercept first, then everything else by byte-wise name.
func sortComparisonRows(rows []schema.ComparisonRow) {
	sort.Slice(rows, func(i, j int) bool {
		a := rows[i].VariableName
		b := rows[j].VariableName

		// Primary: const before anything else
		if (a == schema.ConstVariable) != (b == schema.ConstVariable) {
			return a == schema.ConstVariable
		}

		// Secondary: case-sensitive name (ascending)
		return strings.Compare(a, b) < 0
	})
}
