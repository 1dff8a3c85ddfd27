package core

import (
	"testing"

	"github.com/mmmkit/decomp/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(name string, coef, tstat *float64) schema.VariableSnapshot {
	return schema.VariableSnapshot{Name: name, Coefficient: coef, TStat: tstat}
}

func rowNames(rows []schema.ComparisonRow) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.VariableName
	}
	return names
}

func TestCompareInterceptExample(t *testing.T) {
	a := []schema.VariableSnapshot{snap("const", f(2), f(4))}
	b := []schema.VariableSnapshot{snap("const", f(3), f(4))}

	rows, err := Compare(a, b)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, schema.BothMembership, r.Membership)
	assert.True(t, r.PresentInA)
	assert.True(t, r.PresentInB)
	assert.InDelta(t, 1.0, *r.CoefChange, 1e-9)
	assert.InDelta(t, 0.0, *r.TStatChange, 1e-9)
	assert.InDelta(t, 50.0, *r.CoefPctChange, 1e-9)
	assert.InDelta(t, 0.0, *r.TStatPctChange, 1e-9)
}

func TestCompareOrdering(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{
			name: "const first then byte order",
			a:    []string{"b", "const"},
			b:    []string{"a"},
			want: []string{"const", "a", "b"},
		},
		{
			name: "case-sensitive ordering",
			a:    []string{"tv", "Price", "const"},
			b:    []string{"Media", "tv"},
			want: []string{"const", "Media", "Price", "tv"},
		},
		{
			name: "no intercept",
			a:    []string{"z", "y"},
			b:    []string{"x"},
			want: []string{"x", "y", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a, b []schema.VariableSnapshot
			for _, n := range tt.a {
				a = append(a, snap(n, f(1), f(1)))
			}
			for _, n := range tt.b {
				b = append(b, snap(n, f(1), f(1)))
			}
			rows, err := Compare(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rowNames(rows))
		})
	}
}

func TestCompareMembership(t *testing.T) {
	a := []schema.VariableSnapshot{snap("const", f(1), f(2)), snap("price", f(-0.5), f(-3))}
	b := []schema.VariableSnapshot{snap("const", f(1), f(2)), snap("tv", f(0.2), f(1.5))}

	rows, err := Compare(a, b)
	require.NoError(t, err)
	require.Equal(t, []string{"const", "price", "tv"}, rowNames(rows))

	onlyA := rows[1]
	assert.Equal(t, schema.OnlyAMembership, onlyA.Membership)
	assert.True(t, onlyA.PresentInA)
	assert.False(t, onlyA.PresentInB)
	assert.Equal(t, -0.5, *onlyA.CoefA)
	assert.Nil(t, onlyA.CoefB)
	assert.Nil(t, onlyA.CoefChange)
	assert.Nil(t, onlyA.CoefPctChange)

	onlyB := rows[2]
	assert.Equal(t, schema.OnlyBMembership, onlyB.Membership)
	assert.False(t, onlyB.PresentInA)
	assert.Nil(t, onlyB.CoefA)
	assert.Nil(t, onlyB.TStatA)
	assert.Equal(t, 0.2, *onlyB.CoefB)
	assert.Equal(t, 1.5, *onlyB.TStatB)
	assert.Nil(t, onlyB.TStatChange)
}

func TestComparePctChange(t *testing.T) {
	tests := []struct {
		name    string
		a, b    *float64
		wantAbs *float64
		wantPct *float64
	}{
		{"increase", f(2), f(3), f(1), f(50)},
		{"decrease to zero", f(50), f(0), f(-50), f(-100)},
		{"from zero", f(0), f(50), f(50), nil},
		{"negative base uses magnitude", f(-2), f(-1), f(1), f(50)},
		{"missing in A", nil, f(1), nil, nil},
		{"missing in B", f(1), nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Compare(
				[]schema.VariableSnapshot{snap("x", tt.a, nil)},
				[]schema.VariableSnapshot{snap("x", tt.b, nil)},
			)
			require.NoError(t, err)
			require.Len(t, rows, 1)

			r := rows[0]
			if tt.wantAbs == nil {
				assert.Nil(t, r.CoefChange)
			} else {
				require.NotNil(t, r.CoefChange)
				assert.InDelta(t, *tt.wantAbs, *r.CoefChange, 1e-9)
			}
			if tt.wantPct == nil {
				assert.Nil(t, r.CoefPctChange)
			} else {
				require.NotNil(t, r.CoefPctChange)
				assert.InDelta(t, *tt.wantPct, *r.CoefPctChange, 1e-9)
			}
			assert.Nil(t, r.TStatChange, "missing t-stats stay missing")
		})
	}
}

func TestCompareDuplicateVariable(t *testing.T) {
	dup := []schema.VariableSnapshot{snap("tv", f(1), f(1)), snap("tv", f(2), f(2))}
	ok := []schema.VariableSnapshot{snap("tv", f(1), f(1))}

	_, err := Compare(dup, ok)
	assert.ErrorIs(t, err, ErrDuplicateVariable)

	_, err = Compare(ok, dup)
	assert.ErrorIs(t, err, ErrDuplicateVariable)
}

func TestCompareEmpty(t *testing.T) {
	rows, err := Compare(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCompareDoesNotAliasInput(t *testing.T) {
	coef := f(1)
	rows, err := Compare([]schema.VariableSnapshot{snap("x", coef, nil)}, nil)
	require.NoError(t, err)

	*coef = 42
	assert.Equal(t, 1.0, *rows[0].CoefA)
}

func TestCompareModelsSummary(t *testing.T) {
	a := []schema.VariableSnapshot{
		snap("const", f(2), f(4)),
		snap("price", f(-0.5), f(-3)),
		snap("tv", f(0.3), f(2)),
	}
	b := []schema.VariableSnapshot{
		snap("const", f(3), f(4)),
		snap("tv", f(-0.1), f(-0.4)),
		snap("radio", f(0.1), f(1)),
		snap("promo", f(0.2), f(1)),
	}

	got, err := CompareModels("spring", a, "summer", b)
	require.NoError(t, err)

	assert.Equal(t, "spring", got.ModelA)
	assert.Equal(t, "summer", got.ModelB)
	assert.Equal(t, schema.ComparisonSummary{
		TotalVariables: 5,
		InBoth:         2,
		OnlyInA:        1,
		OnlyInB:        2,
		SignFlips:      1,
	}, got.Summary)
	assert.Equal(t, []string{"const", "price", "promo", "radio", "tv"}, rowNames(got.Rows))
}
