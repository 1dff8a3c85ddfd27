package schema

// VariableSnapshot is one variable's fitted statistics within a model.
type VariableSnapshot struct {
	Name        string   `json:"name"`
	Coefficient *float64 `json:"coefficient"`
	TStat       *float64 `json:"t_stat"`
}

// ComparisonRow aligns one variable across model A and model B.
type ComparisonRow struct {
	VariableName   string     `json:"variable_name"`
	PresentInA     bool       `json:"present_in_a"`
	PresentInB     bool       `json:"present_in_b"`
	Membership     Membership `json:"membership"`
	CoefA          *float64   `json:"coef_a"`
	TStatA         *float64   `json:"t_stat_a"`
	CoefB          *float64   `json:"coef_b"`
	TStatB         *float64   `json:"t_stat_b"`
	CoefChange     *float64   `json:"coef_change"`      // B - A
	TStatChange    *float64   `json:"t_stat_change"`    // B - A
	CoefPctChange  *float64   `json:"coef_pct_change"`  // (B - A) / |A| * 100
	TStatPctChange *float64   `json:"t_stat_pct_change"` // (B - A) / |A| * 100
}

// ComparisonSummary has high-level counts for a model comparison.
type ComparisonSummary struct {
	TotalVariables int `json:"total_variables"`
	InBoth         int `json:"in_both"`
	OnlyInA        int `json:"only_in_a"`
	OnlyInB        int `json:"only_in_b"`

	// SignFlips counts shared variables whose coefficient changed sign.
	SignFlips int `json:"sign_flips"`
}

// ComparisonResult holds the comparison rows and summary.
type ComparisonResult struct {
	ModelA  string            `json:"model_a"`
	ModelB  string            `json:"model_b"`
	Rows    []ComparisonRow   `json:"rows"`
	Summary ComparisonSummary `json:"summary"`
}
