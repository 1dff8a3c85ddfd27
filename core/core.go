// Package core has the decomposition, alignment and model comparison engine.
package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/internal/metrics"
	"github.com/mmmkit/decomp/internal/payload"
	"github.com/mmmkit/decomp/schema"
	"github.com/rs/zerolog"
)

// ExecutorFunc defines the function signature for executing different engine commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, w contract.OutputWriter) error

// ExecuteOverall builds the actual-vs-predicted series and writes it.
func ExecuteOverall(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, w contract.OutputWriter) error {
	start := time.Now()
	result, err := GetOverallResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return w.WriteSeries(result, cfg, time.Since(start))
}

// ExecuteGroups builds the contribution-by-group series and writes it.
func ExecuteGroups(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, w contract.OutputWriter) error {
	start := time.Now()
	result, err := GetGroupResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return w.WriteSeries(result, cfg, time.Since(start))
}

// ExecuteDrilldown builds the contribution-by-variable series of one group and writes it.
func ExecuteDrilldown(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, w contract.OutputWriter) error {
	start := time.Now()
	result, err := GetDrilldownResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return w.WriteSeries(result, cfg, time.Since(start))
}

// ExecuteCompare compares two models and writes the report.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, w contract.OutputWriter) error {
	start := time.Now()
	result, err := GetCompareResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return w.WriteComparison(result, cfg, time.Since(start))
}

// ExecuteColors resolves display colours for the requested keys and writes them.
func ExecuteColors(_ context.Context, cfg *contract.Config, _ contract.HistoryManager, w contract.OutputWriter) error {
	assignments, err := GetColorAssignments(cfg)
	if err != nil {
		return err
	}
	return w.WriteColors(assignments, cfg)
}

// ExecuteSuggest suggests default groups for the requested variables and writes them.
func ExecuteSuggest(_ context.Context, cfg *contract.Config, _ contract.HistoryManager, w contract.OutputWriter) error {
	assignments, err := GetGroupSuggestions(cfg)
	if err != nil {
		return err
	}
	return w.WriteSuggestions(assignments, cfg)
}

// GetOverallResults loads the payload named by the first target and aligns
// its actual and predicted series.
func GetOverallResults(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) (schema.SeriesResult, error) {
	p, err := loadTarget(ctx, cfg, 0, "payload path")
	if err != nil {
		return schema.SeriesResult{}, err
	}

	var result schema.SeriesResult
	err = trackRun(ctx, cfg, mgr, schema.OverallRun, p.Model, func() (int, error) {
		records, err := AlignOverall(p.DecompositionResult)
		if err != nil {
			return 0, err
		}
		columns := []string{schema.ActualKey, schema.PredictedKey}
		result = schema.SeriesResult{
			Kind:    schema.OverallRun,
			Model:   p.Model,
			Columns: columns,
			Colors:  ColorMap(columns, cfg.ColorOverrides, false),
			Records: records,
		}
		return len(records), nil
	})
	return result, err
}

// GetGroupResults loads the payload named by the first target and builds
// the contribution-by-group series.
func GetGroupResults(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) (schema.SeriesResult, error) {
	p, err := loadTarget(ctx, cfg, 0, "payload path")
	if err != nil {
		return schema.SeriesResult{}, err
	}

	var result schema.SeriesResult
	err = trackRun(ctx, cfg, mgr, schema.GroupsRun, p.Model, func() (int, error) {
		series, err := AggregateGroups(p.DecompositionResult)
		if err != nil {
			return 0, err
		}
		result = schema.SeriesResult{
			Kind:    schema.GroupsRun,
			Model:   p.Model,
			Columns: series.GroupKeys,
			Colors:  ColorMap(series.GroupKeys, cfg.ColorOverrides, false),
			Records: series.Records,
		}
		return len(series.Records), nil
	})
	return result, err
}

// GetDrilldownResults loads the payload named by the first target and builds
// the contribution-by-variable series for cfg.Group.
func GetDrilldownResults(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) (schema.SeriesResult, error) {
	if strings.TrimSpace(cfg.Group) == "" {
		return schema.SeriesResult{}, fmt.Errorf("%w: group name", ErrMissingInput)
	}
	p, err := loadTarget(ctx, cfg, 0, "payload path")
	if err != nil {
		return schema.SeriesResult{}, err
	}

	group, ok := p.Groups.Find(cfg.Group)
	if !ok {
		if suggestion := ClosestName(cfg.Group, p.Groups.Names()); suggestion != "" {
			return schema.SeriesResult{}, fmt.Errorf("%w: %q in model %q (did you mean %q?)", ErrUnknownGroup, cfg.Group, p.Model, suggestion)
		}
		return schema.SeriesResult{}, fmt.Errorf("%w: %q in model %q", ErrUnknownGroup, cfg.Group, p.Model)
	}

	var result schema.SeriesResult
	err = trackRun(ctx, cfg, mgr, schema.DrilldownRun, p.Model, func() (int, error) {
		records, err := BuildGroupSeries(group)
		if err != nil {
			return 0, err
		}
		columns := make([]string, 0, len(group.Variables)+1)
		columns = append(columns, group.Variables...)
		columns = append(columns, schema.TotalColumn)
		result = schema.SeriesResult{
			Kind:    schema.DrilldownRun,
			Model:   p.Model,
			Group:   group.Group,
			Columns: columns,
			Colors:  ColorMap(group.Variables, cfg.ColorOverrides, true),
			Records: records,
			Gaps:    ReconciliationGaps(records, group.Variables),
		}
		return len(records), nil
	})
	return result, err
}

// GetCompareResults loads the two payloads named by the targets and compares
// their variables.
func GetCompareResults(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) (schema.ComparisonResult, error) {
	pa, err := loadTarget(ctx, cfg, 0, "model A payload path")
	if err != nil {
		return schema.ComparisonResult{}, err
	}
	pb, err := loadTarget(ctx, cfg, 1, "model B payload path")
	if err != nil {
		return schema.ComparisonResult{}, err
	}

	var result schema.ComparisonResult
	label := pa.Model + " vs " + pb.Model
	err = trackRun(ctx, cfg, mgr, schema.CompareRun, label, func() (int, error) {
		result, err = CompareModels(pa.Model, pa.Variables, pb.Model, pb.Variables)
		if err != nil {
			return 0, err
		}
		return len(result.Rows), nil
	})
	return result, err
}

// GetColorAssignments resolves colours for the keys given as targets.
func GetColorAssignments(cfg *contract.Config) ([]schema.ColorAssignment, error) {
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("%w: at least one series key", ErrMissingInput)
	}
	out := make([]schema.ColorAssignment, len(cfg.Targets))
	for i, key := range cfg.Targets {
		if cfg.AsVariables {
			out[i] = VariableColor(key, cfg.Targets, cfg.ColorOverrides)
		} else {
			out[i] = ResolveColor(key, cfg.ColorOverrides)
		}
	}
	return out, nil
}

// GetGroupSuggestions classifies the variables given as targets. A single
// .json target is read as a payload and its variables are classified.
func GetGroupSuggestions(cfg *contract.Config) ([]schema.GroupAssignment, error) {
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("%w: at least one variable name or payload path", ErrMissingInput)
	}
	variables := cfg.Targets
	if len(cfg.Targets) == 1 && strings.EqualFold(filepath.Ext(cfg.Targets[0]), ".json") {
		p, err := payload.LoadModel(cfg.Targets[0])
		if err != nil {
			return nil, err
		}
		variables = make([]string, len(p.Variables))
		for i, v := range p.Variables {
			variables[i] = v.Name
		}
	}
	return SuggestGroups(variables), nil
}

// loadTarget loads the payload at cfg.Targets[idx].
func loadTarget(ctx context.Context, cfg *contract.Config, idx int, what string) (*schema.ModelPayload, error) {
	if idx >= len(cfg.Targets) || strings.TrimSpace(cfg.Targets[idx]) == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, what)
	}
	path := cfg.Targets[idx]
	p, err := payload.LoadModel(path)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("model", p.Model).
		Int("dates", len(p.Dates)).
		Int("groups", len(p.Groups)).
		Int("variables", len(p.Variables)).
		Msg("loaded payload")
	return p, nil
}

// trackRun brackets run with history tracking and metrics. Tracking failures
// are logged and never fail the run itself.
func trackRun(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, kind schema.RunKind, model string, run func() (int, error)) error {
	logger := zerolog.Ctx(ctx)
	startTime := time.Now()

	// --- 0. Begin Run Tracking (if configured) ---
	var runID int64
	var store contract.RunStore
	if mgr != nil {
		store = mgr.GetRunStore()
	}
	if store != nil {
		configParams := map[string]any{
			"targets":   cfg.Targets,
			"group":     cfg.Group,
			"output":    string(cfg.Output),
			"precision": cfg.Precision,
			"source":    runSource(ctx),
		}
		var err error
		runID, err = store.BeginRun(kind, model, startTime, configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
		}
	}

	// --- 1. Run ---
	rows, runErr := run()
	duration := time.Since(startTime)
	metrics.Default.ObserveRun(kind, duration, rows, runErr)

	// --- 2. End Run Tracking ---
	if store != nil && runID > 0 && runErr == nil {
		if err := store.EndRun(runID, time.Now(), rows); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	logger.Debug().
		Str("kind", string(kind)).
		Str("model", model).
		Int64("run_id", runID).
		Int("rows", rows).
		Dur("duration", duration).
		Err(runErr).
		Msg("run finished")
	return runErr
}
