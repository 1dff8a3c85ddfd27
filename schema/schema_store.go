package schema

import "time"

// RunRecord represents a row from the decomp_runs table.
type RunRecord struct {
	RunID         int64
	RunUUID       string
	Kind          RunKind
	Model         string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalRows     int32
	ConfigParams  *string
}

// HistoryStatus represents the status of the run history store.
type HistoryStatus struct {
	Backend       string          `json:"backend"`
	Connected     bool            `json:"connected"`
	TotalRuns     int             `json:"total_runs"`
	LastRunID     int64           `json:"last_run_id"`
	LastRunTime   time.Time       `json:"last_run_time"`
	OldestRunTime time.Time       `json:"oldest_run_time"`
	TotalRows     int64           `json:"total_rows"`
	RunsByKind    map[RunKind]int `json:"runs_by_kind"`
}
