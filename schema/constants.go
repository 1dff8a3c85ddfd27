package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// Membership represents which side of a comparison a variable belongs to.
	Membership string

	// RunKind identifies the engine operation recorded in run history.
	RunKind string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All memberships supported.
const (
	BothMembership  Membership = "both"
	OnlyAMembership Membership = "only_a"
	OnlyBMembership Membership = "only_b"
)

// All run kinds supported.
const (
	OverallRun   RunKind = "overall"
	GroupsRun    RunKind = "groups"
	DrilldownRun RunKind = "drilldown"
	CompareRun   RunKind = "compare"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Reserved series keys and well-known column names.
const (
	ActualKey    = "actual"
	PredictedKey = "predicted"
	DateColumn   = "Date"
	TotalColumn  = "Total"

	// ConstVariable is the intercept term, always listed first in comparisons.
	ConstVariable = "const"
)

// AllRunKinds lists every run kind in display order.
var AllRunKinds = []RunKind{OverallRun, GroupsRun, DrilldownRun, CompareRun}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
