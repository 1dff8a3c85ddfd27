package core

import "context"

// Context keys for run options
type contextKey string

const runSourceKey contextKey = "runSource"

// Run sources recorded with each tracked run.
const (
	SourceCLI = "cli"
	SourceMCP = "mcp"
)

// WithRunSource records which front end started the run
func WithRunSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, runSourceKey, source)
}

// runSource returns the front end that started the run
func runSource(ctx context.Context) string {
	val := ctx.Value(runSourceKey)
	if val == nil {
		return SourceCLI // default: command line
	}
	source, ok := val.(string)
	if !ok || source == "" {
		return SourceCLI
	}
	return source
}
