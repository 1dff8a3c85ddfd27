package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSource(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"default", context.Background(), SourceCLI},
		{"mcp", WithRunSource(context.Background(), SourceMCP), SourceMCP},
		{"empty falls back", WithRunSource(context.Background(), ""), SourceCLI},
		{"wrong type falls back", context.WithValue(context.Background(), runSourceKey, 42), SourceCLI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runSource(tt.ctx))
		})
	}
}

// TestContextIsolation tests that different contexts maintain isolation.
func TestContextIsolation(t *testing.T) {
	baseCtx := context.Background()
	mcpCtx := WithRunSource(baseCtx, SourceMCP)

	const numGoroutines = 50
	var wg sync.WaitGroup
	for i := range numGoroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.Equal(t, SourceMCP, runSource(mcpCtx), "Goroutine %d", id)
			assert.Equal(t, SourceCLI, runSource(baseCtx), "Goroutine %d", id)
		}(i)
	}
	wg.Wait()
}
