// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the decomp MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Decomposition Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_overall_series ---
	s.AddTool(mcp.NewTool("get_overall_series",
		mcp.WithDescription("Align the actual and predicted series of a model payload into dated records."),
		mcp.WithString("payload_path", mcp.Description("Path to the model evaluation payload (JSON)."), mcp.Required()),
	), h.handleGetOverallSeries)

	// --- 2. Tool: get_group_series ---
	s.AddTool(mcp.NewTool("get_group_series",
		mcp.WithDescription("Build the contribution-by-group series of a model, excluding actual and predicted."),
		mcp.WithString("payload_path", mcp.Description("Path to the model evaluation payload (JSON)."), mcp.Required()),
	), h.handleGetGroupSeries)

	// --- 3. Tool: get_group_drilldown ---
	s.AddTool(mcp.NewTool("get_group_drilldown",
		mcp.WithDescription("Break one group down into per-variable contributions plus the group total."),
		mcp.WithString("payload_path", mcp.Description("Path to the model evaluation payload (JSON)."), mcp.Required()),
		mcp.WithString("group", mcp.Description("Name of the group to drill into (e.g., 'Media')."), mcp.Required()),
	), h.handleGetGroupDrilldown)

	// --- 4. Tool: compare_models ---
	s.AddTool(mcp.NewTool("compare_models",
		mcp.WithDescription("Compare variable coefficients and t-statistics between two fitted models."),
		mcp.WithString("payload_a", mcp.Description("Payload path of model A (the reference)."), mcp.Required()),
		mcp.WithString("payload_b", mcp.Description("Payload path of model B."), mcp.Required()),
	), h.handleCompareModels)

	// --- 5. Tool: assign_colors ---
	s.AddTool(mcp.NewTool("assign_colors",
		mcp.WithDescription("Resolve stable display colours for series keys."),
		mcp.WithString("keys", mcp.Description("Comma-separated series keys."), mcp.Required()),
		mcp.WithBoolean("as_variables", mcp.Description("Treat keys as variables of one group and colour them by position.")),
	), h.handleAssignColors)

	// --- 6. Tool: suggest_groups ---
	s.AddTool(mcp.NewTool("suggest_groups",
		mcp.WithDescription("Suggest a default group for each variable name."),
		mcp.WithString("variables", mcp.Description("Comma-separated variable names.")),
		mcp.WithString("payload_path", mcp.Description("Payload whose variables should be classified (used when variables is empty).")),
	), h.handleSuggestGroups)

	return s
}

// StartMCPServer starts the decomp MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
