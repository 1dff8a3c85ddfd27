package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mmmkit/decomp/core"
	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

func (h *toolHandler) handleGetOverallSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Targets = []string{request.GetString("payload_path", "")}

	result, err := core.GetOverallResults(core.WithRunSource(ctx, core.SourceMCP), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("overall series failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleGetGroupSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Targets = []string{request.GetString("payload_path", "")}

	result, err := core.GetGroupResults(core.WithRunSource(ctx, core.SourceMCP), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("group series failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleGetGroupDrilldown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Targets = []string{request.GetString("payload_path", "")}
	cfg.Group = strings.TrimSpace(request.GetString("group", ""))

	result, err := core.GetDrilldownResults(core.WithRunSource(ctx, core.SourceMCP), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("drilldown failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleCompareModels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Targets = []string{
		request.GetString("payload_a", ""),
		request.GetString("payload_b", ""),
	}

	result, err := core.GetCompareResults(core.WithRunSource(ctx, core.SourceMCP), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleAssignColors(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Targets = splitList(request.GetString("keys", ""))
	cfg.AsVariables = request.GetBool("as_variables", false)

	assignments, err := core.GetColorAssignments(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("color assignment failed: %v", err)), nil
	}
	return jsonResult(assignments)
}

func (h *toolHandler) handleSuggestGroups(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Targets = splitList(request.GetString("variables", ""))
	if len(cfg.Targets) == 0 {
		if p := request.GetString("payload_path", ""); p != "" {
			cfg.Targets = []string{p}
		}
	}

	assignments, err := core.GetGroupSuggestions(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("group suggestion failed: %v", err)), nil
	}
	return jsonResult(assignments)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// splitList splits a comma-separated argument, dropping blanks.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
