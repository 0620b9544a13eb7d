// Package mcpserver exposes transcript normalization and comparison via MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ansigo/compare-output/internal/shadow"
)

// RegisterTools registers the comparison tools on the given server.
// Parse diagnostics go to logger.
func RegisterTools(server *mcp.Server, logger *slog.Logger) {
	ex := shadow.NewExtractor(logger)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "compare_transcripts",
			Description: "Compare an Ansible ad-hoc transcript with an AnsiGo transcript, ignoring run-to-run fields",
		},
		compareHandler(ex),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "normalize_transcript",
			Description: "Extract per-host status and cleaned JSON payload from an ad-hoc transcript",
		},
		normalizeHandler(ex),
	)
}

type compareInput struct {
	Reference      string `json:"reference" jsonschema:"full text of the reference (Ansible) transcript"`
	Candidate      string `json:"candidate" jsonschema:"full text of the candidate (AnsiGo) transcript"`
	ReferenceLabel string `json:"reference_label,omitempty" jsonschema:"name used for the reference in messages"`
	CandidateLabel string `json:"candidate_label,omitempty" jsonschema:"name used for the candidate in messages"`
}

func compareHandler(ex *shadow.Extractor) mcp.ToolHandlerFor[compareInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input compareInput) (*mcp.CallToolResult, any, error) {
		if input.Reference == "" || input.Candidate == "" {
			return errorResult("reference and candidate are required"), nil, nil
		}

		ref := ex.Normalize(input.Reference)
		cand := ex.Normalize(input.Candidate)
		result := shadow.NewComparator(input.ReferenceLabel, input.CandidateLabel).Evaluate(ref, cand)
		return textResult(result)
	}
}

type normalizeInput struct {
	Transcript string `json:"transcript" jsonschema:"full text of an ad-hoc transcript"`
}

func normalizeHandler(ex *shadow.Extractor) mcp.ToolHandlerFor[normalizeInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input normalizeInput) (*mcp.CallToolResult, any, error) {
		if input.Transcript == "" {
			return errorResult("transcript is required"), nil, nil
		}
		return textResult(ex.Normalize(input.Transcript))
	}
}

func textResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
