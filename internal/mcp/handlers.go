package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/sketchpad/internal/examples"
	"github.com/ziadkadry99/sketchpad/internal/llm"
	"github.com/ziadkadry99/sketchpad/internal/preview"
	"github.com/ziadkadry99/sketchpad/internal/sketch"
)

// handleGenerateSketch runs the full prompt-to-code pipeline: completion
// with the sketch system instruction, then fence extraction.
func (s *Server) handleGenerateSketch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := request.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: prompt"), nil
	}

	model := request.GetString("model", s.cfg.Model)
	temperature := request.GetFloat("temperature", llm.DefaultTemperature(model))

	resp, err := s.cfg.Provider.Complete(ctx, llm.CompletionRequest{
		Model: model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: sketch.SystemInstruction},
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: temperature,
		TopP:        s.cfg.TopP,
		TopK:        s.cfg.TopK,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	code, err := sketch.ExtractCode(resp.Content)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parsing model response: %v", err)), nil
	}

	return mcp.NewToolResultText(code), nil
}

// handleExtractCode strips markdown fences from free text.
func (s *Server) handleExtractCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}

	code, err := sketch.ExtractCode(text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(code), nil
}

// handleNormalizeSketch returns the comparison form of a sketch.
func (s *Server) handleNormalizeSketch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: source"), nil
	}

	return mcp.NewToolResultText(sketch.Normalize(source)), nil
}

// handlePreviewDocument builds the standalone preview page for a sketch.
func (s *Server) handlePreviewDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: source"), nil
	}

	return mcp.NewToolResultText(preview.BuildDocument(source)), nil
}

// handleListExamples lists the library, or returns one example's code when
// name is given.
func (s *Server) handleListExamples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.library == nil {
		return mcp.NewToolResultError("example library is not available"), nil
	}

	if name := request.GetString("name", ""); name != "" {
		ex, ok := s.library.Get(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown example: %s", name)), nil
		}
		return mcp.NewToolResultText(ex.Code), nil
	}

	return mcp.NewToolResultText(formatExamples(s.library.List())), nil
}

// formatExamples converts the library listing into plain text for agent
// consumption.
func formatExamples(list []examples.Example) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d example(s):\n", len(list)))

	for _, ex := range list {
		sb.WriteString(fmt.Sprintf("\n%s: %s\n", ex.Name, ex.Description))
	}

	return sb.String()
}
