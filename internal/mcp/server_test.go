package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/sketchpad/internal/examples"
	"github.com/ziadkadry99/sketchpad/internal/llm"
	"github.com/ziadkadry99/sketchpad/internal/studio"
)

// mockProvider implements llm.Provider for testing.
type mockProvider struct {
	content string
	err     error
	last    llm.CompletionRequest
}

func (m *mockProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.CompletionResponse{Content: m.content}, nil
}
func (m *mockProvider) Name() string { return "mock" }

func newTestServer(t *testing.T, provider llm.Provider) *Server {
	t.Helper()
	library, err := examples.NewLibrary("", nil)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	return NewServer(studio.Config{Provider: provider}, library)
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"generate_sketch", generateSketchTool, "generate_sketch"},
		{"extract_code", extractCodeTool, "extract_code"},
		{"normalize_sketch", normalizeSketchTool, "normalize_sketch"},
		{"preview_document", previewDocumentTool, "preview_document"},
		{"list_examples", listExamplesTool, "list_examples"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t, &mockProvider{})

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.cfg.Model != studio.DefaultModel {
		t.Errorf("model default not applied: got %q", srv.cfg.Model)
	}
}

func TestHandleGenerateSketch(t *testing.T) {
	ctx := context.Background()

	t.Run("fenced response", func(t *testing.T) {
		provider := &mockProvider{content: "```javascript\ncircle(200, 200, 50);\n```"}
		srv := newTestServer(t, provider)

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"prompt": "draw a circle",
		}

		result, err := srv.handleGenerateSketch(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if provider.last.Model != studio.DefaultModel {
			t.Errorf("model = %q, want default", provider.last.Model)
		}
		if len(provider.last.Messages) != 2 || provider.last.Messages[0].Role != llm.RoleSystem {
			t.Errorf("expected system+user messages, got %+v", provider.last.Messages)
		}
	})

	t.Run("temperature override", func(t *testing.T) {
		provider := &mockProvider{content: "circle(1, 1, 1);"}
		srv := newTestServer(t, provider)

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"prompt":      "draw a circle",
			"temperature": 0.3,
		}

		if _, err := srv.handleGenerateSketch(ctx, req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.last.Temperature != 0.3 {
			t.Errorf("temperature = %v, want 0.3", provider.last.Temperature)
		}
	})

	t.Run("missing prompt", func(t *testing.T) {
		srv := newTestServer(t, &mockProvider{})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleGenerateSketch(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing prompt")
		}
	})

	t.Run("vendor failure", func(t *testing.T) {
		srv := newTestServer(t, &mockProvider{err: errors.New("boom")})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"prompt": "draw a circle",
		}

		result, err := srv.handleGenerateSketch(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for vendor failure")
		}
	})

	t.Run("unbalanced fence", func(t *testing.T) {
		srv := newTestServer(t, &mockProvider{content: "```javascript\ncircle(1, 1, 1);"})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"prompt": "draw a circle",
		}

		result, err := srv.handleGenerateSketch(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unbalanced fence")
		}
	})
}

func TestHandleExtractCode(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, &mockProvider{})

	t.Run("fenced", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"text": "Here you go:\n```javascript\nrect(0, 0, 10, 10);\n```\nEnjoy!",
		}

		result, err := srv.handleExtractCode(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("unbalanced", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"text": "```javascript\nrect(0, 0, 10, 10);",
		}

		result, err := srv.handleExtractCode(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unbalanced fence")
		}
	})
}

func TestHandleNormalizeSketch(t *testing.T) {
	srv := newTestServer(t, &mockProvider{})
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"source": "// a comment\ncircle(1, 1, 1);",
	}

	result, err := srv.handleNormalizeSketch(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
}

func TestHandlePreviewDocument(t *testing.T) {
	srv := newTestServer(t, &mockProvider{})
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"source": "circle(50, 50, 10);",
	}

	result, err := srv.handlePreviewDocument(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
}

func TestHandleListExamples(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, &mockProvider{})

	t.Run("listing", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleListExamples(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("single example", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"name": "bounce",
		}

		result, err := srv.handleListExamples(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("unknown example", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"name": "nope",
		}

		result, err := srv.handleListExamples(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown example")
		}
	})
}

func TestFormatExamples(t *testing.T) {
	out := formatExamples([]examples.Example{
		{Name: "bounce", Description: "A bouncing ball"},
	})
	if !strings.Contains(out, "Found 1 example(s):") {
		t.Errorf("missing count line:\n%s", out)
	}
	if !strings.Contains(out, "bounce: A bouncing ball") {
		t.Errorf("missing example line:\n%s", out)
	}
}
