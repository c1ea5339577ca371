package mcp

import "github.com/mark3labs/mcp-go/mcp"

// generateSketchTool defines the generate_sketch MCP tool.
var generateSketchTool = mcp.NewTool("generate_sketch",
	mcp.WithDescription("Generate p5.js sketch code from a natural language prompt. Returns bare JavaScript ready to run."),
	mcp.WithString("prompt",
		mcp.Required(),
		mcp.Description("What the sketch should draw"),
	),
	mcp.WithString("model",
		mcp.Description("Model identifier (defaults to the configured model)"),
	),
	mcp.WithNumber("temperature",
		mcp.Description("Sampling temperature (defaults to the model's own default)"),
	),
)

// extractCodeTool defines the extract_code MCP tool.
var extractCodeTool = mcp.NewTool("extract_code",
	mcp.WithDescription("Extract code from text that may wrap it in markdown fences. Fails on an unbalanced fence."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Text that may contain a fenced code block"),
	),
)

// normalizeSketchTool defines the normalize_sketch MCP tool.
var normalizeSketchTool = mcp.NewTool("normalize_sketch",
	mcp.WithDescription("Normalize sketch source by stripping comments and collapsing whitespace."),
	mcp.WithString("source",
		mcp.Required(),
		mcp.Description("Sketch source code"),
	),
)

// previewDocumentTool defines the preview_document MCP tool.
var previewDocumentTool = mcp.NewTool("preview_document",
	mcp.WithDescription("Build the self-contained HTML document that runs a sketch in the preview frame."),
	mcp.WithString("source",
		mcp.Required(),
		mcp.Description("Sketch source code"),
	),
)

// listExamplesTool defines the list_examples MCP tool.
var listExamplesTool = mcp.NewTool("list_examples",
	mcp.WithDescription("List the example sketches in the library, or fetch one example's full code."),
	mcp.WithString("name",
		mcp.Description("Name of one example to fetch instead of the listing"),
	),
)
