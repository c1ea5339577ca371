package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/sketchpad/internal/examples"
	"github.com/ziadkadry99/sketchpad/internal/studio"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the sketch pipeline as tools.
type Server struct {
	cfg     studio.Config
	library *examples.Library
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies. cfg carries
// the provider and sampling defaults shared with the studio sessions.
func NewServer(cfg studio.Config, library *examples.Library) *Server {
	s := &Server{
		cfg:     cfg.WithDefaults(),
		library: library,
	}

	s.mcp = server.NewMCPServer(
		"sketchpad",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(generateSketchTool, s.handleGenerateSketch)
	s.mcp.AddTool(extractCodeTool, s.handleExtractCode)
	s.mcp.AddTool(normalizeSketchTool, s.handleNormalizeSketch)
	s.mcp.AddTool(previewDocumentTool, s.handlePreviewDocument)
	s.mcp.AddTool(listExamplesTool, s.handleListExamples)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
