// Package mcpserver exposes the analyzer over the Model Context Protocol so
// agents can grade files without shelling out to the CLI.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers the gradr tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gradr",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "analyze_file",
		Description: "Grade a single source file from its filename and text content. " +
			"Returns a 0-100 score, letter grade, and itemized penalties covering " +
			"complexity, duplication, naming, smells, and size.",
	}, handleAnalyzeFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "analyze_paths",
		Description: "Grade every source file under the given paths and return a " +
			"worst-first ranking with an overall project score and grade distribution.",
	}, handleAnalyzePaths)
}
