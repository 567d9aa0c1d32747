package mcpserver

import (
	"context"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"github.com/gradr/gradr/internal/fileproc"
	"github.com/gradr/gradr/internal/report"
	"github.com/gradr/gradr/internal/scanner"
	"github.com/gradr/gradr/pkg/analyzer"
	"github.com/gradr/gradr/pkg/config"
	"github.com/gradr/gradr/pkg/models"
)

// AnalyzeFileInput grades in-memory text.
type AnalyzeFileInput struct {
	Filename string `json:"filename" jsonschema:"Filename whose extension selects the language."`
	Text     string `json:"text" jsonschema:"Raw source text to analyze."`
}

// AnalyzePathsInput grades files on disk.
type AnalyzePathsInput struct {
	Paths []string `json:"paths,omitempty" jsonschema:"Files or directories to analyze. Defaults to the current directory."`
	Top   int      `json:"top,omitempty" jsonschema:"Limit the ranking to the N worst files. 0 means all."`
}

func toolResult(data any) (*mcp.CallToolResult, any, error) {
	text, err := toon.Marshal(data, toon.WithIndent(2))
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(text)},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

func handleAnalyzeFile(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeFileInput) (*mcp.CallToolResult, any, error) {
	if input.Filename == "" {
		return toolError("filename is required")
	}

	cfg := config.LoadOrDefault()
	a := analyzer.New(cfg.AnalyzerOptions()...)
	return toolResult(a.Analyze(input.Filename, input.Text))
}

func handleAnalyzePaths(ctx context.Context, req *mcp.CallToolRequest, input AnalyzePathsInput) (*mcp.CallToolResult, any, error) {
	paths := input.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cfg := config.LoadOrDefault()
	files, err := scanner.New(cfg).ScanPaths(paths)
	if err != nil {
		return toolError(err.Error())
	}
	if len(files) == 0 {
		return toolError("no source files found")
	}
	files, _ = scanner.FilterBySize(files, cfg.Analysis.MaxFileSize)

	a := analyzer.New(cfg.AnalyzerOptions()...)
	reports, _ := fileproc.MapWithContext(ctx, files, func(path string) (*models.Report, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return a.Analyze(path, string(data)), nil
	}, nil)

	summary := report.Build(reports)
	if input.Top > 0 && len(summary.Ranking) > input.Top {
		summary.Ranking = summary.Ranking[:input.Top]
	}
	return toolResult(summary)
}
