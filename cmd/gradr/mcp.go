package main

import (
	"github.com/spf13/cobra"

	"github.com/gradr/gradr/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long: `Starts a Model Context Protocol server exposing analyze_file and
analyze_paths tools over stdio for use by agent clients.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.NewServer(version).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
