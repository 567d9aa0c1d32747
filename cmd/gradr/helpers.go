package main

import (
	"github.com/spf13/cobra"
)

// getPaths returns paths from args, defaulting to ["."].
func getPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

func getFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("format")
	return format
}

func getOutputFile(cmd *cobra.Command) string {
	out, _ := cmd.Flags().GetString("output")
	return out
}
