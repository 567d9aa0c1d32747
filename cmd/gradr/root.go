package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gradr/gradr/pkg/config"
)

var (
	cfgFile string
	noColor bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gradr",
	Short: "Grade source files without parsing them",
	Long: `Gradr estimates source-code quality from raw text: language detection by
extension, line classification, regex-based function discovery, cyclomatic
complexity estimation, duplication detection, naming checks, and code smells,
reduced to a 0-100 score and letter grade with itemized penalties.

Supports: JavaScript, TypeScript, Python, Java, C#, Go`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (TOML, YAML, or JSON)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")
}

// loadConfig honors --config when given, otherwise searches the standard
// locations.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadOrDefault(), nil
}
