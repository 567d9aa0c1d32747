package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gradr/gradr/internal/output"
	"github.com/gradr/gradr/pkg/lang"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and their configuration",
	RunE:  runLanguages,
}

func init() {
	languagesCmd.Flags().StringP("format", "f", "text", "Output format: text, json, markdown")
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	formatter, err := output.NewFormatter(output.ParseFormat(getFormat(cmd)), "", !noColor)
	if err != nil {
		return err
	}
	defer formatter.Close()

	type langRow struct {
		Language   string `json:"language"`
		Name       string `json:"name"`
		Extensions string `json:"extensions"`
		Convention string `json:"convention"`
		Patterns   int    `json:"patterns"`
	}

	rows := make([][]string, 0)
	data := make([]langRow, 0)
	for _, cfg := range lang.All() {
		row := langRow{
			Language:   string(cfg.Language),
			Name:       cfg.Name,
			Extensions: strings.Join(cfg.Extensions, " "),
			Convention: string(cfg.Convention),
			Patterns:   len(cfg.FunctionPatterns),
		}
		data = append(data, row)
		rows = append(rows, []string{
			row.Language, row.Name, row.Extensions, row.Convention,
		})
	}

	return formatter.Output(&output.Table{
		Title:   "Supported Languages",
		Headers: []string{"Tag", "Name", "Extensions", "Convention"},
		Rows:    rows,
		Data:    data,
	})
}
