package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gradr/gradr/internal/cache"
	"github.com/gradr/gradr/internal/fileproc"
	"github.com/gradr/gradr/internal/output"
	"github.com/gradr/gradr/internal/progress"
	"github.com/gradr/gradr/internal/report"
	"github.com/gradr/gradr/internal/scanner"
	"github.com/gradr/gradr/pkg/analyzer"
	"github.com/gradr/gradr/pkg/config"
	"github.com/gradr/gradr/pkg/models"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path...]",
	Short: "Grade source files and rank them worst-first",
	Long: `Analyze grades every source file under the given paths. A single file
argument prints the full itemized report; directories print a project
summary with a worst-first ranking.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("format", "f", "", "Output format: text, json, markdown")
	analyzeCmd.Flags().StringP("output", "o", "", "Write output to file")
	analyzeCmd.Flags().Int("top", 0, "Limit the ranking to the N worst files")
	analyzeCmd.Flags().Int("min-score", 0, "Exit non-zero if the project score is below this")
	analyzeCmd.Flags().Bool("no-cache", false, "Bypass the report cache")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	paths := getPaths(args)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if f := getFormat(cmd); f != "" {
		format = f
	}
	colored := cfg.Output.Color && !noColor

	formatter, err := output.NewFormatter(output.ParseFormat(format), getOutputFile(cmd), colored)
	if err != nil {
		return err
	}
	defer formatter.Close()

	// A single explicit file gets the detailed per-file view.
	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			return analyzeSingle(cfg, args[0], formatter)
		}
	}

	files, err := scanner.New(cfg).ScanPaths(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No source files found")
		return nil
	}

	files, skipped := scanner.FilterBySize(files, cfg.Analysis.MaxFileSize)
	if skipped > 0 && verbose {
		fmt.Fprintf(os.Stderr, "skipped %d oversized files\n", skipped)
	}

	reports, procErrs := analyzeFiles(cmd, cfg, files)
	if procErrs != nil && verbose {
		for _, pe := range procErrs.Errors {
			fmt.Fprintf(os.Stderr, "warning: %v\n", pe)
		}
	}

	summary := report.Build(reports)
	if top, _ := cmd.Flags().GetInt("top"); top > 0 && len(summary.Ranking) > top {
		summary.Ranking = summary.Ranking[:top]
	}

	if err := formatter.Output(summary); err != nil {
		return err
	}

	if minScore, _ := cmd.Flags().GetInt("min-score"); minScore > 0 && summary.AverageScore < float64(minScore) {
		formatter.Error("Project score %.1f below minimum %d", summary.AverageScore, minScore)
		os.Exit(1)
	}
	return nil
}

// analyzeFiles grades files in parallel, consulting the content-addressed
// cache when enabled.
func analyzeFiles(cmd *cobra.Command, cfg *config.Config, files []string) ([]*models.Report, *fileproc.ProcessingErrors) {
	noCache, _ := cmd.Flags().GetBool("no-cache")
	store, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, cfg.Cache.Enabled && !noCache)
	if err != nil {
		store, _ = cache.New("", 0, false)
	}

	a := analyzer.New(cfg.AnalyzerOptions()...)

	var tracker *progress.Tracker
	var onProgress fileproc.ProgressFunc
	if len(files) > 1 {
		tracker = progress.NewTracker(fmt.Sprintf("Analyzing %d files", len(files)), len(files))
		onProgress = tracker.Tick
	}

	reports, procErrs := fileproc.MapN(files, cfg.Analysis.Workers, func(path string) (*models.Report, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		hash := cache.HashBytes(data)

		if cached, ok := store.Get(path, hash); ok {
			var r models.Report
			if err := json.Unmarshal(cached, &r); err == nil {
				return &r, nil
			}
		}

		r := a.Analyze(path, string(data))
		if encoded, err := json.Marshal(r); err == nil {
			_ = store.Set(path, hash, encoded)
		}
		return r, nil
	}, onProgress)

	if tracker != nil {
		tracker.FinishSuccess()
	}
	return reports, procErrs
}

func analyzeSingle(cfg *config.Config, path string, formatter *output.Formatter) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	a := analyzer.New(cfg.AnalyzerOptions()...)
	r := a.Analyze(path, string(data))
	return formatter.Output(&report.FileReport{Report: r})
}
