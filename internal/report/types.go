// Package report aggregates per-file analysis reports into a project view
// and renders both levels for the CLI.
package report

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/gradr/gradr/pkg/models"
)

// FileScore is one row of the project ranking.
type FileScore struct {
	File         string `json:"file"`
	Language     string `json:"language"`
	Score        int    `json:"score"`
	Grade        string `json:"grade"`
	CodeLines    int    `json:"code_lines"`
	Smells       int    `json:"smells"`
	NamingIssues int    `json:"naming_issues"`
}

// Summary is the aggregate over a set of file reports.
type Summary struct {
	FilesAnalyzed int            `json:"files_analyzed"`
	AverageScore  float64        `json:"average_score"`
	ScoreStdDev   float64        `json:"score_std_dev"`
	OverallGrade  string         `json:"overall_grade"`
	Distribution  map[string]int `json:"distribution"`
	Ranking       []FileScore    `json:"ranking"`
}

// Build computes the project summary. The ranking is worst-first: score
// ascending, ties broken by filename for deterministic output.
func Build(reports []*models.Report) *Summary {
	summary := &Summary{
		FilesAnalyzed: len(reports),
		Distribution:  map[string]int{"A": 0, "B": 0, "C": 0, "D": 0, "F": 0},
		Ranking:       make([]FileScore, 0, len(reports)),
	}
	if len(reports) == 0 {
		return summary
	}

	scores := make([]float64, len(reports))
	for i, r := range reports {
		scores[i] = float64(r.Score)
		summary.Distribution[r.Grade]++
		summary.Ranking = append(summary.Ranking, FileScore{
			File:         r.File,
			Language:     r.Language,
			Score:        r.Score,
			Grade:        r.Grade,
			CodeLines:    r.Lines.Code,
			Smells:       len(r.Smells),
			NamingIssues: len(r.NamingIssues),
		})
	}

	summary.AverageScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		summary.ScoreStdDev = stat.StdDev(scores, nil)
	}
	summary.OverallGrade = models.GradeFor(int(math.Round(summary.AverageScore)))

	sort.Slice(summary.Ranking, func(i, j int) bool {
		a, b := summary.Ranking[i], summary.Ranking[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		return a.File < b.File
	})
	return summary
}
