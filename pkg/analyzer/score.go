package analyzer

import (
	"fmt"

	"github.com/gradr/gradr/pkg/models"
)

// scoreInputs carries the aggregated signals the scorer reduces.
type scoreInputs struct {
	AvgComplexity float64
	Duplication   float64
	NamingIssues  int
	CodeLines     int
	LongFunctions int
	ErrorSmells   int
	WarningSmells int
	CommentRatio  float64
}

// computeScore starts at 100 and applies each penalty bucket independently,
// using the highest matching tier per bucket. The final score is clamped to
// [0, 100].
func computeScore(in scoreInputs) (int, []models.Penalty) {
	score := 100
	penalties := make([]models.Penalty, 0)

	apply := func(metric, value string, delta int) {
		penalties = append(penalties, models.Penalty{Metric: metric, Value: value, Delta: delta})
		score += delta
	}

	switch {
	case in.AvgComplexity > 15:
		apply("average complexity", fmt.Sprintf("%.1f", in.AvgComplexity), -25)
	case in.AvgComplexity > 10:
		apply("average complexity", fmt.Sprintf("%.1f", in.AvgComplexity), -15)
	case in.AvgComplexity > 7:
		apply("average complexity", fmt.Sprintf("%.1f", in.AvgComplexity), -8)
	}

	switch {
	case in.Duplication > 20:
		apply("duplication", fmt.Sprintf("%.1f%%", in.Duplication), -20)
	case in.Duplication > 10:
		apply("duplication", fmt.Sprintf("%.1f%%", in.Duplication), -12)
	case in.Duplication > 5:
		apply("duplication", fmt.Sprintf("%.1f%%", in.Duplication), -5)
	}

	switch {
	case in.NamingIssues > 10:
		apply("naming issues", fmt.Sprintf("%d issues", in.NamingIssues), -15)
	case in.NamingIssues > 5:
		apply("naming issues", fmt.Sprintf("%d issues", in.NamingIssues), -8)
	case in.NamingIssues > 0:
		apply("naming issues", fmt.Sprintf("%d issues", in.NamingIssues), -3)
	}

	switch {
	case in.CodeLines > 500:
		apply("file length", fmt.Sprintf("%d code lines", in.CodeLines), -10)
	case in.CodeLines > 300:
		apply("file length", fmt.Sprintf("%d code lines", in.CodeLines), -5)
	}

	if in.LongFunctions > 3 {
		apply("long functions", fmt.Sprintf("%d functions", in.LongFunctions), -15)
	} else if in.LongFunctions > 0 {
		apply("long functions", fmt.Sprintf("%d functions", in.LongFunctions), -5*in.LongFunctions)
	}

	if in.ErrorSmells > 0 {
		delta := 5 * in.ErrorSmells
		if delta > 20 {
			delta = 20
		}
		apply("error smells", fmt.Sprintf("%d smells", in.ErrorSmells), -delta)
	}

	if in.WarningSmells > 5 {
		delta := 2 * in.WarningSmells
		if delta > 15 {
			delta = 15
		}
		apply("warning smells", fmt.Sprintf("%d smells", in.WarningSmells), -delta)
	}

	if in.CommentRatio < 3 && in.CodeLines > 50 {
		apply("comment ratio", fmt.Sprintf("%.1f%%", in.CommentRatio), -5)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, penalties
}
