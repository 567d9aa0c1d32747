package analyzer

import (
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gradr/gradr/pkg/models"
)

const (
	duplicationWindow = 3
	significantMinLen = 10
	previewMaxLen     = 60
	maxFragmentSample = 5
)

// importLineRe filters import-style lines out of duplication analysis
// regardless of language; import blocks repeat legitimately.
var importLineRe = regexp.MustCompile(`^(?:import|using|from|package|require)\b`)

var commentLinePrefixes = []string{"//", "#", "/*", "*", "--"}

// DetectDuplication finds repeated 3-line windows of significant code within
// one file. Fragments are keyed by xxhash of the joined window and counted in
// first-seen order.
func (a *Analyzer) DetectDuplication(text string) models.DuplicationReport {
	report := models.DuplicationReport{
		Samples: make([]models.DuplicateFragment, 0),
	}

	significant := significantLines(text)
	if len(significant) == 0 {
		return report
	}

	type fragment struct {
		firstLine string
		count     int
	}
	index := make(map[uint64]int)
	fragments := make([]*fragment, 0)

	for i := 0; i+duplicationWindow <= len(significant); i++ {
		window := significant[i : i+duplicationWindow]
		key := xxhash.Sum64String(strings.Join(window, "\n"))
		if at, ok := index[key]; ok {
			fragments[at].count++
			continue
		}
		index[key] = len(fragments)
		fragments = append(fragments, &fragment{firstLine: window[0], count: 1})
	}

	duplicatedLines := 0
	for _, f := range fragments {
		if f.count <= 1 {
			continue
		}
		report.Fragments++
		duplicatedLines += f.count * duplicationWindow
		if len(report.Samples) < maxFragmentSample {
			report.Samples = append(report.Samples, models.DuplicateFragment{
				Preview: preview(f.firstLine),
				Count:   f.count,
			})
		}
	}

	pct := float64(duplicatedLines) / float64(len(significant)) * 100
	if pct > 100 {
		pct = 100
	}
	report.Percentage = pct
	return report
}

// significantLines returns trimmed lines that are long enough to matter and
// are neither comments nor import statements.
func significantLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= significantMinLen {
			continue
		}
		if isCommentLine(trimmed) || importLineRe.MatchString(trimmed) {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}

func isCommentLine(trimmed string) bool {
	for _, prefix := range commentLinePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

func preview(line string) string {
	if len(line) <= previewMaxLen {
		return line
	}
	return line[:previewMaxLen]
}
