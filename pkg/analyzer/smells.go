package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gradr/gradr/pkg/models"
)

var todoRe = regexp.MustCompile(`(?i)\b(TODO|FIXME|HACK|XXX|BUG)\b`)

// debugPatterns match common debug/print output constructs.
var debugPatterns = []*regexp.Regexp{
	regexp.MustCompile(`console\.(?:log|debug|info|warn|error)\s*\(`),
	regexp.MustCompile(`System\.out\.print`),
	regexp.MustCompile(`fmt\.Print`),
	regexp.MustCompile(`Console\.Write`),
	regexp.MustCompile(`\bprint\s*\(`),
	regexp.MustCompile(`\bvar_dump\s*\(`),
	regexp.MustCompile(`\bdebugger\b`),
}

// magicNumberRe matches numeric literals of 2+ digits immediately following a
// comparison or arithmetic operator.
var magicNumberRe = regexp.MustCompile(`(?:==|!=|<=|>=|<|>|\+|-|\*|/|%)\s*(\d{2,})\b`)

// emptyCatchPatterns match exception handlers with no body.
var emptyCatchPatterns = []*regexp.Regexp{
	regexp.MustCompile(`catch\s*(?:\([^)]*\))?\s*\{\s*\}`),
	regexp.MustCompile(`(?m)except[^:\n]*:\s*pass\b`),
}

// DetectSmells scans for maintainability findings. Results are ordered by
// detection pass, not by line: the line scan (long lines, TODO markers, deep
// nesting) comes first, then debug calls, magic numbers, and empty handlers.
func (a *Analyzer) DetectSmells(text string) []models.CodeSmell {
	smells := make([]models.CodeSmell, 0)

	// Line scan. Nesting depth is running state across the whole file, not
	// reset per function.
	depth := 0
	for i, line := range splitLines(text) {
		lineNo := i + 1

		if len(line) > a.longLineLimit {
			smells = append(smells, models.CodeSmell{
				Type:     models.SmellLongLine,
				Line:     lineNo,
				Message:  fmt.Sprintf("line is %d characters (max %d)", len(line), a.longLineLimit),
				Severity: models.SeverityWarning,
			})
		}

		if idx := lineCommentIndex(line); idx >= 0 {
			for _, tag := range todoRe.FindAllString(line[idx:], -1) {
				smells = append(smells, models.CodeSmell{
					Type:     models.SmellTodo,
					Line:     lineNo,
					Message:  fmt.Sprintf("unresolved %s marker", strings.ToUpper(tag)),
					Severity: models.SeverityInfo,
				})
			}
		}

		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth > a.maxNesting {
			smells = append(smells, models.CodeSmell{
				Type:     models.SmellDeepNesting,
				Line:     lineNo,
				Message:  fmt.Sprintf("nesting depth %d exceeds %d", depth, a.maxNesting),
				Severity: models.SeverityError,
			})
		}
	}

	for _, pattern := range debugPatterns {
		for _, m := range pattern.FindAllStringIndex(text, -1) {
			smells = append(smells, models.CodeSmell{
				Type:     models.SmellDebug,
				Line:     lineAt(text, m[0]),
				Message:  fmt.Sprintf("debug output: %s", strings.TrimSpace(text[m[0]:m[1]])),
				Severity: models.SeverityWarning,
			})
		}
	}

	for _, m := range magicNumberRe.FindAllStringSubmatchIndex(text, -1) {
		value := text[m[2]:m[3]]
		if _, allowed := a.magicAllowlist[value]; allowed {
			continue
		}
		smells = append(smells, models.CodeSmell{
			Type:     models.SmellMagicNumber,
			Line:     lineAt(text, m[0]),
			Message:  fmt.Sprintf("magic number %s", value),
			Severity: models.SeverityWarning,
		})
	}

	for _, pattern := range emptyCatchPatterns {
		for _, m := range pattern.FindAllStringIndex(text, -1) {
			smells = append(smells, models.CodeSmell{
				Type:     models.SmellEmptyCatch,
				Line:     lineAt(text, m[0]),
				Message:  "empty exception handler",
				Severity: models.SeverityError,
			})
		}
	}

	return smells
}

// lineCommentIndex returns the offset of a single-line comment marker within
// the line, or -1. Both // and # are recognized regardless of language.
func lineCommentIndex(line string) int {
	slash := strings.Index(line, "//")
	hash := strings.Index(line, "#")
	switch {
	case slash < 0:
		return hash
	case hash < 0:
		return slash
	case hash < slash:
		return hash
	default:
		return slash
	}
}
