package analyzer

import (
	"fmt"
	"strings"

	"github.com/gradr/gradr/pkg/lang"
	"github.com/gradr/gradr/pkg/models"
)

// reservedNames are keywords and literals that the loose signature patterns
// occasionally capture as candidate names.
var reservedNames = map[string]struct{}{
	"if": {}, "else": {}, "for": {}, "foreach": {}, "while": {}, "do": {},
	"switch": {}, "case": {}, "catch": {}, "try": {}, "finally": {},
	"return": {}, "class": {}, "interface": {}, "enum": {}, "struct": {},
	"function": {}, "func": {}, "def": {}, "new": {}, "delete": {},
	"async": {}, "await": {}, "yield": {}, "typeof": {}, "in": {}, "of": {},
	"true": {}, "false": {}, "null": {}, "undefined": {}, "nil": {}, "none": {},
}

// FindFunctions applies the language's ordered signature patterns to the raw
// text. Each match's body is located by brace-balance scanning from the match
// start; matches are deduplicated by (name, start line) so a declaration
// recognized by two overlapping patterns is counted once, first match wins.
func (a *Analyzer) FindFunctions(text string, cfg *lang.Config) []models.FunctionInfo {
	functions := make([]models.FunctionInfo, 0)
	seen := make(map[string]struct{})

	for _, pattern := range cfg.FunctionPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			if m[2] < 0 {
				continue
			}
			name := text[m[2]:m[3]]
			if name == "" {
				continue
			}
			if _, reserved := reservedNames[strings.ToLower(name)]; reserved {
				continue
			}

			startLine := lineAt(text, m[0])
			key := fmt.Sprintf("%s:%d", name, startLine)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			body := a.extractBody(text, m[0])
			functions = append(functions, models.FunctionInfo{
				Name:       name,
				StartLine:  startLine,
				Lines:      strings.Count(body, "\n") + 1,
				Complexity: Complexity(body),
				Body:       body,
			})
		}
	}
	return functions
}

// extractBody scans forward from start counting braces and stops once depth
// returns to zero after at least one opening brace. The scan is capped at the
// configured limit; if no balanced pair is found within the window, the rest
// of the current line is used instead. The cap guarantees termination on
// truncated or malformed input.
func (a *Analyzer) extractBody(text string, start int) string {
	end := start + a.braceScanLimit
	if end > len(text) {
		end = len(text)
	}

	depth := 0
	opened := false
	for i := start; i < end; i++ {
		switch text[i] {
		case '{':
			depth++
			opened = true
		case '}':
			depth--
			if opened && depth <= 0 {
				return text[start : i+1]
			}
		}
	}

	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		return text[start : start+nl]
	}
	return text[start:]
}

// lineAt returns the 1-based line number of a byte offset.
func lineAt(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
