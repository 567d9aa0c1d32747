package analyzer

import "regexp"

// decisionPatterns are the branching constructs counted by the complexity
// estimate. Counting is lexical: occurrences inside string literals and
// comments are over-counted, which is an accepted property of the
// grammar-free design.
var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bif\b`),
	regexp.MustCompile(`\belif\b`),
	regexp.MustCompile(`\bwhile\b`),
	regexp.MustCompile(`\bfor\b`),
	regexp.MustCompile(`\bforeach\b`),
	regexp.MustCompile(`\bcase\b`),
	regexp.MustCompile(`\bcatch\b`),
	regexp.MustCompile(`\bexcept\b`),
	regexp.MustCompile(`&&`),
	regexp.MustCompile(`\|\|`),
	regexp.MustCompile(`\?\?`),
	regexp.MustCompile(`\?\.`),
	regexp.MustCompile(`\s\?\s`), // ternary conditional
}

// Complexity estimates McCabe-style cyclomatic complexity of a function body
// by counting decision constructs. A body with no branching scores 1, one
// straight-line path.
func Complexity(body string) int {
	c := 1
	for _, pattern := range decisionPatterns {
		c += len(pattern.FindAllStringIndex(body, -1))
	}
	return c
}
