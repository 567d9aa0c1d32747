package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gradr/gradr/pkg/lang"
	"github.com/gradr/gradr/pkg/models"
)

// shortVarRe matches declarations of single-character variables, either
// keyword-style (const/let/var) or typed (int x = ...).
var shortVarRe = regexp.MustCompile(`\b(?:const|let|var|int|long|short|float|double|string|bool|char|byte)\s+([A-Za-z_])\s*[=;:]`)

// CheckNaming validates extracted function names against the language's
// casing convention and flags single-letter variable declarations outside
// the conventional short-name allowlist.
func (a *Analyzer) CheckNaming(text string, cfg *lang.Config, functions []models.FunctionInfo) []models.NamingIssue {
	issues := make([]models.NamingIssue, 0)

	for _, fn := range functions {
		first := rune(fn.Name[0])
		switch cfg.Convention {
		case lang.ConventionCamelCase:
			// All-caps names are treated as constants or acronyms, not
			// convention violations.
			if unicode.IsUpper(first) && fn.Name != strings.ToUpper(fn.Name) {
				issues = append(issues, models.NamingIssue{
					Kind:     models.NamingFunction,
					Name:     fn.Name,
					Expected: string(lang.ConventionCamelCase),
					Line:     fn.StartLine,
				})
			}
		case lang.ConventionPascalCase:
			if unicode.IsLower(first) {
				issues = append(issues, models.NamingIssue{
					Kind:     models.NamingMethod,
					Name:     fn.Name,
					Expected: string(lang.ConventionPascalCase),
					Line:     fn.StartLine,
				})
			}
		}
	}

	for _, m := range shortVarRe.FindAllStringSubmatchIndex(text, -1) {
		name := text[m[2]:m[3]]
		if _, ok := a.shortNames[name]; ok {
			continue
		}
		issues = append(issues, models.NamingIssue{
			Kind:     models.NamingVariable,
			Name:     name,
			Expected: "a descriptive name",
			Line:     lineAt(text, m[0]),
		})
	}

	return issues
}
