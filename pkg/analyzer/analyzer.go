// Package analyzer estimates source-code quality from raw text.
//
// The pipeline is deliberately grammar-free: language detection by extension,
// line classification, regex-based function discovery, lexical complexity
// estimation, sliding-window duplication detection, naming checks, and smell
// detection, reduced to a 0-100 score with an itemized penalty breakdown.
// The heuristics misfire inside string literals and comments; that is a
// documented property of the approach, not a defect.
package analyzer

import (
	"math"

	"github.com/gradr/gradr/pkg/lang"
	"github.com/gradr/gradr/pkg/models"
)

// Defaults for the policy knobs. All of them are overridable via options.
const (
	DefaultLongLineLimit     = 120
	DefaultMaxNesting        = 4
	DefaultBraceScanLimit    = 5000
	DefaultLongFunctionLines = 50
	DefaultComplexThreshold  = 10
)

// Analyzer runs the full quality pipeline over a single file's text.
// An Analyzer is immutable after construction and safe for concurrent use;
// every Analyze call works on its own accumulators.
type Analyzer struct {
	longLineLimit     int
	maxNesting        int
	braceScanLimit    int
	longFunctionLines int
	complexThreshold  int
	magicAllowlist    map[string]struct{}
	shortNames        map[string]struct{}
}

// Option is a functional option for configuring an Analyzer.
type Option func(*Analyzer)

// WithLongLineLimit sets the line length above which a long_line smell fires.
func WithLongLineLimit(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.longLineLimit = n
		}
	}
}

// WithMaxNesting sets the brace depth above which deep_nesting smells fire.
func WithMaxNesting(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxNesting = n
		}
	}
}

// WithBraceScanLimit caps how many characters the function-body scan may
// examine. The cap bounds worst-case cost on pathological input.
func WithBraceScanLimit(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.braceScanLimit = n
		}
	}
}

// WithLongFunctionLines sets the body line count above which a function is
// considered long.
func WithLongFunctionLines(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.longFunctionLines = n
		}
	}
}

// WithMagicNumberAllowlist replaces the set of numeric literals that the
// magic_number detector ignores.
func WithMagicNumberAllowlist(values []string) Option {
	return func(a *Analyzer) {
		a.magicAllowlist = make(map[string]struct{}, len(values))
		for _, v := range values {
			a.magicAllowlist[v] = struct{}{}
		}
	}
}

// WithShortNameAllowlist replaces the set of single-letter variable names
// the naming checker accepts.
func WithShortNameAllowlist(names []string) Option {
	return func(a *Analyzer) {
		a.shortNames = make(map[string]struct{}, len(names))
		for _, n := range names {
			a.shortNames[n] = struct{}{}
		}
	}
}

// New creates an Analyzer with default thresholds.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		longLineLimit:     DefaultLongLineLimit,
		maxNesting:        DefaultMaxNesting,
		braceScanLimit:    DefaultBraceScanLimit,
		longFunctionLines: DefaultLongFunctionLines,
		complexThreshold:  DefaultComplexThreshold,
		magicAllowlist: map[string]struct{}{
			"100": {}, "200": {}, "404": {}, "500": {}, "1000": {}, "1024": {},
		},
		shortNames: map[string]struct{}{
			"i": {}, "j": {}, "k": {}, "x": {}, "y": {}, "e": {}, "_": {},
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full pipeline with default thresholds.
func Analyze(filename, text string) *models.Report {
	return New().Analyze(filename, text)
}

// Analyze produces a complete Report for one file. It is pure: identical
// inputs yield identical reports, and malformed input never fails, it just
// scores poorly.
func (a *Analyzer) Analyze(filename, text string) *models.Report {
	cfg := lang.ConfigFor(filename)

	lines := CountLines(text, cfg)
	functions := a.FindFunctions(text, cfg)
	duplication := a.DetectDuplication(text)
	naming := a.CheckNaming(text, cfg, functions)
	smells := a.DetectSmells(text)

	summary := a.summarize(functions)
	ratio := commentRatio(lines)

	errorSmells := 0
	warningSmells := 0
	for _, s := range smells {
		switch s.Severity {
		case models.SeverityError:
			errorSmells++
		case models.SeverityWarning:
			warningSmells++
		}
	}

	score, penalties := computeScore(scoreInputs{
		AvgComplexity: summary.AvgComplexity,
		Duplication:   duplication.Percentage,
		NamingIssues:  len(naming),
		CodeLines:     lines.Code,
		LongFunctions: len(summary.Long),
		ErrorSmells:   errorSmells,
		WarningSmells: warningSmells,
		CommentRatio:  ratio,
	})

	return &models.Report{
		File:         filename,
		Language:     string(cfg.Language),
		Score:        score,
		Grade:        models.GradeFor(score),
		Lines:        lines,
		Functions:    summary,
		Duplication:  duplication,
		NamingIssues: naming,
		Smells:       smells,
		CommentRatio: ratio,
		Penalties:    penalties,
		TypeCount:    len(cfg.TypePattern.FindAllStringIndex(text, -1)),
		ImportCount:  len(cfg.ImportPattern.FindAllStringIndex(text, -1)),
	}
}

// summarize builds the function summary. Average and max complexity default
// to 1 when no functions were found.
func (a *Analyzer) summarize(functions []models.FunctionInfo) models.FunctionSummary {
	summary := models.FunctionSummary{
		Count:         len(functions),
		AvgComplexity: 1,
		MaxComplexity: 1,
		All:           functions,
	}
	if len(functions) == 0 {
		return summary
	}

	total := 0
	max := 0
	for _, fn := range functions {
		total += fn.Complexity
		if fn.Complexity > max {
			max = fn.Complexity
		}
		if fn.Lines > a.longFunctionLines {
			summary.Long = append(summary.Long, fn)
		}
		if fn.Complexity > a.complexThreshold {
			summary.Complex = append(summary.Complex, fn)
		}
	}
	summary.AvgComplexity = float64(total) / float64(len(functions))
	summary.MaxComplexity = max
	return summary
}

// commentRatio returns comment lines as a percentage of code lines, rounded
// to one decimal. Zero code lines yield 0.
func commentRatio(lines models.LineInfo) float64 {
	if lines.Code == 0 {
		return 0
	}
	ratio := float64(lines.Comment) / float64(lines.Code) * 100
	return math.Round(ratio*10) / 10
}
