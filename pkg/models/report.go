package models

// LineInfo holds line classification counts for a file.
type LineInfo struct {
	Total   int `json:"total"`
	Blank   int `json:"blank"`
	Comment int `json:"comment"`
	Code    int `json:"code"`
}

// FunctionInfo represents a single extracted function.
type FunctionInfo struct {
	Name       string `json:"name"`
	StartLine  int    `json:"start_line"`
	Lines      int    `json:"lines"`
	Complexity int    `json:"complexity"`
	Body       string `json:"-"`
}

// FunctionSummary aggregates per-function metrics for a file.
type FunctionSummary struct {
	Count         int            `json:"count"`
	AvgComplexity float64        `json:"avg_complexity"`
	MaxComplexity int            `json:"max_complexity"`
	Long          []FunctionInfo `json:"long,omitempty"`
	Complex       []FunctionInfo `json:"complex,omitempty"`
	All           []FunctionInfo `json:"all"`
}

// Penalty is a single itemized score deduction.
type Penalty struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
	Delta  int    `json:"delta"`
}

// Report is the complete quality analysis for one file.
// Every field is always populated; empty slices stand in for "no data".
type Report struct {
	File         string            `json:"file"`
	Language     string            `json:"language"`
	Score        int               `json:"score"`
	Grade        string            `json:"grade"`
	Lines        LineInfo          `json:"lines"`
	Functions    FunctionSummary   `json:"functions"`
	Duplication  DuplicationReport `json:"duplication"`
	NamingIssues []NamingIssue     `json:"naming_issues"`
	Smells       []CodeSmell       `json:"smells"`
	CommentRatio float64           `json:"comment_ratio"`
	Penalties    []Penalty         `json:"penalties"`
	TypeCount    int               `json:"type_count"`
	ImportCount  int               `json:"import_count"`
}

// GradeFor maps a 0-100 score to a letter grade.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// SmellCount returns the number of smells with the given severity.
func (r *Report) SmellCount(sev Severity) int {
	n := 0
	for _, s := range r.Smells {
		if s.Severity == sev {
			n++
		}
	}
	return n
}
