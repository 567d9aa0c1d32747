package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/gradr/gradr/internal/output"
	"github.com/gradr/gradr/pkg/models"
)

// RenderData implements output.Renderable.
func (s *Summary) RenderData() any { return s }

// RenderText prints the project summary with a worst-first ranking table.
func (s *Summary) RenderText(w io.Writer, colored bool) error {
	if s.FilesAnalyzed == 0 {
		fmt.Fprintln(w, "No files analyzed")
		return nil
	}

	grade := s.OverallGrade
	if colored {
		grade = output.GradeColor(grade)
	}
	fmt.Fprintf(w, "\nProject Score: %.1f/100 (%s)\n", s.AverageScore, grade)
	fmt.Fprintf(w, "Files analyzed: %d\n", s.FilesAnalyzed)
	fmt.Fprintf(w, "Grades: A=%d B=%d C=%d D=%d F=%d\n\n",
		s.Distribution["A"], s.Distribution["B"], s.Distribution["C"],
		s.Distribution["D"], s.Distribution["F"])

	table := s.rankingTable()
	return table.RenderText(w, colored)
}

// RenderMarkdown prints the summary as a markdown document.
func (s *Summary) RenderMarkdown(w io.Writer) error {
	fmt.Fprintf(w, "# Project Score: %.1f/100 (%s)\n\n", s.AverageScore, s.OverallGrade)
	fmt.Fprintf(w, "Files analyzed: %d\n\n", s.FilesAnalyzed)

	fmt.Fprintln(w, "| Grade | Files |")
	fmt.Fprintln(w, "|-------|-------|")
	for _, g := range []string{"A", "B", "C", "D", "F"} {
		fmt.Fprintf(w, "| %s | %d |\n", g, s.Distribution[g])
	}
	fmt.Fprintln(w)

	return s.rankingTable().RenderMarkdown(w)
}

func (s *Summary) rankingTable() *output.Table {
	rows := make([][]string, 0, len(s.Ranking))
	for _, f := range s.Ranking {
		rows = append(rows, []string{
			f.File,
			f.Language,
			strconv.Itoa(f.Score),
			f.Grade,
			strconv.Itoa(f.CodeLines),
			strconv.Itoa(f.Smells),
			strconv.Itoa(f.NamingIssues),
		})
	}
	return &output.Table{
		Title:   "Files (worst first)",
		Headers: []string{"File", "Language", "Score", "Grade", "Code", "Smells", "Naming"},
		Rows:    rows,
		Data:    s.Ranking,
	}
}

// FileReport wraps a single file report for rendering.
type FileReport struct {
	*models.Report
}

// RenderData implements output.Renderable.
func (f *FileReport) RenderData() any { return f.Report }

// RenderText prints the full itemized report for one file.
func (f *FileReport) RenderText(w io.Writer, colored bool) error {
	r := f.Report

	grade := r.Grade
	if colored {
		grade = output.GradeColor(grade)
	}
	fmt.Fprintf(w, "\n%s  [%s]\n", r.File, r.Language)
	fmt.Fprintf(w, "Score: %d/100 (%s)\n\n", r.Score, grade)

	fmt.Fprintf(w, "Lines: %d total, %d code, %d comment, %d blank (comment ratio %.1f%%)\n",
		r.Lines.Total, r.Lines.Code, r.Lines.Comment, r.Lines.Blank, r.CommentRatio)
	fmt.Fprintf(w, "Functions: %d (avg complexity %.1f, max %d)\n",
		r.Functions.Count, r.Functions.AvgComplexity, r.Functions.MaxComplexity)
	fmt.Fprintf(w, "Duplication: %.1f%% (%d fragments)\n", r.Duplication.Percentage, r.Duplication.Fragments)
	fmt.Fprintf(w, "Types: %d, imports: %d\n", r.TypeCount, r.ImportCount)

	if len(r.Functions.Long) > 0 {
		fmt.Fprintf(w, "\nLong functions:\n")
		for _, fn := range r.Functions.Long {
			fmt.Fprintf(w, "  %s (line %d, %d lines)\n", fn.Name, fn.StartLine, fn.Lines)
		}
	}
	if len(r.Functions.Complex) > 0 {
		fmt.Fprintf(w, "\nComplex functions:\n")
		for _, fn := range r.Functions.Complex {
			fmt.Fprintf(w, "  %s (line %d, complexity %d)\n", fn.Name, fn.StartLine, fn.Complexity)
		}
	}

	if len(r.NamingIssues) > 0 {
		fmt.Fprintf(w, "\nNaming issues:\n")
		for _, issue := range r.NamingIssues {
			fmt.Fprintf(w, "  line %d: %s %q, expected %s\n", issue.Line, issue.Kind, issue.Name, issue.Expected)
		}
	}

	if len(r.Smells) > 0 {
		fmt.Fprintf(w, "\nSmells:\n")
		for _, smell := range r.Smells {
			sev := string(smell.Severity)
			if colored {
				sev = output.SeverityColor(sev, sev)
			}
			fmt.Fprintf(w, "  line %d [%s] %s: %s\n", smell.Line, sev, smell.Type, smell.Message)
		}
	}

	if len(r.Penalties) > 0 {
		fmt.Fprintf(w, "\nPenalties:\n")
		for _, p := range r.Penalties {
			delta := fmt.Sprintf("%d", p.Delta)
			if colored {
				delta = color.RedString(delta)
			}
			fmt.Fprintf(w, "  %-20s %-16s %s\n", p.Metric, p.Value, delta)
		}
	} else {
		fmt.Fprintf(w, "\nNo penalties applied\n")
	}

	return nil
}

// RenderMarkdown prints the file report as markdown.
func (f *FileReport) RenderMarkdown(w io.Writer) error {
	r := f.Report

	fmt.Fprintf(w, "# %s\n\n", r.File)
	fmt.Fprintf(w, "**Score:** %d/100 (%s), %s\n\n", r.Score, r.Grade, r.Language)

	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|--------|-------|")
	fmt.Fprintf(w, "| Total lines | %d |\n", r.Lines.Total)
	fmt.Fprintf(w, "| Code lines | %d |\n", r.Lines.Code)
	fmt.Fprintf(w, "| Comment ratio | %.1f%% |\n", r.CommentRatio)
	fmt.Fprintf(w, "| Functions | %d |\n", r.Functions.Count)
	fmt.Fprintf(w, "| Avg complexity | %.1f |\n", r.Functions.AvgComplexity)
	fmt.Fprintf(w, "| Max complexity | %d |\n", r.Functions.MaxComplexity)
	fmt.Fprintf(w, "| Duplication | %.1f%% |\n", r.Duplication.Percentage)
	fmt.Fprintf(w, "| Naming issues | %d |\n", len(r.NamingIssues))
	fmt.Fprintf(w, "| Smells | %d |\n", len(r.Smells))
	fmt.Fprintln(w)

	if len(r.Penalties) > 0 {
		fmt.Fprintln(w, "## Penalties")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Metric | Value | Delta |")
		fmt.Fprintln(w, "|--------|-------|-------|")
		for _, p := range r.Penalties {
			fmt.Fprintf(w, "| %s | %s | %d |\n", p.Metric, p.Value, p.Delta)
		}
		fmt.Fprintln(w)
	}

	if len(r.Smells) > 0 {
		fmt.Fprintln(w, "## Smells")
		fmt.Fprintln(w)
		for _, smell := range r.Smells {
			fmt.Fprintf(w, "- line %d `%s` (%s): %s\n", smell.Line, smell.Type, smell.Severity, smell.Message)
		}
		fmt.Fprintln(w)
	}

	return nil
}
