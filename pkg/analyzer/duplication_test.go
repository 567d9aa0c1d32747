package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDuplicationNone(t *testing.T) {
	text := "alpha := compute(111);\nbeta := compute(222);\ngamma := compute(333);\n"
	report := New().DetectDuplication(text)

	assert.Equal(t, 0.0, report.Percentage)
	assert.Equal(t, 0, report.Fragments)
	assert.NotNil(t, report.Samples)
	assert.Empty(t, report.Samples)
}

func TestDetectDuplicationEmpty(t *testing.T) {
	report := New().DetectDuplication("")
	assert.Equal(t, 0.0, report.Percentage)
	assert.NotNil(t, report.Samples)
}

func TestDetectDuplicationRepeatedBlock(t *testing.T) {
	text := strings.Join([]string{
		"first_unique_line_aaaa();",
		"dup_line_one_aaaa();",
		"dup_line_two_bbbb();",
		"dup_line_three_cccc();",
		"middle_unique_line_bbbb();",
		"dup_line_one_aaaa();",
		"dup_line_two_bbbb();",
		"dup_line_three_cccc();",
		"last_unique_line_cccc();",
	}, "\n")
	report := New().DetectDuplication(text)

	// one 3-line window occurs twice: 6 of 9 significant lines
	assert.InDelta(t, 66.67, report.Percentage, 0.01)
	assert.Equal(t, 1, report.Fragments)
	require.Len(t, report.Samples, 1)
	assert.Equal(t, "dup_line_one_aaaa();", report.Samples[0].Preview)
	assert.Equal(t, 2, report.Samples[0].Count)
}

func TestDetectDuplicationMonotonic(t *testing.T) {
	block := "dup_line_one_aaaa();\ndup_line_two_bbbb();\ndup_line_three_cccc();\n"
	a := New()

	before := a.DetectDuplication(block + "separator_line_xyz();\n" + block)
	after := a.DetectDuplication(block + "separator_line_xyz();\n" + block + block)
	assert.GreaterOrEqual(t, after.Percentage, before.Percentage)
}

func TestDetectDuplicationClampedAt100(t *testing.T) {
	line := "the_same_long_statement();\n"
	report := New().DetectDuplication(strings.Repeat(line, 8))

	assert.Equal(t, 100.0, report.Percentage)
}

func TestDetectDuplicationIgnoresCommentsAndImports(t *testing.T) {
	text := strings.Repeat("import something from 'somewhere';\n", 6) +
		strings.Repeat("// a repeated comment line\n", 6) +
		strings.Repeat("short;\n", 6)
	report := New().DetectDuplication(text)

	assert.Equal(t, 0.0, report.Percentage)
	assert.Equal(t, 0, report.Fragments)
}

func TestDetectDuplicationPreviewTruncated(t *testing.T) {
	long := strings.Repeat("a", 70) + "();\n"
	report := New().DetectDuplication(strings.Repeat(long, 6))

	require.NotEmpty(t, report.Samples)
	assert.Len(t, report.Samples[0].Preview, 60)
}
