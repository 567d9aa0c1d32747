package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradr/gradr/pkg/models"
)

func TestComputeScorePerfect(t *testing.T) {
	score, penalties := computeScore(scoreInputs{AvgComplexity: 1, CommentRatio: 10})
	assert.Equal(t, 100, score)
	assert.NotNil(t, penalties)
	assert.Empty(t, penalties)
}

func TestComputeScoreLargeCleanFile(t *testing.T) {
	// a long but otherwise healthy file loses exactly the length penalty
	score, penalties := computeScore(scoreInputs{
		AvgComplexity: 5,
		CodeLines:     600,
		CommentRatio:  8,
	})

	require.Len(t, penalties, 1)
	assert.Equal(t, "file length", penalties[0].Metric)
	assert.Equal(t, -10, penalties[0].Delta)
	assert.Equal(t, 90, score)
	assert.Equal(t, "A", models.GradeFor(score))
}

func TestComputeScoreComplexityTiers(t *testing.T) {
	tests := []struct {
		avg   float64
		delta int
	}{
		{16, -25},
		{15.1, -25},
		{12, -15},
		{8, -8},
		{7, 0},
		{1, 0},
	}
	for _, tt := range tests {
		score, penalties := computeScore(scoreInputs{AvgComplexity: tt.avg, CommentRatio: 10})
		if tt.delta == 0 {
			assert.Empty(t, penalties, "avg %.1f", tt.avg)
			assert.Equal(t, 100, score)
			continue
		}
		require.Len(t, penalties, 1, "avg %.1f", tt.avg)
		assert.Equal(t, "average complexity", penalties[0].Metric)
		assert.Equal(t, tt.delta, penalties[0].Delta)
		assert.Equal(t, 100+tt.delta, score)
	}
}

func TestComputeScoreDuplicationTiers(t *testing.T) {
	tests := []struct {
		pct   float64
		delta int
	}{
		{25, -20},
		{15, -12},
		{6, -5},
		{5, 0},
	}
	for _, tt := range tests {
		score, _ := computeScore(scoreInputs{Duplication: tt.pct, CommentRatio: 10})
		assert.Equal(t, 100+tt.delta, score, "duplication %.1f", tt.pct)
	}
}

func TestComputeScoreNamingTiers(t *testing.T) {
	tests := []struct {
		issues int
		delta  int
	}{
		{11, -15},
		{6, -8},
		{1, -3},
		{0, 0},
	}
	for _, tt := range tests {
		score, _ := computeScore(scoreInputs{NamingIssues: tt.issues, CommentRatio: 10})
		assert.Equal(t, 100+tt.delta, score, "%d issues", tt.issues)
	}
}

func TestComputeScoreFileLengthTiers(t *testing.T) {
	tests := []struct {
		lines int
		delta int
	}{
		{501, -10},
		{400, -5},
		{300, 0},
	}
	for _, tt := range tests {
		score, _ := computeScore(scoreInputs{CodeLines: tt.lines, CommentRatio: 10})
		assert.Equal(t, 100+tt.delta, score, "%d lines", tt.lines)
	}
}

func TestComputeScoreLongFunctions(t *testing.T) {
	tests := []struct {
		count int
		delta int
	}{
		{0, 0},
		{1, -5},
		{2, -10},
		{3, -15},
		{4, -15},
		{10, -15},
	}
	for _, tt := range tests {
		score, _ := computeScore(scoreInputs{LongFunctions: tt.count, CommentRatio: 10})
		assert.Equal(t, 100+tt.delta, score, "%d long functions", tt.count)
	}
}

func TestComputeScoreErrorSmellsCapped(t *testing.T) {
	tests := []struct {
		count int
		delta int
	}{
		{1, -5},
		{3, -15},
		{4, -20},
		{10, -20},
	}
	for _, tt := range tests {
		score, _ := computeScore(scoreInputs{ErrorSmells: tt.count, CommentRatio: 10})
		assert.Equal(t, 100+tt.delta, score, "%d error smells", tt.count)
	}
}

func TestComputeScoreWarningSmells(t *testing.T) {
	tests := []struct {
		count int
		delta int
	}{
		{5, 0},
		{6, -12},
		{7, -14},
		{8, -15},
		{20, -15},
	}
	for _, tt := range tests {
		score, _ := computeScore(scoreInputs{WarningSmells: tt.count, CommentRatio: 10})
		assert.Equal(t, 100+tt.delta, score, "%d warning smells", tt.count)
	}
}

func TestComputeScoreCommentRatio(t *testing.T) {
	score, penalties := computeScore(scoreInputs{CodeLines: 100, CommentRatio: 2.9})
	require.Len(t, penalties, 1)
	assert.Equal(t, "comment ratio", penalties[0].Metric)
	assert.Equal(t, 95, score)

	// small files are exempt
	score, penalties = computeScore(scoreInputs{CodeLines: 50, CommentRatio: 0})
	assert.Empty(t, penalties)
	assert.Equal(t, 100, score)

	score, _ = computeScore(scoreInputs{CodeLines: 100, CommentRatio: 3})
	assert.Equal(t, 100, score)
}

func TestComputeScoreClampedAtZero(t *testing.T) {
	score, penalties := computeScore(scoreInputs{
		AvgComplexity: 20,
		Duplication:   50,
		NamingIssues:  20,
		CodeLines:     1000,
		LongFunctions: 10,
		ErrorSmells:   10,
		WarningSmells: 30,
		CommentRatio:  0,
	})
	assert.Equal(t, 0, score)
	assert.Len(t, penalties, 8)
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score int
		grade string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{80, "B"},
		{79, "C"},
		{70, "C"},
		{69, "D"},
		{60, "D"},
		{59, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.grade, models.GradeFor(tt.score), "score %d", tt.score)
	}
}
