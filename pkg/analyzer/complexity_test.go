package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexity(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty", "", 1},
		{"straight line", "return x;", 1},
		{"branches and loop", "if (a) { } else if (b) { } for (;;) { }", 4},
		{"logical operators", "a && b || c", 3},
		{"nullish coalescing", "value ?? fallback", 2},
		{"optional chaining", "obj?.field", 2},
		{"ternary", "cond ? a : b", 2},
		{"while", "while (x) { }", 2},
		{"switch cases", "switch (x) { case 1: case 2: case 3: }", 4},
		{"python branches", "if x:\nelif y:\nexcept ValueError:", 4},
		{"catch", "try { } catch (err) { }", 2},
		{"foreach", "foreach (var v in items) { }", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Complexity(tt.body))
		})
	}
}

func TestComplexityWordBoundaries(t *testing.T) {
	// identifiers containing keywords must not count
	assert.Equal(t, 1, Complexity("notifyUser(formatted);"))
	assert.Equal(t, 1, Complexity("classifier.modifier()"))
}

func TestComplexityAdditive(t *testing.T) {
	base := Complexity("if (a) { }")
	assert.Equal(t, base+1, Complexity("if (a) { } if (b) { }"))
}
