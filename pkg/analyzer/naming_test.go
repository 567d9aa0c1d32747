package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradr/gradr/pkg/lang"
	"github.com/gradr/gradr/pkg/models"
)

func TestCheckNamingCamelCaseViolation(t *testing.T) {
	a := New()
	issues := a.CheckNaming("", lang.ConfigFor("a.js"), []models.FunctionInfo{
		{Name: "FetchData", StartLine: 3},
		{Name: "fetchData", StartLine: 9},
	})

	require.Len(t, issues, 1)
	assert.Equal(t, models.NamingFunction, issues[0].Kind)
	assert.Equal(t, "FetchData", issues[0].Name)
	assert.Equal(t, "camelCase", issues[0].Expected)
	assert.Equal(t, 3, issues[0].Line)
}

func TestCheckNamingAllCapsExempt(t *testing.T) {
	// all-caps names read as constants or acronyms, not violations
	a := New()
	issues := a.CheckNaming("", lang.ConfigFor("a.js"), []models.FunctionInfo{
		{Name: "HTTP", StartLine: 1},
		{Name: "MAX_RETRIES", StartLine: 2},
	})
	assert.Empty(t, issues)
}

func TestCheckNamingPascalCase(t *testing.T) {
	a := New()
	issues := a.CheckNaming("", lang.ConfigFor("a.cs"), []models.FunctionInfo{
		{Name: "getData", StartLine: 4},
		{Name: "GetData", StartLine: 8},
	})

	require.Len(t, issues, 1)
	assert.Equal(t, models.NamingMethod, issues[0].Kind)
	assert.Equal(t, "getData", issues[0].Name)
	assert.Equal(t, "PascalCase", issues[0].Expected)
}

func TestCheckNamingShortVariables(t *testing.T) {
	text := "const longName = 1;\nconst x = 2;\nconst q = 3;\nint n = 5;\n"
	a := New()
	issues := a.CheckNaming(text, lang.ConfigFor("a.js"), nil)

	require.Len(t, issues, 2)
	assert.Equal(t, models.NamingVariable, issues[0].Kind)
	assert.Equal(t, "q", issues[0].Name)
	assert.Equal(t, 3, issues[0].Line)
	assert.Equal(t, "a descriptive name", issues[0].Expected)
	assert.Equal(t, "n", issues[1].Name)
	assert.Equal(t, 4, issues[1].Line)
}

func TestCheckNamingShortVariableAllowlistOverride(t *testing.T) {
	text := "const x = 2;\nconst q = 3;\n"
	a := New(WithShortNameAllowlist([]string{"q"}))
	issues := a.CheckNaming(text, lang.ConfigFor("a.js"), nil)

	require.Len(t, issues, 1)
	assert.Equal(t, "x", issues[0].Name)
}

func TestCheckNamingEmpty(t *testing.T) {
	issues := New().CheckNaming("", lang.ConfigFor("a.js"), nil)
	assert.NotNil(t, issues)
	assert.Empty(t, issues)
}
