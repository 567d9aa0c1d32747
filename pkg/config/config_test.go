package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 120, cfg.Analysis.LongLineLimit)
	assert.Equal(t, 4, cfg.Analysis.MaxNesting)
	assert.Equal(t, 5000, cfg.Analysis.BraceScanLimit)
	assert.Equal(t, 50, cfg.Analysis.LongFunctionLines)
	assert.Contains(t, cfg.Analysis.MagicNumbers, "404")
	assert.Contains(t, cfg.Analysis.ShortNames, "i")
	assert.Contains(t, cfg.Exclude.Dirs, "node_modules")
	assert.True(t, cfg.Exclude.Gitignore)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gradr.toml")
	content := `[analysis]
long_line_limit = 100
max_nesting = 3

[output]
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Analysis.LongLineLimit)
	assert.Equal(t, 3, cfg.Analysis.MaxNesting)
	assert.Equal(t, "json", cfg.Output.Format)
	// untouched sections keep defaults
	assert.Equal(t, 50, cfg.Analysis.LongFunctionLines)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gradr.yaml")
	content := `analysis:
  long_line_limit: 80
exclude:
  dirs:
    - generated
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Analysis.LongLineLimit)
	assert.Contains(t, cfg.Exclude.Dirs, "generated")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestAnalyzerOptions(t *testing.T) {
	cfg := DefaultConfig()
	assert.Len(t, cfg.AnalyzerOptions(), 6)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg := LoadOrDefault()
	assert.Equal(t, DefaultConfig(), cfg)
}
