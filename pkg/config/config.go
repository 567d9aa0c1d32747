// Package config loads gradr configuration from TOML, YAML, or JSON files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gradr/gradr/pkg/analyzer"
)

// Config holds all configuration options for gradr.
type Config struct {
	Analysis AnalysisConfig `koanf:"analysis"`
	Exclude  ExcludeConfig  `koanf:"exclude"`
	Cache    CacheConfig    `koanf:"cache"`
	Output   OutputConfig   `koanf:"output"`
}

// AnalysisConfig exposes the analyzer's policy knobs. The magic-number and
// short-name allowlists are judgment calls with known false positives, so
// they are configurable rather than hard-coded.
type AnalysisConfig struct {
	LongLineLimit     int      `koanf:"long_line_limit"`
	MaxNesting        int      `koanf:"max_nesting"`
	BraceScanLimit    int      `koanf:"brace_scan_limit"`
	LongFunctionLines int      `koanf:"long_function_lines"`
	MagicNumbers      []string `koanf:"magic_numbers"`
	ShortNames        []string `koanf:"short_names"`
	MaxFileSize       int64    `koanf:"max_file_size"`
	Workers           int      `koanf:"workers"`
}

// ExcludeConfig defines file exclusion patterns for directory scans.
type ExcludeConfig struct {
	Patterns   []string `koanf:"patterns"`
	Extensions []string `koanf:"extensions"`
	Dirs       []string `koanf:"dirs"`
	Gitignore  bool     `koanf:"gitignore"`
}

// CacheConfig controls the content-addressed report cache.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
	TTL     int    `koanf:"ttl"` // TTL in hours
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format string `koanf:"format"` // text, json, markdown
	Color  bool   `koanf:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			LongLineLimit:     analyzer.DefaultLongLineLimit,
			MaxNesting:        analyzer.DefaultMaxNesting,
			BraceScanLimit:    analyzer.DefaultBraceScanLimit,
			LongFunctionLines: analyzer.DefaultLongFunctionLines,
			MagicNumbers:      []string{"100", "200", "404", "500", "1000", "1024"},
			ShortNames:        []string{"i", "j", "k", "x", "y", "e", "_"},
			MaxFileSize:       1 << 20,
			Workers:           0, // 0 = 2x NumCPU
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*.min.js",
				"*.min.css",
				"*.d.ts",
			},
			Extensions: []string{
				".lock",
				".sum",
			},
			Dirs: []string{
				"vendor",
				"node_modules",
				".git",
				".gradr",
				"dist",
				"build",
				"__pycache__",
			},
			Gitignore: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".gradr/cache",
			TTL:     24,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// AnalyzerOptions translates the analysis section into analyzer options.
func (c *Config) AnalyzerOptions() []analyzer.Option {
	return []analyzer.Option{
		analyzer.WithLongLineLimit(c.Analysis.LongLineLimit),
		analyzer.WithMaxNesting(c.Analysis.MaxNesting),
		analyzer.WithBraceScanLimit(c.Analysis.BraceScanLimit),
		analyzer.WithLongFunctionLines(c.Analysis.LongFunctionLines),
		analyzer.WithMagicNumberAllowlist(c.Analysis.MagicNumbers),
		analyzer.WithShortNameAllowlist(c.Analysis.ShortNames),
	}
}

// Load loads configuration from a file, layered over the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault tries standard config locations, falling back to defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"gradr.toml",
		"gradr.yaml",
		"gradr.yml",
		"gradr.json",
		".gradr.toml",
		".gradr.yaml",
		".gradr.yml",
		".gradr.json",
	}

	for _, dir := range []string{".", ".gradr"} {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if cfg, err := Load(path); err == nil {
				return cfg
			}
		}
	}
	return DefaultConfig()
}
