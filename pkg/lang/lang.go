// Package lang maps file extensions to per-language analysis configuration.
//
// The registry is a static table: adding a language means adding one entry,
// no analyzer code changes. Patterns are deliberately lexical heuristics,
// not grammars.
package lang

import (
	"regexp"
	"strings"
)

// Language identifies a supported source language.
type Language string

const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangPython     Language = "python"
	LangJava       Language = "java"
	LangCSharp     Language = "csharp"
	LangGo         Language = "go"
)

// Convention is the expected identifier casing style for a language.
type Convention string

const (
	ConventionCamelCase  Convention = "camelCase"
	ConventionPascalCase Convention = "PascalCase"
)

// Config holds the per-language analysis configuration. Configs are defined
// once at package init and never mutated.
type Config struct {
	Language   Language
	Name       string
	Extensions []string

	// Comment markers used by the line classifier.
	LineComment string
	BlockStart  string
	BlockEnd    string

	// FunctionPatterns is an ordered list; more specific forms come first
	// and the first capture group of each pattern is the function name.
	FunctionPatterns []*regexp.Regexp
	TypePattern      *regexp.Regexp
	ImportPattern    *regexp.Regexp

	Convention Convention
}

// jsFunctionPatterns are shared by JavaScript and TypeScript.
var jsFunctionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bfunction\s+([A-Za-z_$][\w$]*)\s*\(`),
	regexp.MustCompile(`(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?(?:function\b|\([^)]*\)\s*=>|[\w$]+\s*=>)`),
	regexp.MustCompile(`(?m)^\s*(?:static\s+)?(?:async\s+)?(?:get\s+|set\s+)?([A-Za-z_$][\w$]*)\s*\([^)]*\)\s*\{`),
}

// registry is ordered so detection by extension is deterministic.
var registry = []*Config{
	{
		Language:         LangJavaScript,
		Name:             "JavaScript",
		Extensions:       []string{".js", ".jsx", ".mjs", ".cjs"},
		LineComment:      "//",
		BlockStart:       "/*",
		BlockEnd:         "*/",
		FunctionPatterns: jsFunctionPatterns,
		TypePattern:      regexp.MustCompile(`\bclass\s+([A-Za-z_$][\w$]*)`),
		ImportPattern:    regexp.MustCompile(`(?m)^\s*(?:import\b|const\s+[\w$]+\s*=\s*require\b)`),
		Convention:       ConventionCamelCase,
	},
	{
		Language:         LangTypeScript,
		Name:             "TypeScript",
		Extensions:       []string{".ts", ".tsx"},
		LineComment:      "//",
		BlockStart:       "/*",
		BlockEnd:         "*/",
		FunctionPatterns: jsFunctionPatterns,
		TypePattern:      regexp.MustCompile(`\b(?:class|interface|enum)\s+([A-Za-z_$][\w$]*)`),
		ImportPattern:    regexp.MustCompile(`(?m)^\s*import\b`),
		Convention:       ConventionCamelCase,
	},
	{
		Language:    LangPython,
		Name:        "Python",
		Extensions:  []string{".py", ".pyw"},
		LineComment: "#",
		BlockStart:  `"""`,
		BlockEnd:    `"""`,
		FunctionPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^\s*(?:async\s+)?def\s+([A-Za-z_]\w*)\s*\(`),
		},
		TypePattern:   regexp.MustCompile(`(?m)^\s*class\s+([A-Za-z_]\w*)`),
		ImportPattern: regexp.MustCompile(`(?m)^\s*(?:import|from)\s+`),
		Convention:    ConventionCamelCase,
	},
	{
		Language:    LangJava,
		Name:        "Java",
		Extensions:  []string{".java"},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		FunctionPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:public|protected|private)\s+(?:static\s+)?(?:final\s+)?(?:synchronized\s+)?[\w<>\[\],\s]+?\s+(\w+)\s*\([^)]*\)\s*\{`),
		},
		TypePattern:   regexp.MustCompile(`\b(?:class|interface|enum)\s+(\w+)`),
		ImportPattern: regexp.MustCompile(`(?m)^\s*import\s+`),
		Convention:    ConventionCamelCase,
	},
	{
		Language:    LangCSharp,
		Name:        "C#",
		Extensions:  []string{".cs"},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		FunctionPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:public|protected|private|internal)\s+(?:static\s+)?(?:async\s+)?(?:override\s+|virtual\s+)?[\w<>\[\],?\s]+?\s+(\w+)\s*\([^)]*\)\s*\{`),
		},
		TypePattern:   regexp.MustCompile(`\b(?:class|interface|struct|enum)\s+(\w+)`),
		ImportPattern: regexp.MustCompile(`(?m)^\s*using\s+`),
		Convention:    ConventionPascalCase,
	},
	{
		Language:    LangGo,
		Name:        "Go",
		Extensions:  []string{".go"},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		FunctionPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\bfunc\s+(?:\([^)]*\)\s*)?([A-Za-z_]\w*)\s*\(`),
		},
		TypePattern:   regexp.MustCompile(`(?m)^type\s+(\w+)\s+(?:struct|interface)\b`),
		ImportPattern: regexp.MustCompile(`(?m)^\s*import\b`),
		Convention:    ConventionCamelCase,
	},
}

// byExtension is built once from the registry for O(1) lookups.
var byExtension = func() map[string]*Config {
	m := make(map[string]*Config)
	for _, cfg := range registry {
		for _, ext := range cfg.Extensions {
			m[ext] = cfg
		}
	}
	return m
}()

// Detect infers the language from a filename's extension. Unknown or missing
// extensions fall back to JavaScript as the general-purpose default, so
// detection never fails.
func Detect(filename string) Language {
	if cfg, ok := byExtension[extOf(filename)]; ok {
		return cfg.Language
	}
	return LangJavaScript
}

// Known reports whether the filename maps to a configured language without
// falling back to the default.
func Known(filename string) bool {
	_, ok := byExtension[extOf(filename)]
	return ok
}

// Lookup returns the configuration for a language tag.
func Lookup(l Language) (*Config, bool) {
	for _, cfg := range registry {
		if cfg.Language == l {
			return cfg, true
		}
	}
	return nil, false
}

// ConfigFor returns the configuration for a filename, falling back to the
// default language's config.
func ConfigFor(filename string) *Config {
	cfg, _ := Lookup(Detect(filename))
	return cfg
}

// All returns every registered language config in registration order.
func All() []*Config {
	out := make([]*Config, len(registry))
	copy(out, registry)
	return out
}

// extOf extracts the lowercase ".ext" suffix after the last dot.
// Returns "" when the filename has no dot.
func extOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return "." + strings.ToLower(filename[idx+1:])
}
