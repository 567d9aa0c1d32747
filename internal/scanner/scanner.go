// Package scanner finds source files eligible for analysis.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/gradr/gradr/pkg/config"
	"github.com/gradr/gradr/pkg/lang"
)

// Scanner walks directories collecting files with a registered language,
// honoring config exclusions and .gitignore patterns.
type Scanner struct {
	config   *config.Config
	matchers []gitignore.Matcher
}

// New creates a scanner. A nil config means defaults.
func New(cfg *config.Config) *Scanner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Scanner{config: cfg}
}

// findGitRoot walks upward looking for a .git directory.
// Returns "" when not inside a git repository.
func findGitRoot(start string) string {
	dir := start
	for {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadExcludePatterns combines config exclusions (parsed as gitignore
// syntax) with the repository's .gitignore files when enabled.
func (s *Scanner) loadExcludePatterns(root string) {
	var patterns []gitignore.Pattern

	for _, pattern := range s.config.Exclude.Patterns {
		patterns = append(patterns, gitignore.ParsePattern(pattern, nil))
	}
	for _, dir := range s.config.Exclude.Dirs {
		patterns = append(patterns, gitignore.ParsePattern(dir+"/", nil))
	}

	if s.config.Exclude.Gitignore {
		if gitRoot := findGitRoot(root); gitRoot != "" {
			worktree := osfs.New(gitRoot)
			if gitPatterns, err := gitignore.ReadPatterns(worktree, nil); err == nil {
				patterns = append(patterns, gitPatterns...)
			}
		}
	}

	if len(patterns) > 0 {
		s.matchers = append(s.matchers, gitignore.NewMatcher(patterns))
	}
}

func (s *Scanner) isExcluded(relPath string, isDir bool) bool {
	if !isDir {
		ext := filepath.Ext(relPath)
		for _, excluded := range s.config.Exclude.Extensions {
			if ext == excluded {
				return true
			}
		}
	}

	if len(s.matchers) == 0 {
		return false
	}
	parts := strings.Split(relPath, string(filepath.Separator))
	for _, m := range s.matchers {
		if m.Match(parts, isDir) {
			return true
		}
	}
	return false
}

// ScanDir recursively collects analyzable files under root.
func (s *Scanner) ScanDir(root string) ([]string, error) {
	files := make([]string, 0, 256)
	s.loadExcludePatterns(root)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		if relPath == "." {
			return nil
		}

		if d.IsDir() {
			if s.isExcluded(relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.isExcluded(relPath, false) {
			return nil
		}
		if lang.Known(path) {
			files = append(files, path)
		}
		return nil
	})

	return files, walkErr
}

// ScanPaths collects analyzable files from a mix of file and directory
// arguments. Explicit file arguments skip the language filter; the analyzer
// degrades to its default language for unknown extensions.
func (s *Scanner) ScanPaths(paths []string) ([]string, error) {
	files := make([]string, 0, 256)
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := s.ScanDir(path)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// FilterBySize drops files larger than maxSize bytes, returning the kept
// list and the skipped count. maxSize <= 0 keeps everything.
func FilterBySize(files []string, maxSize int64) ([]string, int) {
	if maxSize <= 0 {
		return files, 0
	}

	filtered := make([]string, 0, len(files))
	skipped := 0
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil || info.Size() > maxSize {
			skipped++
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered, skipped
}
