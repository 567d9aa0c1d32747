package analyzer

import (
	"strings"

	"github.com/gradr/gradr/pkg/lang"
	"github.com/gradr/gradr/pkg/models"
)

// CountLines classifies every line of text as blank, comment, or code in a
// single left-to-right pass. The only state carried between lines is whether
// an unterminated block comment is open. Comment markers appearing mid-line
// after code are not detected; the classifier is a line-level heuristic.
func CountLines(text string, cfg *lang.Config) models.LineInfo {
	lines := splitLines(text)
	info := models.LineInfo{Total: len(lines)}

	inBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			info.Blank++
		case inBlock:
			info.Comment++
			if cfg.BlockEnd != "" && strings.Contains(trimmed, cfg.BlockEnd) {
				inBlock = false
			}
		case cfg.LineComment != "" && strings.HasPrefix(trimmed, cfg.LineComment):
			info.Comment++
		case cfg.BlockStart != "" && strings.HasPrefix(trimmed, cfg.BlockStart):
			info.Comment++
			rest := trimmed[len(cfg.BlockStart):]
			if cfg.BlockEnd == "" || !strings.Contains(rest, cfg.BlockEnd) {
				inBlock = true
			}
		default:
			info.Code++
		}
	}
	return info
}

// splitLines splits on newlines, preserving empty trailing lines and
// tolerating CRLF endings. An empty string yields one empty line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
