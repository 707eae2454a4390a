package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters. They pass
// through Goldmark unchanged, so <mark> can be produced without WithUnsafe.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(\S(?:.*?\S)?)==`)
)

// Preprocessor prepares Markdown text for Goldmark.
type Preprocessor struct{}

// Preprocess strips a leading BOM, normalizes line endings, turns
// ==text== into highlight placeholders and compresses runs of blank lines.
// A cancelled ctx returns content unchanged.
func (Preprocessor) Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, "\uFEFF")
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = convertHighlights(content)
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// convertHighlights skips fenced code blocks so "a == b" in code survives.
func convertHighlights(content string) string {
	lines := strings.Split(content, "\n")
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		lines[i] = highlightPattern.ReplaceAllString(line, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	}
	return strings.Join(lines, "\n")
}

// ConvertMarkPlaceholders turns highlight placeholders into <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return strings.NewReplacer(
		MarkStartPlaceholder, "<mark>",
		MarkEndPlaceholder, "</mark>",
	).Replace(content)
}
