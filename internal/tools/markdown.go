package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-shellmenu/internal/browser"
	"github.com/alnah/go-shellmenu/internal/fileutil"
	"github.com/alnah/go-shellmenu/internal/pipeline"
)

// Executable names of the Markdown tools.
const (
	MarkdownToHTMLName = "markdown_to_html"
	MarkdownToPDFName  = "markdown_to_pdf"
)

// markdownExts are the extensions the Markdown tools accept.
var markdownExts = []string{".md", ".markdown", ".mdown", ".mkd", ".mkdn", ".txt"}

// MarkdownToHTML writes "<stem>.html" titled with the file stem.
type MarkdownToHTML struct {
	Converter HTMLConverter
	Logger    *log.Logger
}

// Name implements Tool.
func (t *MarkdownToHTML) Name() string { return MarkdownToHTMLName }

// Run implements Tool.
func (t *MarkdownToHTML) Run(ctx context.Context, input string) (string, error) {
	doc, err := renderMarkdown(ctx, t.Converter, input, t.Logger)
	if err != nil {
		return "", err
	}

	out, err := fileutil.Sibling(input, ".html", false)
	if err != nil {
		return "", err
	}
	return out, writeOutput(out, []byte(doc))
}

// MarkdownToPDF writes "<stem>.pdf" through a headless browser.
type MarkdownToPDF struct {
	Converter HTMLConverter
	Renderer  PDFRenderer
	Page      browser.PageOptions
	Logger    *log.Logger
}

// Name implements Tool.
func (t *MarkdownToPDF) Name() string { return MarkdownToPDFName }

// Run implements Tool.
func (t *MarkdownToPDF) Run(ctx context.Context, input string) (string, error) {
	doc, err := renderMarkdown(ctx, t.Converter, input, t.Logger)
	if err != nil {
		return "", err
	}

	// Relative images resolve against the Markdown file, not the temp file
	// the browser loads.
	doc, err = pipeline.RewriteRelativePaths(doc, filepath.Dir(input))
	if err != nil {
		return "", fmt.Errorf("rewriting relative paths: %w", err)
	}

	data, err := t.Renderer.RenderHTML(ctx, doc, t.Page)
	if err != nil {
		return "", err
	}

	out, err := fileutil.Sibling(input, ".pdf", false)
	if err != nil {
		return "", err
	}
	return out, writeOutput(out, data)
}

// renderMarkdown reads, decodes and converts input.
func renderMarkdown(ctx context.Context, conv HTMLConverter, input string, logger *log.Logger) (string, error) {
	if err := requireFile(input); err != nil {
		return "", err
	}
	if !fileutil.HasExt(input, markdownExts...) {
		return "", fmt.Errorf("%w: %s is not a Markdown file", ErrUnsupportedInput, filepath.Base(input))
	}

	data, err := os.ReadFile(input) // #nosec G304 -- path is the user's selection
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	text, charset := pipeline.DecodeText(data)
	if logger != nil {
		logger.Debug("decoded input", "charset", charset, "bytes", len(data))
	}

	return conv.ToHTML(ctx, text, fileutil.Stem(input))
}

// Compile-time interface checks.
var (
	_ Tool          = (*MarkdownToHTML)(nil)
	_ Tool          = (*MarkdownToPDF)(nil)
	_ HTMLConverter = (*pipeline.Converter)(nil)
	_ PDFRenderer   = (*browser.Renderer)(nil)
)
