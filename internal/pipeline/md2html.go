package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-shellmenu/internal/assets"
)

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "github"

// Sentinel errors for conversion.
var (
	ErrHTMLConversion        = errors.New("HTML conversion failed")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)

// ConverterOptions configures a Converter.
type ConverterOptions struct {
	// Templates provides the "page" template. Nil uses the embedded one.
	Templates assets.Loader

	// CSS is inlined into every page; empty means unstyled.
	CSS string

	// HighlightStyle names a chroma style. Empty uses DefaultHighlightStyle.
	HighlightStyle string

	// Lang is the document language attribute. Empty means "en".
	Lang string
}

// Converter turns Markdown into standalone HTML5 documents.
type Converter struct {
	md        goldmark.Markdown
	pre       Preprocessor
	templates assets.Loader
	css       string
	lang      string
}

// NewConverter creates a Converter with GFM, footnotes and chroma
// highlighting rendered as CSS classes.
func NewConverter(opts ConverterOptions) (*Converter, error) {
	styleName := opts.HighlightStyle
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	highlightCSS, err := HighlightCSS(styleName)
	if err != nil {
		return nil, err
	}

	templates := opts.Templates
	if templates == nil {
		templates = assets.NewEmbeddedLoader()
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(styleName),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			// No WithUnsafe: raw HTML in Markdown is dropped. Highlights use
			// placeholders converted after rendering.
		),
	)

	css := opts.CSS
	if highlightCSS != "" {
		css = strings.TrimSpace(css + "\n" + highlightCSS)
	}

	return &Converter{
		md:        md,
		templates: templates,
		css:       css,
		lang:      opts.Lang,
	}, nil
}

// ToHTML converts Markdown into a complete HTML document titled title.
// Goldmark has no context support, so conversion runs in a goroutine and
// ctx only bounds the wait.
func (c *Converter) ToHTML(ctx context.Context, markdown, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		body, err := c.Fragment(ctx, markdown)
		if err != nil {
			done <- result{err: err}
			return
		}
		page, err := assets.RenderPage(c.templates, assets.Page{
			Title: title,
			Lang:  c.lang,
			CSS:   c.css,
			Body:  body,
		})
		if err != nil {
			done <- result{err: fmt.Errorf("%w: %w", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: page}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Fragment converts Markdown to an HTML fragment without the page wrapper.
func (c *Converter) Fragment(ctx context.Context, markdown string) (string, error) {
	src := c.pre.Preprocess(ctx, markdown)

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return ConvertMarkPlaceholders(buf.String()), nil
}

// HighlightCSS returns the class-based CSS for the named chroma style.
func HighlightCSS(name string) (string, error) {
	style, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, name)
	}

	var buf bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("%w: writing highlight CSS: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// HighlightStyles lists the available chroma style names.
func HighlightStyles() []string {
	return styles.Names()
}
