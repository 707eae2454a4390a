package cli

import (
	"github.com/alnah/go-shellmenu/internal/assets"
	"github.com/alnah/go-shellmenu/internal/browser"
	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/fileutil"
	"github.com/alnah/go-shellmenu/internal/pipeline"
)

// Assets returns the asset resolver for cfg: the custom assets directory
// first when configured, then the embedded copies.
func Assets(cfg *config.Config) (*assets.Resolver, error) {
	return assets.NewResolver(cfg.ResolvePath(cfg.Tools.Markdown.AssetsDir))
}

// MarkdownConverter builds the Markdown converter both Markdown tools share.
func MarkdownConverter(cfg *config.Config) (*pipeline.Converter, error) {
	resolver, err := Assets(cfg)
	if err != nil {
		return nil, err
	}

	style := cfg.Tools.Markdown.Style
	if fileutil.IsFilePath(style) || fileutil.HasExt(style, ".css") {
		style = cfg.ResolvePath(style)
	}
	css, err := resolver.Style(style)
	if err != nil {
		return nil, err
	}

	return pipeline.NewConverter(pipeline.ConverterOptions{
		Templates:      resolver,
		CSS:            css,
		HighlightStyle: cfg.Tools.Markdown.HighlightStyle,
	})
}

// PageOptions returns the PDF page layout from the markdown section.
func PageOptions(cfg *config.Config) browser.PageOptions {
	page := cfg.Tools.Markdown.Page
	return browser.PageOptions{
		Size:        page.Size,
		Orientation: page.Orientation,
		Margin:      page.Margin,
	}
}
