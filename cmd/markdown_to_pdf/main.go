// Command markdown_to_pdf prints the selected Markdown file to a PDF next to
// it using a headless Chrome or Edge.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-shellmenu/internal/browser"
	"github.com/alnah/go-shellmenu/internal/cli"
	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(cli.RunTool(tools.MarkdownToPDFName, Version, newTool, cli.DefaultEnv()))
}

// newTool builds the converter first so config mistakes surface before a
// browser is involved. The browser itself starts lazily on first render.
func newTool(cfg *config.Config, logger *log.Logger) (tools.Tool, func() error, error) {
	conv, err := cli.MarkdownConverter(cfg)
	if err != nil {
		return nil, nil, err
	}

	renderer := browser.New(cfg.MarkdownTimeout(browser.DefaultTimeout), logger)
	return &tools.MarkdownToPDF{
		Converter: conv,
		Renderer:  renderer,
		Page:      cli.PageOptions(cfg),
		Logger:    logger,
	}, renderer.Close, nil
}
