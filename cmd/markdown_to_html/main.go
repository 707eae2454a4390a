// Command markdown_to_html renders the selected Markdown file as a
// standalone HTML page next to it.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-shellmenu/internal/cli"
	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(cli.RunTool(tools.MarkdownToHTMLName, Version, newTool, cli.DefaultEnv()))
}

func newTool(cfg *config.Config, logger *log.Logger) (tools.Tool, func() error, error) {
	conv, err := cli.MarkdownConverter(cfg)
	if err != nil {
		return nil, nil, err
	}
	return &tools.MarkdownToHTML{Converter: conv, Logger: logger}, nil, nil
}
