// Command remove_background writes a transparent-background PNG of the
// selected image by running an external remover (rembg by default).
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
	os.Exit(cli.RunTool(tools.RemoveBackgroundName, Version, newTool, cli.DefaultEnv()))
}

func newTool(cfg *config.Config, logger *log.Logger) (tools.Tool, func() error, error) {
	remover := &tools.CommandRemover{
		Command: cfg.Tools.Background.Command,
		Dir:     cfg.BaseDir,
		Logger:  logger,
	}
	return &tools.RemoveBackground{Remover: remover, Logger: logger}, nil, nil
}
