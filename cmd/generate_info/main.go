// Command generate_info writes a plain-text report about the selected file
// or folder next to it.
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-shellmenu/internal/cli"
	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(cli.RunTool(tools.GenerateInfoName, Version, newTool, cli.DefaultEnv()))
}

func newTool(cfg *config.Config, logger *log.Logger) (tools.Tool, func() error, error) {
	return &tools.GenerateInfo{
		Inspector:  tools.OSInspector{},
		TimeFormat: cfg.Tools.Info.TimeFormat,
		Now:        time.Now,
		Getwd:      os.Getwd,
		Executable: os.Executable,
		Logger:     logger,
	}, nil, nil
}
