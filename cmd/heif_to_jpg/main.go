// Command heif_to_jpg converts the selected HEIC/HEIF photo to a JPEG next to it.
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
	os.Exit(cli.RunTool(tools.HEICToJPEGName, Version, newTool, cli.DefaultEnv()))
}

func newTool(_ *config.Config, logger *log.Logger) (tools.Tool, func() error, error) {
	return &tools.HEICToJPEG{Decoder: tools.HEICDecoder{}, Logger: logger}, nil, nil
}
