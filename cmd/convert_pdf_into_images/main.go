// Command convert_pdf_into_images writes every page of the selected PDF as
// "Page N.jpg" into a "<name>-images" folder next to it, and optionally an
// image-only PDF of those pages.
package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-shellmenu/internal/browser"
	"github.com/alnah/go-shellmenu/internal/cli"
	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(cli.RunTool(tools.PDFImagesName, Version, newTool, cli.DefaultEnv()))
}

func newTool(cfg *config.Config, logger *log.Logger) (tools.Tool, func() error, error) {
	// Size GOMAXPROCS to the container quota before the encoder pool is sized.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(logger.Debugf))

	rasterizer, err := tools.NewPdfiumRasterizer()
	if err != nil {
		undo()
		return nil, nil, err
	}

	pi := cfg.Tools.PDFImages
	tool := &tools.PDFImages{
		Rasterizer:     rasterizer,
		DPI:            pi.DPI,
		Quality:        pi.Quality,
		Workers:        pi.Workers,
		Compose:        pi.Compose,
		ComposeQuality: pi.ComposeQuality,
		Footer:         pi.Footer,
		Logger:         logger,
	}
	logger.Debug("encoder pool", "size", tools.ResolvePoolSize(pi.Workers))

	closers := []func() error{rasterizer.Close}
	if pi.Compose {
		templates, err := cli.Assets(cfg)
		if err != nil {
			_ = rasterizer.Close()
			undo()
			return nil, nil, err
		}
		renderer := browser.New(cfg.MarkdownTimeout(browser.DefaultTimeout), logger)
		tool.Renderer = renderer
		tool.Templates = templates
		closers = append(closers, renderer.Close)
	}

	return tool, func() error {
		defer undo()
		var errs []error
		for _, c := range closers {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}, nil
}
