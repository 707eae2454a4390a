package cli

import (
	"errors"
	"strings"

	shellmenu "github.com/alnah/go-shellmenu"
	"github.com/alnah/go-shellmenu/internal/assets"
	"github.com/alnah/go-shellmenu/internal/browser"
	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/hints"
	"github.com/alnah/go-shellmenu/internal/pipeline"
	"github.com/alnah/go-shellmenu/internal/process"
	"github.com/alnah/go-shellmenu/internal/tools"
)

// HintFor returns an actionable hint for err, or "" when none applies.
// cfg may be nil.
func HintFor(err error, cfg *config.Config) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, browser.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, browser.ErrPageLoad), errors.Is(err, browser.ErrPDFGeneration):
		if strings.Contains(err.Error(), "deadline") || strings.Contains(err.Error(), "timeout") {
			return hints.ForTimeout()
		}
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, pipeline.ErrUnknownHighlightStyle):
		return hints.ForHighlightStyle(pipeline.HighlightStyles())
	case errors.Is(err, shellmenu.ErrLauncherNotFound):
		return hints.ForLauncherNotFound()
	case errors.Is(err, shellmenu.ErrDirectoryNotFound):
		return hints.ForScriptsDir()
	case errors.Is(err, shellmenu.ErrDuplicateIdentifier):
		return hints.ForDuplicateIdentifier()
	case errors.Is(err, shellmenu.ErrWriteRegistry):
		return hints.ForRegistryWrite()
	case errors.Is(err, tools.ErrBackgroundRemoval) && errors.Is(err, process.ErrStart):
		command := "rembg"
		if cfg != nil && len(cfg.Tools.Background.Command) > 0 {
			command = cfg.Tools.Background.Command[0]
		}
		return hints.ForBackgroundRemover(command)
	}
	return ""
}

// triedPaths extracts the searched locations from a config-not-found
// message of the form "...: tried a, b".
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
