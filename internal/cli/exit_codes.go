package cli

import (
	"errors"
	"os"

	shellmenu "github.com/alnah/go-shellmenu"
	"github.com/alnah/go-shellmenu/internal/assets"
	"github.com/alnah/go-shellmenu/internal/browser"
	"github.com/alnah/go-shellmenu/internal/config"
	"github.com/alnah/go-shellmenu/internal/dateutil"
	"github.com/alnah/go-shellmenu/internal/logging"
	"github.com/alnah/go-shellmenu/internal/pipeline"
	"github.com/alnah/go-shellmenu/internal/tools"
)

// Exit codes shared by all executables.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Bad arguments, config, unsupported input, duplicates
	ExitIO      = 3 // Missing directories or launcher, write failures
	ExitBrowser = 4 // Browser/Chrome errors
)

// ErrUsage marks command-line mistakes.
var ErrUsage = errors.New("usage error")

// ExitCodeFor returns the exit code for err. It relies on errors.Is, so
// callers must wrap with %w.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if browser.IsBrowserError(err) ||
		errors.Is(err, browser.ErrPageLoad) ||
		errors.Is(err, browser.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, dateutil.ErrInvalidLayout) ||
		errors.Is(err, tools.ErrInputNotFound) ||
		errors.Is(err, tools.ErrUnsupportedInput) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, pipeline.ErrUnknownHighlightStyle) ||
		errors.Is(err, browser.ErrInvalidPageSize) ||
		errors.Is(err, browser.ErrInvalidOrientation) ||
		errors.Is(err, browser.ErrInvalidMargin) ||
		errors.Is(err, shellmenu.ErrDuplicateIdentifier) ||
		errors.Is(err, shellmenu.ErrInvalidIdentifier) ||
		errors.Is(err, shellmenu.ErrEmptyScriptsDir) ||
		errors.Is(err, shellmenu.ErrEmptyLauncher) ||
		errors.Is(err, shellmenu.ErrEmptyOutputPath) ||
		errors.Is(err, shellmenu.ErrInvalidPattern) ||
		errors.Is(err, shellmenu.ErrInvalidMenuKey) ||
		errors.Is(err, shellmenu.ErrInvalidTarget) ||
		errors.Is(err, shellmenu.ErrInvalidEncoding) ||
		errors.Is(err, shellmenu.ErrInvalidLineEnding) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, shellmenu.ErrDirectoryNotFound) ||
		errors.Is(err, shellmenu.ErrLauncherNotFound) ||
		errors.Is(err, shellmenu.ErrWriteRegistry) ||
		errors.Is(err, tools.ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
