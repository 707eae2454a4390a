// Package browser renders HTML to PDF with headless Chrome or Edge via
// go-rod. Rod downloads Chromium on first use unless ROD_BROWSER_BIN points
// at an installed browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-shellmenu/internal/fileutil"
	"github.com/alnah/go-shellmenu/internal/process"
)

// DefaultTimeout bounds page load and printing when ctx has no deadline.
const DefaultTimeout = 30 * time.Second

// Renderer renders HTML documents to PDF. The browser starts lazily on the
// first render and is reused until Close. Not safe for concurrent use.
type Renderer struct {
	timeout  time.Duration
	logger   *log.Logger
	getenv   func(string) string
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// New creates a Renderer. A zero timeout uses DefaultTimeout; a nil logger
// discards records.
func New(timeout time.Duration, logger *log.Logger) *Renderer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{timeout: timeout, logger: logger, getenv: os.Getenv}
}

// RenderHTML writes htmlContent to a temp file and renders it. Loading from
// a file lets the page reference local images through file:// URLs.
func (r *Renderer) RenderHTML(ctx context.Context, htmlContent string, opts PageOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, cleanup, err := fileutil.WriteTempFile([]byte(htmlContent), "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return r.RenderFile(ctx, path, opts)
}

// RenderFile opens a local HTML file and prints it to PDF.
func (r *Renderer) RenderFile(ctx context.Context, path string, opts PageOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	printOpts, err := PrintOptions(opts)
	if err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: fileutil.FileURL(path)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	page = page.Context(ctx).Timeout(timeout)

	if err := page.WaitLoad(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	r.logger.Debug("page loaded", "path", path)

	stream, err := page.PDF(printOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// ensureBrowser launches and connects to the browser once.
func (r *Renderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()
	if bin := r.getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if r.getenv("CI") == "true" || r.getenv("ROD_NO_SANDBOX") != "" || r.getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l
	r.logger.Debug("browser launched", "pid", l.PID())

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		r.shutdown()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = b
	return nil
}

// Close shuts the browser down and removes its profile directory.
func (r *Renderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.shutdown()
	return err
}

// shutdown kills the browser process tree; helper processes otherwise
// outlive the parent on Windows.
func (r *Renderer) shutdown() {
	if r.launcher == nil {
		return
	}
	process.KillTree(r.launcher.PID())
	r.launcher.Kill()
	r.launcher.Cleanup()
	r.launcher = nil
}

// IsBrowserError reports whether err came from starting or talking to the
// browser rather than from the document.
func IsBrowserError(err error) bool {
	return errors.Is(err, ErrBrowserConnect) || errors.Is(err, ErrPageCreate)
}
