package tools

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alnah/go-shellmenu/internal/browser"
)

// Tool is one context-menu program.
type Tool interface {
	// Name is the executable name, also used as the menu identifier.
	Name() string

	// Run processes input and returns the path of the artifact written.
	Run(ctx context.Context, input string) (string, error)
}

// Rasterizer renders every page of a PDF at dpi and calls fn with the
// 1-based page number and image, in page order. It returns the page count.
type Rasterizer interface {
	Rasterize(ctx context.Context, path string, dpi int, fn func(page int, img image.Image) error) (int, error)
}

// ImageDecoder decodes one image.
type ImageDecoder interface {
	Decode(r io.Reader) (image.Image, error)
}

// HTMLConverter turns Markdown into a standalone HTML document.
type HTMLConverter interface {
	ToHTML(ctx context.Context, markdown, title string) (string, error)
}

// PDFRenderer prints an HTML document to PDF.
type PDFRenderer interface {
	RenderHTML(ctx context.Context, html string, opts browser.PageOptions) ([]byte, error)
}

// BackgroundRemover writes a copy of in with a transparent background to out.
type BackgroundRemover interface {
	Remove(ctx context.Context, in, out string) error
}

// Inspector reads file-system metadata.
type Inspector interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
}

// requireFile checks that path exists and is a regular file.
func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("reading input: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrUnsupportedInput, path)
	}
	return nil
}

// requireMIME checks the file's content against the accepted MIME types.
// Extensions are not trusted; a renamed file is judged by its bytes.
func requireMIME(path string, accepted ...string) (string, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	for _, a := range accepted {
		if m.Is(a) {
			return m.String(), nil
		}
	}
	return "", fmt.Errorf("%w: %s is %s", ErrUnsupportedInput, filepath.Base(path), m.String())
}

// writeOutput writes data to path in one call.
func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- user documents
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
