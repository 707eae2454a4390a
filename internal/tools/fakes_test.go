package tools

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alnah/go-shellmenu/internal/browser"
)

// Minimal headers recognized by content sniffing.
var (
	pdfHeader  = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	heicHeader = []byte("\x00\x00\x00\x18ftypheic\x00\x00\x00\x00mif1heic\x00\x00\x00\x00")
)

// writeInput creates dir/name with data and returns its path.
func writeInput(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// fakeRasterizer yields Pages solid images, or fails with Err.
type fakeRasterizer struct {
	Pages int
	Err   error

	mu     sync.Mutex
	gotDPI int
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, _ string, dpi int, fn func(int, image.Image) error) (int, error) {
	f.mu.Lock()
	f.gotDPI = dpi
	f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	for i := 1; i <= f.Pages; i++ {
		if err := ctx.Err(); err != nil {
			return i - 1, err
		}
		if err := fn(i, solidImage(4, 4, color.RGBA{R: uint8(i), A: 255})); err != nil {
			return i, err
		}
	}
	return f.Pages, nil
}

type fakeDecoder struct {
	Img image.Image
	Err error
}

func (f fakeDecoder) Decode(io.Reader) (image.Image, error) { return f.Img, f.Err }

// fakeConverter echoes the Markdown inside a minimal document.
type fakeConverter struct {
	Err      error
	gotTitle string
	gotText  string
}

func (f *fakeConverter) ToHTML(_ context.Context, md, title string) (string, error) {
	f.gotTitle, f.gotText = title, md
	if f.Err != nil {
		return "", f.Err
	}
	return "<!DOCTYPE html><html><head><title>" + title + "</title></head><body><p>" + md + `</p><img src="pic.png"></body></html>`, nil
}

type fakeRenderer struct {
	Err     error
	gotHTML string
	gotOpts browser.PageOptions
}

func (f *fakeRenderer) RenderHTML(_ context.Context, html string, opts browser.PageOptions) ([]byte, error) {
	f.gotHTML, f.gotOpts = html, opts
	if f.Err != nil {
		return nil, f.Err
	}
	return []byte("%PDF-1.7 fake"), nil
}

// fakeRemover copies in to out unless Err or SkipWrite is set.
type fakeRemover struct {
	Err       error
	SkipWrite bool
}

func (f fakeRemover) Remove(_ context.Context, in, out string) error {
	if f.Err != nil {
		return f.Err
	}
	if f.SkipWrite {
		return nil
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	return os.WriteFile(out, data, 0o644)
}

// deniedInspector fails ReadDir with a permission error.
type deniedInspector struct{ OSInspector }

func (deniedInspector) ReadDir(string) ([]fs.DirEntry, error) {
	return nil, &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}
}

// unstatableInspector fails Stat with a permission error.
type unstatableInspector struct{ OSInspector }

func (unstatableInspector) Stat(path string) (fs.FileInfo, error) {
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrPermission}
}

var errBoom = errors.New("boom")
