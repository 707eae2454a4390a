package tools

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// PDFImages.Run
// ---------------------------------------------------------------------------

func TestPDFImages_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeInput(t, dir, "report.pdf", pdfHeader)
	raster := &fakeRasterizer{Pages: 3}

	tool := &PDFImages{Rasterizer: raster, Workers: 2}
	out, err := tool.Run(context.Background(), input)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if want := filepath.Join(dir, "report-images"); out != want {
		t.Errorf("Run() = %q, want %q", out, want)
	}
	for i := 1; i <= 3; i++ {
		data, err := os.ReadFile(filepath.Join(out, PageFileName(i)))
		if err != nil {
			t.Fatalf("page %d: %v", i, err)
		}
		if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
			t.Errorf("page %d is not a JPEG", i)
		}
	}
	if raster.gotDPI != DefaultDPI {
		t.Errorf("dpi = %d, want %d", raster.gotDPI, DefaultDPI)
	}
	if _, err := os.Stat(filepath.Join(dir, "report-images.pdf")); !os.IsNotExist(err) {
		t.Error("composed PDF written without Compose")
	}
}

func TestPDFImages_Compose(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeInput(t, dir, "scan.pdf", pdfHeader)
	renderer := &fakeRenderer{}

	tool := &PDFImages{
		Rasterizer: &fakeRasterizer{Pages: 2},
		DPI:        72,
		Compose:    true,
		Footer:     "No original text",
		Renderer:   renderer,
	}
	if _, err := tool.Run(context.Background(), input); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "scan-images.pdf"))
	if err != nil {
		t.Fatalf("composed PDF: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("composed PDF = %q", data)
	}
	if n := strings.Count(renderer.gotHTML, "<img "); n != 2 {
		t.Errorf("sheet has %d images, want 2", n)
	}
	if !strings.Contains(renderer.gotHTML, "No original text") {
		t.Error("sheet missing footer")
	}
	if renderer.gotOpts.Margin != 0 {
		t.Errorf("margin = %v, want 0", renderer.gotOpts.Margin)
	}
}

func TestPDFImages_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pdfPath := writeInput(t, dir, "doc.pdf", pdfHeader)
	fakePDF := writeInput(t, dir, "notes.pdf", []byte("just text, renamed"))

	tests := []struct {
		name    string
		tool    *PDFImages
		input   string
		wantErr error
	}{
		{name: "missing input", tool: &PDFImages{Rasterizer: &fakeRasterizer{}}, input: filepath.Join(dir, "missing.pdf"), wantErr: ErrInputNotFound},
		{name: "directory input", tool: &PDFImages{Rasterizer: &fakeRasterizer{}}, input: dir, wantErr: ErrUnsupportedInput},
		{name: "renamed text file", tool: &PDFImages{Rasterizer: &fakeRasterizer{}}, input: fakePDF, wantErr: ErrUnsupportedInput},
		{name: "no pages", tool: &PDFImages{Rasterizer: &fakeRasterizer{Pages: 0}}, input: pdfPath, wantErr: ErrNoPages},
		{name: "rasterizer failure", tool: &PDFImages{Rasterizer: &fakeRasterizer{Err: errBoom}}, input: pdfPath, wantErr: ErrRasterize},
		{name: "compose without renderer", tool: &PDFImages{Rasterizer: &fakeRasterizer{Pages: 1}, Compose: true}, input: pdfPath, wantErr: ErrRasterize},
		{name: "renderer failure", tool: &PDFImages{Rasterizer: &fakeRasterizer{Pages: 1}, Compose: true, Renderer: &fakeRenderer{Err: errBoom}}, input: pdfPath, wantErr: errBoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := tt.tool.Run(context.Background(), tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPDFImages_CancelledContext(t *testing.T) {
	t.Parallel()

	input := writeInput(t, t.TempDir(), "doc.pdf", pdfHeader)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tool := &PDFImages{Rasterizer: &fakeRasterizer{Pages: 5}}
	if _, err := tool.Run(ctx, input); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(3); got != 3 {
		t.Errorf("ResolvePoolSize(3) = %d, want 3", got)
	}
	if got := ResolvePoolSize(0); got < MinPoolSize || got > MaxPoolSize {
		t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
	}
}
