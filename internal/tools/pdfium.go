package tools

import (
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/webassembly"
)

// instanceTimeout bounds the wait for a free PDFium instance.
const instanceTimeout = 30 * time.Second

// PdfiumRasterizer renders PDF pages with PDFium compiled to WebAssembly,
// so no native library has to be installed next to the executable.
type PdfiumRasterizer struct {
	pool pdfium.Pool
}

// NewPdfiumRasterizer starts a single-instance PDFium pool. Close must be
// called to release it.
func NewPdfiumRasterizer() (*PdfiumRasterizer, error) {
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: init pdfium: %v", ErrRasterize, err)
	}
	return &PdfiumRasterizer{pool: pool}, nil
}

// Close shuts the pool down.
func (r *PdfiumRasterizer) Close() error {
	return r.pool.Close()
}

// Rasterize implements Rasterizer.
func (r *PdfiumRasterizer) Rasterize(ctx context.Context, path string, dpi int, fn func(int, image.Image) error) (int, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's selection
	if err != nil {
		return 0, fmt.Errorf("reading PDF: %w", err)
	}

	instance, err := r.pool.GetInstance(instanceTimeout)
	if err != nil {
		return 0, fmt.Errorf("get pdfium instance: %w", err)
	}
	defer func() { _ = instance.Close() }()

	doc, err := instance.OpenDocument(&requests.OpenDocument{File: &data})
	if err != nil {
		return 0, fmt.Errorf("open PDF: %w", err)
	}
	defer func() {
		_, _ = instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: doc.Document})
	}()

	count, err := instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{Document: doc.Document})
	if err != nil {
		return 0, fmt.Errorf("get page count: %w", err)
	}

	for i := 0; i < count.PageCount; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		rendered, err := instance.RenderPageInDPI(&requests.RenderPageInDPI{
			DPI: dpi,
			Page: requests.Page{
				ByIndex: &requests.PageByIndex{Document: doc.Document, Index: i},
			},
		})
		if err != nil {
			return i, fmt.Errorf("render page %d: %w", i+1, err)
		}

		// The bitmap is freed by Cleanup; hand fn a copy.
		img := flatten(rendered.Result.Image)
		rendered.Cleanup()

		if err := fn(i+1, img); err != nil {
			return i + 1, err
		}
	}
	return count.PageCount, nil
}

// Compile-time interface check.
var _ Rasterizer = (*PdfiumRasterizer)(nil)
