package tools

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-shellmenu/internal/assets"
	"github.com/alnah/go-shellmenu/internal/browser"
	"github.com/alnah/go-shellmenu/internal/fileutil"
)

// PDFImagesName is the executable name of the PDF rasterizer.
const PDFImagesName = "convert_pdf_into_images"

// Rasterization defaults.
const (
	DefaultDPI            = 150
	DefaultJPEGQuality    = 90
	DefaultComposeQuality = 75
)

// PDFImages writes every page of a PDF as "Page N.jpg" into
// "<stem>-images". With Compose it also prints the pages into an
// image-only "<stem>-images.pdf".
type PDFImages struct {
	Rasterizer Rasterizer
	DPI        int // 0 = DefaultDPI
	Quality    int // JPEG quality; 0 = DefaultJPEGQuality
	Workers    int // parallel encoders; 0 = auto

	Compose        bool
	ComposeQuality int    // JPEG quality inside the composed PDF
	Footer         string // printed under every composed page
	Renderer       PDFRenderer
	Templates      assets.Loader // nil = embedded

	Logger *log.Logger
}

// Name implements Tool.
func (t *PDFImages) Name() string { return PDFImagesName }

// Run implements Tool. It returns the images directory.
func (t *PDFImages) Run(ctx context.Context, input string) (string, error) {
	if err := requireFile(input); err != nil {
		return "", err
	}
	if _, err := requireMIME(input, "application/pdf"); err != nil {
		return "", err
	}
	if t.Compose && t.Renderer == nil {
		return "", fmt.Errorf("%w: compose requires a PDF renderer", ErrRasterize)
	}

	outDir, err := fileutil.Sibling(input, "-images", false)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil { // #nosec G301 -- user-visible output folder
		return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	var composeDir string
	if t.Compose {
		composeDir, err = os.MkdirTemp("", "shellmenu-pages-*")
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		defer func() { _ = os.RemoveAll(composeDir) }()
	}

	pages, err := t.rasterize(ctx, input, outDir, composeDir)
	if err != nil {
		return "", err
	}
	t.logger().Info("pages written", "pages", pages, "dir", outDir)

	if t.Compose {
		pdfPath, err := t.compose(ctx, input, composeDir, pages)
		if err != nil {
			return "", err
		}
		t.logger().Info("composed PDF written", "path", pdfPath)
	}
	return outDir, nil
}

// rasterize renders pages and encodes them on a bounded errgroup. The
// rasterizer stays sequential; encoding is the parallel part.
func (t *PDFImages) rasterize(ctx context.Context, input, outDir, composeDir string) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ResolvePoolSize(t.Workers))

	dpi := orDefault(t.DPI, DefaultDPI)
	quality := orDefault(t.Quality, DefaultJPEGQuality)
	composeQuality := orDefault(t.ComposeQuality, DefaultComposeQuality)

	pages, rasterErr := t.Rasterizer.Rasterize(gctx, input, dpi, func(page int, img image.Image) error {
		if err := gctx.Err(); err != nil {
			return err
		}
		g.Go(func() error {
			if err := writeJPEG(filepath.Join(outDir, PageFileName(page)), img, quality); err != nil {
				return err
			}
			if composeDir != "" {
				return writeJPEG(composePagePath(composeDir, page), img, composeQuality)
			}
			return nil
		})
		return nil
	})
	waitErr := g.Wait()

	if rasterErr != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		if waitErr != nil {
			return 0, waitErr
		}
		return 0, fmt.Errorf("%w: %w", ErrRasterize, rasterErr)
	}
	if waitErr != nil {
		return 0, waitErr
	}
	if pages == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoPages, filepath.Base(input))
	}
	return pages, nil
}

// compose prints the page images into one PDF, one image per page.
func (t *PDFImages) compose(ctx context.Context, input, composeDir string, pages int) (string, error) {
	images := make([]string, 0, pages)
	for page := 1; page <= pages; page++ {
		images = append(images, composePagePath(composeDir, page))
	}

	templates := t.Templates
	if templates == nil {
		templates = assets.NewEmbeddedLoader()
	}
	html, err := assets.RenderImageSheet(templates, assets.ImageSheet{
		Title:  fileutil.Stem(input),
		Footer: t.Footer,
		Images: images,
	})
	if err != nil {
		return "", err
	}

	data, err := t.Renderer.RenderHTML(ctx, html, browser.PageOptions{Margin: 0})
	if err != nil {
		return "", err
	}

	out, err := fileutil.Sibling(input, "-images.pdf", false)
	if err != nil {
		return "", err
	}
	return out, writeOutput(out, data)
}

func (t *PDFImages) logger() *log.Logger {
	if t.Logger == nil {
		return log.Default()
	}
	return t.Logger
}

// PageFileName names the image written for a 1-based page number.
func PageFileName(page int) string {
	return fmt.Sprintf("Page %d.jpg", page)
}

func composePagePath(dir string, page int) string {
	return filepath.Join(dir, fmt.Sprintf("page-%05d.jpg", page))
}

func writeJPEG(path string, img image.Image, quality int) error {
	data, err := encodeJPEG(img, quality)
	if err != nil {
		return err
	}
	return writeOutput(path, data)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
