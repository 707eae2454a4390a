package tools

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/heic"

	"github.com/alnah/go-shellmenu/internal/fileutil"
)

// HEICToJPEGName is the executable name of the HEIC converter.
const HEICToJPEGName = "heif_to_jpg"

// Extensions and content types accepted by HEICToJPEG. Both must match.
var (
	heicExtensions = []string{".heic", ".heif"}
	heicMIMETypes  = []string{"image/heic", "image/heic-sequence", "image/heif", "image/heif-sequence"}
)

// HEICToJPEG converts a HEIC/HEIF photo to "<stem>.jpg".
type HEICToJPEG struct {
	Decoder ImageDecoder
	Quality int // 0 = DefaultJPEGQuality
	Logger  *log.Logger
}

// Name implements Tool.
func (t *HEICToJPEG) Name() string { return HEICToJPEGName }

// Run implements Tool.
func (t *HEICToJPEG) Run(ctx context.Context, input string) (string, error) {
	if err := requireFile(input); err != nil {
		return "", err
	}
	if !fileutil.HasExt(input, heicExtensions...) {
		return "", fmt.Errorf("%w: %s is not a .heic or .heif file", ErrUnsupportedInput, filepath.Base(input))
	}
	if _, err := requireMIME(input, heicMIMETypes...); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(input) // #nosec G304 -- path is the user's selection
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := t.Decoder.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	out, err := fileutil.Sibling(input, ".jpg", false)
	if err != nil {
		return "", err
	}
	if err := writeJPEG(out, img, orDefault(t.Quality, DefaultJPEGQuality)); err != nil {
		return "", err
	}

	if t.Logger != nil {
		b := img.Bounds()
		t.Logger.Info("converted", "output", out, "width", b.Dx(), "height", b.Dy())
	}
	return out, nil
}

// HEICDecoder decodes HEIC images with libheif compiled to WebAssembly.
type HEICDecoder struct{}

// Decode implements ImageDecoder.
func (HEICDecoder) Decode(r io.Reader) (image.Image, error) {
	return heic.Decode(r)
}

// Compile-time interface checks.
var (
	_ ImageDecoder = HEICDecoder{}
	_ Tool         = (*HEICToJPEG)(nil)
	_ Tool         = (*PDFImages)(nil)
)
