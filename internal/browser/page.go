package browser

import (
	"fmt"
	"html"
	"strings"

	"github.com/go-rod/rod/lib/proto"
)

// Page sizes and orientations.
const (
	SizeLetter = "letter"
	SizeA4     = "a4"
	SizeLegal  = "legal"

	Portrait  = "portrait"
	Landscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin = 0.0
	MaxMargin = 3.0

	// footerReserve is the extra bottom margin Chrome needs to draw a footer.
	footerReserve = 0.25
)

// paperSizes maps a size name to width and height in inches, portrait.
var paperSizes = map[string][2]float64{
	SizeLetter: {8.5, 11},
	SizeA4:     {8.27, 11.69},
	SizeLegal:  {8.5, 14},
}

// PageOptions controls the printed page layout.
type PageOptions struct {
	Size        string  // letter, a4 or legal; empty = a4
	Orientation string  // portrait or landscape; empty = portrait
	Margin      float64 // inches, applied to all four sides

	// Footer is plain text drawn at the bottom of every page.
	Footer string

	// PageNumbers adds "n/total" to the footer.
	PageNumbers bool
}

// PrintOptions converts opts to Chrome's print parameters.
func PrintOptions(opts PageOptions) (*proto.PagePrintToPDF, error) {
	size := strings.ToLower(opts.Size)
	if size == "" {
		size = SizeA4
	}
	dims, ok := paperSizes[size]
	if !ok {
		return nil, fmt.Errorf("%w: %q (must be letter, a4 or legal)", ErrInvalidPageSize, opts.Size)
	}

	width, height := dims[0], dims[1]
	switch strings.ToLower(opts.Orientation) {
	case "", Portrait:
	case Landscape:
		width, height = height, width
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrientation, opts.Orientation)
	}

	if opts.Margin < MinMargin || opts.Margin > MaxMargin {
		return nil, fmt.Errorf("%w: %.2f (must be between %.1f and %.1f)", ErrInvalidMargin, opts.Margin, MinMargin, MaxMargin)
	}

	hasFooter := opts.Footer != "" || opts.PageNumbers
	bottom := opts.Margin
	if hasFooter {
		bottom += footerReserve
	}

	pdf := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(opts.Margin),
		MarginBottom:    floatPtr(bottom),
		MarginLeft:      floatPtr(opts.Margin),
		MarginRight:     floatPtr(opts.Margin),
		PrintBackground: true,
	}

	if hasFooter {
		pdf.DisplayHeaderFooter = true
		pdf.HeaderTemplate = "<span></span>"
		pdf.FooterTemplate = footerTemplate(opts.Footer, opts.PageNumbers)
	}
	return pdf, nil
}

// footerTemplate builds Chrome's footer HTML. Chrome fills the pageNumber
// and totalPages classes itself.
func footerTemplate(text string, pageNumbers bool) string {
	var parts []string
	if text != "" {
		parts = append(parts, html.EscapeString(text))
	}
	if pageNumbers {
		parts = append(parts, `<span class="pageNumber"></span>/<span class="totalPages"></span>`)
	}
	if len(parts) == 0 {
		return "<span></span>"
	}
	return `<div style="font-size: 9px; font-family: sans-serif; color: #888; width: 100%; text-align: center; padding: 0 0.5in;">` +
		strings.Join(parts, " - ") + `</div>`
}

func floatPtr(v float64) *float64 {
	return &v
}
