// Package export converts rendered label documents into their final
// on-disk form: SVG passthrough, or rasterized PNG and PDF at the
// profile's print density.
package export

import (
	"fmt"
	"image/png"
	"math"
	"os"

	"github.com/vk/gridlabelgo/internal/render"
)

// Format is the output representation of an exported label.
type Format string

const (
	// FormatSVG writes the vector document unmodified.
	FormatSVG Format = "svg"
	// FormatPNG rasterizes the document to a PNG image.
	FormatPNG Format = "png"
	// FormatPDF rasterizes the document onto a single label-sized PDF page.
	FormatPDF Format = "pdf"
)

// ParseFormat validates a format selector from the CLI.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSVG, FormatPNG, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %q", s)
	}
}

// BackendError reports a conversion backend failure. Fatal for the
// record being exported, never for the batch.
type BackendError struct {
	Format Format
	Err    error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	return fmt.Sprintf("%s export failed: %v", e.Format, e.Err)
}

// Unwrap returns the underlying backend fault.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// MMToPixels converts a physical dimension to pixels at the given
// density in dots per inch.
func MMToPixels(mm, density float64) int {
	return int(math.Round(mm * density / 25.4))
}

// Exporter writes label documents sized by the profile's physical
// dimensions and density.
type Exporter struct {
	widthMM  float64
	heightMM float64
	density  float64
}

// New creates an exporter for labels of the given physical size at the
// given print density.
func New(widthMM, heightMM, density float64) *Exporter {
	return &Exporter{widthMM: widthMM, heightMM: heightMM, density: density}
}

// Export writes doc to path in the requested format.
func (e *Exporter) Export(doc render.Document, format Format, path string) error {
	switch format {
	case FormatSVG:
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return &BackendError{Format: format, Err: err}
		}
		return nil
	case FormatPNG:
		return e.exportPNG(doc, path)
	case FormatPDF:
		return e.exportPDF(doc, path)
	default:
		panic(fmt.Sprintf("unsupported export format: %q", format))
	}
}

func (e *Exporter) exportPNG(doc render.Document, path string) error {
	img, err := e.rasterize(doc)
	if err != nil {
		return &BackendError{Format: FormatPNG, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &BackendError{Format: FormatPNG, Err: err}
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return &BackendError{Format: FormatPNG, Err: err}
	}
	return nil
}
