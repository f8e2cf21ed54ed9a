package export

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/vk/gridlabelgo/internal/render"
)

// rasterize renders the document into an RGBA image at the exporter's
// pixel dimensions. Unsupported SVG features are skipped rather than
// failing the record; a malformed document still fails.
func (e *Exporter) rasterize(doc render.Document) (*image.RGBA, error) {
	widthPx := MMToPixels(e.widthMM, e.density)
	heightPx := MMToPixels(e.heightMM, e.density)
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("degenerate pixel dimensions %dx%d", widthPx, heightPx)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(string(doc)), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	icon.SetTarget(0, 0, float64(widthPx), float64(heightPx))

	img := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	scanner := rasterx.NewScannerGV(widthPx, heightPx, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(widthPx, heightPx, scanner), 1.0)

	// The vector pass drops <text> nodes, so the text is drawn separately.
	if err := e.drawText(img, doc); err != nil {
		return nil, err
	}
	return img, nil
}
