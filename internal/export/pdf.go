package export

import (
	"github.com/signintech/gopdf"

	"github.com/vk/gridlabelgo/internal/render"
)

// exportPDF rasterizes the document and places it on a single PDF page
// matching the label's physical dimensions, so the file prints at true
// size without scaling.
func (e *Exporter) exportPDF(doc render.Document, path string) error {
	img, err := e.rasterize(doc)
	if err != nil {
		return &BackendError{Format: FormatPDF, Err: err}
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		Unit:     gopdf.UnitMM,
		PageSize: gopdf.Rect{W: e.widthMM, H: e.heightMM},
	})
	pdf.AddPage()

	if err := pdf.ImageFrom(img, 0, 0, &gopdf.Rect{W: e.widthMM, H: e.heightMM}); err != nil {
		return &BackendError{Format: FormatPDF, Err: err}
	}
	if err := pdf.WritePdf(path); err != nil {
		return &BackendError{Format: FormatPDF, Err: err}
	}
	return nil
}
