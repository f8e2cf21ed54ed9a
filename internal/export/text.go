package export

import (
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/vk/gridlabelgo/internal/render"
)

// textSpan is one <text> element lifted from a label document: baseline
// position and font size in user units plus the unescaped content.
type textSpan struct {
	x, y, size float64
	bold       bool
	content    string
}

var (
	regularFont = mustParseFont(goregular.TTF)
	boldFont    = mustParseFont(gobold.TTF)
)

func mustParseFont(ttf []byte) *sfnt.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

// drawText rasterizes the document's <text> elements onto img. The vector
// backend only draws shapes, so text gets a second pass: each span is set
// in the Go fonts at the same user-unit-to-pixel scale the vector pass
// used, anchored on the SVG baseline.
func (e *Exporter) drawText(img *image.RGBA, doc render.Document) error {
	spans, err := textSpans(doc)
	if err != nil {
		return err
	}

	pxPerUnit := e.density / 25.4
	for _, span := range spans {
		if span.content == "" || span.size <= 0 {
			continue
		}

		fnt := regularFont
		if span.bold {
			fnt = boldFont
		}
		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    span.size * pxPerUnit,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("failed to prepare font face: %w", err)
		}

		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Black),
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.Int26_6(math.Round(span.x * pxPerUnit * 64)),
				Y: fixed.Int26_6(math.Round(span.y * pxPerUnit * 64)),
			},
		}
		d.DrawString(span.content)
		face.Close()
	}
	return nil
}

// textSpans extracts every <text> element from the document. Attribute
// values are user units; a trailing unit suffix is tolerated for custom
// templates.
func textSpans(doc render.Document) ([]textSpan, error) {
	dec := xml.NewDecoder(strings.NewReader(string(doc)))

	var spans []textSpan
	var current *textSpan
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan document for text: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "text" {
				continue
			}
			span := textSpan{}
			for _, attr := range t.Attr {
				switch attr.Name.Local {
				case "x":
					span.x = parseLength(attr.Value)
				case "y":
					span.y = parseLength(attr.Value)
				case "font-size":
					span.size = parseLength(attr.Value)
				case "font-weight":
					span.bold = attr.Value == "bold"
				}
			}
			current = &span
		case xml.CharData:
			if current != nil {
				current.content += string(t)
			}
		case xml.EndElement:
			if t.Name.Local == "text" && current != nil {
				spans = append(spans, *current)
				current = nil
			}
		}
	}
	return spans, nil
}

func parseLength(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "mm")
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
