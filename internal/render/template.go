// Package render instantiates the label template: pure substitution of
// the values computed upstream (dimensions, text, icon fragment, code
// fragment) into a fixed-layout SVG document.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/vk/gridlabelgo/internal/svgutil"
)

//go:embed template.svg
var defaultTemplate string

// Document is one fully rendered label, transient between rendering and
// export.
type Document string

// Values carries everything the template substitutes. All fields are
// computed before rendering is invoked; the template itself only decides
// whether to omit the code region when CodeSizeMM is zero.
type Values struct {
	WidthMM     float64
	HeightMM    float64
	Name        string
	Description string
	IconSVG     svgutil.Fragment
	CodeSVG     svgutil.Fragment
	CodeSizeMM  float64
}

// RenderError reports a template fault. Rendering failures indicate a
// bug in the template or its caller rather than bad record data, so they
// are fatal for the record.
type RenderError struct {
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render label template: %v", e.Err)
}

// Unwrap returns the underlying template fault.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// funcs are the arithmetic helpers templates use to derive positions
// from the layout constants. mm formats a value for SVG attributes,
// rounded to hundredths to keep binary float noise out of the output;
// num keeps four decimals for scale factors, which are much smaller
// than positions.
var funcs = template.FuncMap{
	"sub": func(a, b float64) float64 { return a - b },
	"mul": func(a, b float64) float64 { return a * b },
	"div": func(a, b float64) float64 { return a / b },
	"mm": func(v float64) string {
		return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	},
	"num": func(v float64) string {
		return strconv.FormatFloat(math.Round(v*10000)/10000, 'f', -1, 64)
	},
}

// Template is a parsed label template ready to render records.
type Template struct {
	tmpl *template.Template
}

// NewDefault returns the built-in 36mm tape template.
func NewDefault() *Template {
	t, err := New(defaultTemplate, "builtin")
	if err != nil {
		// The embedded template is part of the binary; failing to parse
		// it is a build defect.
		panic(err)
	}
	return t
}

// New parses template source. The name is used in diagnostics.
func New(src, name string) (*Template, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(src)
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	return &Template{tmpl: tmpl}, nil
}

// LoadFile parses a template from disk.
func LoadFile(path string) (*Template, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}
	return New(string(src), path)
}

// Render fills the template with values and returns the sanitized label
// document. Text fields are XML-escaped; fragment fields are embedded
// verbatim, as they are markup by contract.
func (t *Template) Render(values Values) (Document, error) {
	values.Name = xmlEscape(values.Name)
	values.Description = xmlEscape(values.Description)

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, values); err != nil {
		return "", &RenderError{Err: err}
	}

	doc, err := svgutil.Sanitize(buf.String())
	if err != nil {
		return "", &RenderError{Err: err}
	}
	return Document(doc.String()), nil
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
