// Package svgutil defines the Fragment type shared by the icon and QR
// pipelines, and the sanitizer that makes arbitrary SVG output safe to
// embed inside a larger document.
package svgutil

import (
	"errors"
	"regexp"
	"strings"
)

// Fragment is a self-contained SVG snippet with no XML or DOCTYPE
// declaration, safe to embed as a child of another SVG element. Icon
// fragments are authored against a normalized 100x100 design square.
type Fragment string

// Empty reports whether the fragment contains no content.
func (f Fragment) Empty() bool {
	return len(f) == 0
}

// String returns the raw SVG text of the fragment.
func (f Fragment) String() string {
	return string(f)
}

// ErrInvalidSVG is returned by Sanitize when the remaining content is not
// markup.
var ErrInvalidSVG = errors.New("svgutil: invalid SVG content")

var (
	xmlDeclRe    = regexp.MustCompile(`<\?xml.*?\?>`)
	doctypeRe    = regexp.MustCompile(`<!DOCTYPE.*?>`)
	commentRe    = regexp.MustCompile(`(?s)<!--.*?-->`)
	interTagWsRe = regexp.MustCompile(`>\s+<`)
	svgOpenRe    = regexp.MustCompile(`^<svg[^>]*>`)
)

// Inner strips one outer <svg> element, returning the wrapped content.
// Fragments that are not a single <svg> element come back unchanged.
// Used to lift generated drawings out of their document wrapper so they
// can be positioned with plain transforms.
func (f Fragment) Inner() Fragment {
	s := string(f)
	open := svgOpenRe.FindString(s)
	if open == "" || !strings.HasSuffix(s, "</svg>") {
		return f
	}
	return Fragment(strings.TrimSuffix(s[len(open):], "</svg>"))
}

// Sanitize strips the XML declaration, DOCTYPE, comments and inter-tag
// whitespace from an SVG string, returning an embeddable Fragment. An
// empty input is valid and yields an empty fragment. Content that is not
// angle-bracketed markup after cleanup is rejected.
func Sanitize(s string) (Fragment, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	s = xmlDeclRe.ReplaceAllString(s, "")
	s = doctypeRe.ReplaceAllString(s, "")
	s = commentRe.ReplaceAllString(s, "")
	s = interTagWsRe.ReplaceAllString(s, "><")
	s = strings.TrimSpace(s)

	if s != "" && !(strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">")) {
		return "", ErrInvalidSVG
	}

	return Fragment(s), nil
}

// MustSanitize is Sanitize for programmatically generated SVG, where a
// sanitization failure is a programmer error.
func MustSanitize(s string) Fragment {
	f, err := Sanitize(s)
	if err != nil {
		panic(err)
	}
	return f
}
