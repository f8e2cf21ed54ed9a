// Package qr converts reorder payloads into scannable code fragments.
// It chooses between a compact and a standard symbol based on capacity,
// optionally shortening URL payloads through an external boundary, and
// always degrades to a standard symbol rather than failing a record.
package qr

import (
	"context"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/vk/gridlabelgo/internal/ctxlog"
	"github.com/vk/gridlabelgo/internal/svgutil"
)

// Mode selects the code variant to aim for.
type Mode string

const (
	// ModeCompact targets the small, capacity-limited symbol.
	ModeCompact Mode = "compact"
	// ModeStandard targets the effectively unbounded symbol.
	ModeStandard Mode = "standard"
)

// ParseMode validates a code mode selector from the CLI.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCompact, ModeStandard:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unsupported code mode: %q", s)
	}
}

// CompactCapacity is the hard payload ceiling for the compact symbol in
// bytes: the byte-mode capacity of a version 2 code at the low error
// correction level.
const CompactCapacity = 32

// compactVersion is the forced symbol version backing the compact mode.
const compactVersion = 2

// Shortener is the external link-shortening boundary. Implementations
// make a single attempt; the generator treats any error as a signal to
// fall back, never as a record failure.
type Shortener interface {
	Shorten(ctx context.Context, url string) (string, error)
}

// Result is a generated code fragment plus the side length of its
// bounding square in millimeters, the template's unit. The size lets the
// template position the code without re-parsing it.
type Result struct {
	Fragment svgutil.Fragment
	SizeMM   float64
}

// EncodingError reports an unexpected encoder fault. Fatal for the
// record that carries the payload.
type EncodingError struct {
	Payload string
	Err     error
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("failed to encode payload %q: %v", e.Payload, e.Err)
}

// Unwrap returns the underlying encoder fault.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Generator produces code fragments sized for the label template.
type Generator struct {
	sizeMM    float64
	shortener Shortener
}

// New creates a generator whose codes are rendered at sizeMM per side.
// shortener may be nil, in which case over-capacity URL payloads skip
// straight to the standard fallback.
func New(sizeMM float64, shortener Shortener) *Generator {
	return &Generator{sizeMM: sizeMM, shortener: shortener}
}

// Generate encodes payload into a code fragment.
//
// An empty payload yields an empty fragment with size zero; the template
// omits the code region entirely in that case. In compact mode the URL
// scheme is stripped before the capacity check, since it is redundant
// overhead for a shortened link. A payload over compact capacity is
// shortened once if it is URL-shaped; if shortening fails or the result
// still does not fit, the original payload is encoded as a standard
// symbol instead.
func (g *Generator) Generate(ctx context.Context, payload string, mode Mode) (Result, error) {
	if payload == "" {
		return Result{}, nil
	}
	if mode == ModeStandard {
		return g.encodeStandard(payload)
	}

	stripped := stripScheme(payload)
	if len(stripped) <= CompactCapacity {
		return g.encodeCompact(stripped)
	}

	logger := ctxlog.FromContext(ctx)
	if isURL(payload) && g.shortener != nil {
		short, err := g.shortener.Shorten(ctx, payload)
		if err != nil {
			logger.Warn("URL shortening failed, falling back to standard code.", "url", payload, "error", err)
			return g.encodeStandard(payload)
		}
		if short = stripScheme(short); len(short) <= CompactCapacity {
			return g.encodeCompact(short)
		}
		logger.Info("Shortened URL still exceeds compact capacity, using standard code.", "url", payload)
		return g.encodeStandard(payload)
	}

	logger.Info("Payload too long for compact code, using standard code.", "length", len(stripped))
	return g.encodeStandard(payload)
}

func (g *Generator) encodeCompact(payload string) (Result, error) {
	code, err := qrcode.NewWithForcedVersion(payload, compactVersion, qrcode.Low)
	if err != nil {
		return Result{}, &EncodingError{Payload: payload, Err: err}
	}
	return g.result(code)
}

func (g *Generator) encodeStandard(payload string) (Result, error) {
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return Result{}, &EncodingError{Payload: payload, Err: err}
	}
	return g.result(code)
}

func (g *Generator) result(code *qrcode.QRCode) (Result, error) {
	code.DisableBorder = true
	return Result{
		Fragment: fragmentFromBitmap(code.Bitmap(), g.sizeMM),
		SizeMM:   g.sizeMM,
	}, nil
}

// isURL reports whether the payload is URL-shaped for shortening
// purposes.
func isURL(payload string) bool {
	return strings.HasPrefix(payload, "http://") || strings.HasPrefix(payload, "https://")
}

// stripScheme removes a leading http:// or https:// from the payload.
func stripScheme(payload string) string {
	payload = strings.TrimPrefix(payload, "http://")
	payload = strings.TrimPrefix(payload, "https://")
	return payload
}
