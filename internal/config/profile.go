// Package config loads the declarative label profile: the physical and
// layout constants the pipeline composes against. Profiles are HCL files;
// every block and attribute is optional and falls back to the compiled
// defaults, which match a 36mm tape on a 150dpi label printer.
package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Compiled defaults. Label height is nominally 9mm but printers cannot
// reach the tape edges, so the printable height is smaller.
const (
	DefaultWidthMM  = 36.0
	DefaultHeightMM = 7.7
	DefaultDensity  = 150.0
)

// Profile is the fully resolved label profile.
type Profile struct {
	// Label physical dimensions and print density.
	WidthMM  float64
	HeightMM float64
	Density  float64

	// Two-icon split policy, as fractions of the design square.
	SplitScale      float64
	SplitSideOffset float64

	// Link-shortening boundary.
	ShortenerEndpoint string
	ShortenerTimeout  time.Duration
}

// Default returns the compiled-in profile.
func Default() Profile {
	return Profile{
		WidthMM:          DefaultWidthMM,
		HeightMM:         DefaultHeightMM,
		Density:          DefaultDensity,
		SplitScale:       0.5,
		SplitSideOffset:  0.5,
		ShortenerTimeout: 5 * time.Second,
	}
}

// profileHCL is the HCL schema the profile file decodes into. Pointers
// and optional tags distinguish "absent" from zero so defaults apply
// per attribute.
type profileHCL struct {
	Label     *labelHCL     `hcl:"label,block"`
	Icons     *iconsHCL     `hcl:"icons,block"`
	Shortener *shortenerHCL `hcl:"shortener,block"`
}

type labelHCL struct {
	WidthMM  *float64 `hcl:"width_mm,optional"`
	HeightMM *float64 `hcl:"height_mm,optional"`
	Density  *float64 `hcl:"density,optional"`
}

type iconsHCL struct {
	SplitScale      *float64 `hcl:"split_scale,optional"`
	SplitSideOffset *float64 `hcl:"split_side_offset,optional"`
}

type shortenerHCL struct {
	Endpoint  *string  `hcl:"endpoint,optional"`
	TimeoutMS *float64 `hcl:"timeout_ms,optional"`
}

// Load parses an HCL profile file and merges it over the defaults.
func Load(path string) (Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Profile{}, fmt.Errorf("failed to parse profile %s: %w", path, diags)
	}
	return decode(file.Body, path)
}

// LoadBytes parses an in-memory HCL profile. The filename is only used
// in diagnostics.
func LoadBytes(src []byte, filename string) (Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Profile{}, fmt.Errorf("failed to parse profile %s: %w", filename, diags)
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, name string) (Profile, error) {
	profile := Default()

	// Profiles may derive values from the defaults, e.g.
	// `height_mm = defaults.height_mm * 2` for double-height tape.
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"width_mm":  cty.NumberFloatVal(DefaultWidthMM),
				"height_mm": cty.NumberFloatVal(DefaultHeightMM),
				"density":   cty.NumberFloatVal(DefaultDensity),
			}),
		},
	}

	var raw profileHCL
	if diags := gohcl.DecodeBody(body, evalCtx, &raw); diags.HasErrors() {
		return Profile{}, fmt.Errorf("failed to decode profile %s: %w", name, diags)
	}

	if raw.Label != nil {
		setFloat(&profile.WidthMM, raw.Label.WidthMM)
		setFloat(&profile.HeightMM, raw.Label.HeightMM)
		setFloat(&profile.Density, raw.Label.Density)
	}
	if raw.Icons != nil {
		setFloat(&profile.SplitScale, raw.Icons.SplitScale)
		setFloat(&profile.SplitSideOffset, raw.Icons.SplitSideOffset)
	}
	if raw.Shortener != nil {
		if raw.Shortener.Endpoint != nil {
			profile.ShortenerEndpoint = *raw.Shortener.Endpoint
		}
		if raw.Shortener.TimeoutMS != nil {
			profile.ShortenerTimeout = time.Duration(*raw.Shortener.TimeoutMS) * time.Millisecond
		}
	}

	return profile, profile.validate(name)
}

func (p Profile) validate(name string) error {
	if p.WidthMM <= 0 || p.HeightMM <= 0 {
		return fmt.Errorf("profile %s: label dimensions must be positive", name)
	}
	if p.Density <= 0 {
		return fmt.Errorf("profile %s: density must be positive", name)
	}
	if p.SplitScale <= 0 || p.SplitScale > 1 || p.SplitSideOffset < 0 || p.SplitSideOffset > 1 {
		return fmt.Errorf("profile %s: icon split values must be fractions of the design square", name)
	}
	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
