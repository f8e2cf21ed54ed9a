package qr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vk/gridlabelgo/internal/svgutil"
)

// fragmentFromBitmap renders a module matrix as a declaration-free SVG
// group: one unit rect per dark module over a white background, scaled so
// the group spans sizeMM user units per side. A transformed group is used
// instead of a nested viewport because the raster backend maps only the
// root viewBox, and absolute units would resolve against CSS pixels
// rather than the template's millimeter units.
func fragmentFromBitmap(modules [][]bool, sizeMM float64) svgutil.Fragment {
	n := len(modules)
	if n == 0 {
		return ""
	}

	scale := math.Round(sizeMM/float64(n)*1e6) / 1e6

	var sb strings.Builder
	fmt.Fprintf(&sb, `<g transform="scale(%s)">`, strconv.FormatFloat(scale, 'f', -1, 64))
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#FFFFFF"/>`, n, n)
	for y, row := range modules {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="1" height="1" fill="#000000"/>`, x, y)
			}
		}
	}
	sb.WriteString(`</g>`)
	return svgutil.Fragment(sb.String())
}
