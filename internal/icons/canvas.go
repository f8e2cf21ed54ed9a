package icons

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo/float"

	"github.com/vk/gridlabelgo/internal/svgutil"
)

// designSize is the side length of the normalized square all icon
// fragments are authored against.
const designSize = 100.0

const (
	ink      = "fill:#000000"
	paper    = "fill:#FFFFFF"
	cutLine  = "stroke:#FFFFFF;stroke-width:2;fill:none"
	coilLine = "stroke:#000000;stroke-width:5;fill:none"
)

// draw renders fn onto a design-square canvas and returns the sanitized,
// declaration-free fragment. svgo always emits an XML declaration and a
// generator comment, so every producer funnels through the sanitizer.
// The document wrapper is stripped and the shapes are returned as a
// plain group in design-square coordinates: the raster backend maps only
// the root viewBox, so fragments must be positionable with transforms
// alone, never with nested viewports.
func draw(fn func(c *svg.SVG)) svgutil.Fragment {
	var buf bytes.Buffer
	c := svg.New(&buf)
	c.Start(designSize, designSize, `viewBox="0 0 100 100"`)
	fn(c)
	c.End()
	inner := svgutil.MustSanitize(buf.String()).Inner()
	return svgutil.Fragment("<g>" + inner.String() + "</g>")
}

// producer wraps a drawing function as a registry Producer.
func producer(fn func(c *svg.SVG)) Producer {
	return ProducerFunc(func() svgutil.Fragment { return draw(fn) })
}

// polygonPoints returns the vertices of a regular n-gon sized by its
// flat-to-flat distance (twice the apothem), centered on (cx, cy).
func polygonPoints(n int, flatToFlat, cx, cy, rotationDeg float64) (xs, ys []float64) {
	circumradius := flatToFlat / (2 * math.Cos(math.Pi/float64(n)))
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		a := (rotationDeg + float64(i)*360.0/float64(n)) * math.Pi / 180.0
		xs[i] = cx + circumradius*math.Cos(a)
		ys[i] = cy + circumradius*math.Sin(a)
	}
	return xs, ys
}

// starPath returns the path data for a star with the given lobe count,
// alternating between the outer and inner radii, starting pointing up.
func starPath(lobes int, outerRadius, innerRadius float64) string {
	var b bytes.Buffer
	b.WriteString("M ")
	for i := 0; i < lobes*2; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		a := (float64(i)*360.0/float64(lobes*2) - 90) * math.Pi / 180.0
		fmt.Fprintf(&b, "%.2f %.2f ", 50+r*math.Cos(a), 50+r*math.Sin(a))
		if i == 0 {
			b.WriteString("L ")
		}
	}
	b.WriteString("Z")
	return b.String()
}

// annulus draws a ring with the given outer and inner radii.
func annulus(c *svg.SVG, outerRadius, innerRadius float64) {
	c.Circle(50, 50, outerRadius, ink)
	c.Circle(50, 50, innerRadius, paper)
}

// slotCut draws a white slot through the center of the field, rotated by
// angle degrees. Used for drive recess top views.
func slotCut(c *svg.SVG, length, width, angle float64) {
	c.Gtransform(fmt.Sprintf("rotate(%g 50 50)", angle))
	c.Rect((100-length)/2, (100-width)/2, length, width, paper)
	c.Gend()
}

// capSide draws a rounded-rectangle screw head in profile.
func capSide(c *svg.SVG, headWidth, headHeight float64) {
	c.Roundrect((100-headWidth)/2, 100-headHeight-80, headWidth, headHeight, headHeight/4, headHeight/4, ink)
}

// buttonSide draws a domed screw head in profile, flat side down.
func buttonSide(c *svg.SVG, headDiameter, headHeight float64) {
	top := 100 - headHeight - 80
	c.Ellipse(50, top+headHeight/2, headDiameter/2, headHeight/2, ink)
	c.Rect((100-headDiameter)/2, top+headHeight/2, headDiameter, headHeight/2, ink)
}

// countersunkSide draws a trapezoidal countersunk head in profile,
// smaller at the bottom.
func countersunkSide(c *svg.SVG, headDiameter, headHeight float64) {
	top := 100 - headHeight - 80
	d := fmt.Sprintf("M %g %g L %g %g L 60 20 L 40 20 Z",
		(100-headDiameter)/2, top, (100+headDiameter)/2, top)
	c.Path(d, ink)
}

// boltShaft draws a threaded shaft below a head: a vertical rectangle
// with diagonal thread lines, ending in a chamfer or a point.
func boltShaft(c *svg.SVG, shaftWidth, shaftLength float64, pointed bool) {
	originX := (100 - shaftWidth) / 2
	originY := 100 - shaftLength
	chamferHeight := shaftWidth / 4
	if pointed {
		shaftLength -= shaftWidth
	} else {
		shaftLength -= chamferHeight
	}
	c.Rect(originX, originY, shaftWidth, shaftLength, ink)

	const numThreads = 6
	for i := 0; i < numThreads; i++ {
		y := originY + float64(i+1)*(shaftLength/(numThreads+1))
		c.Line(originX, y, (100+shaftWidth)/2, y-shaftWidth/4, cutLine)
	}

	bottom := originY + shaftLength
	if pointed {
		c.Path(fmt.Sprintf("M %g %g L 50 100 L %g %g Z", originX, bottom, originX+shaftWidth, bottom), ink)
	} else {
		c.Path(fmt.Sprintf("M %g %g L %g %g L %g %g L %g %g Z",
			originX, bottom,
			originX+shaftWidth, bottom,
			originX+shaftWidth-chamferHeight/2, bottom+chamferHeight,
			originX+chamferHeight/2, bottom+chamferHeight), ink)
	}
}

// nutHexTop draws a hexagon with a round hole in the center.
func nutHexTop(c *svg.SVG, flatToFlat float64, fill string) {
	xs, ys := polygonPoints(6, flatToFlat, 50, 50, 0)
	c.Polygon(xs, ys, fill)
	c.Circle(50, 50, flatToFlat/4, paper)
}

// nutHexSide draws a nut in profile: a vertical rectangle with two
// horizontal lines marking the hex facets.
func nutHexSide(c *svg.SVG, thickness, flatToFlat float64) {
	left := (100 - thickness) / 2
	top := (100 - flatToFlat) / 2
	c.Rect(left, top, thickness, flatToFlat, ink)
	overhang := flatToFlat / 4
	c.Line(left-overhang, top+flatToFlat*0.25, left+thickness+overhang, top+flatToFlat*0.25, cutLine)
	c.Line(left-overhang, top+flatToFlat*0.75, left+thickness+overhang, top+flatToFlat*0.75, cutLine)
}
