package icons

import (
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo/float"
)

// Top views: the label's primary icon slot shows the part as seen from
// above (drive recesses for screws, outlines for everything else).

func headHexTop(c *svg.SVG) {
	flatToFlat := 80 * math.Sqrt(3) / 2
	xs, ys := polygonPoints(6, flatToFlat, 50, 50, 30)
	c.Polygon(xs, ys, ink)
}

func headSocketTop(c *svg.SVG) {
	c.Circle(50, 50, 40, ink)
	xs, ys := polygonPoints(6, 40, 50, 50, 0)
	c.Polygon(xs, ys, paper)
}

func headTorxTop(c *svg.SVG) {
	c.Circle(50, 50, 40, ink)
	c.Path(starPath(6, 24, 16), paper)
}

func headSquareTop(c *svg.SVG) {
	c.Circle(50, 50, 40, ink)
	c.Rect(34, 34, 32, 32, paper)
}

func headSlottedTop(c *svg.SVG) {
	c.Circle(50, 50, 40, ink)
	slotCut(c, 75, 10, 0)
}

func headPhillipsTop(c *svg.SVG) {
	c.Circle(50, 50, 40, ink)
	slotCut(c, 75, 10, 0)
	slotCut(c, 75, 10, 90)
}

func headPozidrivTop(c *svg.SVG) {
	c.Circle(50, 50, 40, ink)
	slotCut(c, 75, 10, 0)
	slotCut(c, 75, 10, 90)
	slotCut(c, 50, 5, 45)
	slotCut(c, 50, 5, -45)
}

func washerStdTop(outerDiameter, innerDiameter float64) func(c *svg.SVG) {
	return func(c *svg.SVG) {
		annulus(c, outerDiameter/2, innerDiameter/2)
	}
}

func washerSplitTop(c *svg.SVG) {
	annulus(c, 40, 20)
	// Gap in the ring marks the split.
	c.Gtransform("rotate(-20 50 50)")
	c.Rect(50, 46, 50, 8, paper)
	c.Gend()
}

func washerStarInnerTop(c *svg.SVG) {
	annulus(c, 40, 20)
	c.Path(starPath(12, 32, 16), paper)
	c.Circle(50, 50, 22, paper)
}

func washerStarOuterTop(c *svg.SVG) {
	c.Path(starPath(12, 41.6, 22.4), ink)
	c.Circle(50, 50, 32, ink)
	c.Circle(50, 50, 22.4, paper)
}

func nutStandardTop(c *svg.SVG) {
	nutHexTop(c, 80, ink)
}

func nutLockTop(c *svg.SVG) {
	nutHexTop(c, 80, ink)
	c.Circle(50, 50, 16, paper)
}

func nutFlangeTop(c *svg.SVG) {
	c.Circle(50, 50, 48, ink)
	nutHexTop(c, 72, paper)
	nutHexTop(c, 64, ink)
}

func nutCapTop(c *svg.SVG) {
	xs, ys := polygonPoints(6, 80, 50, 50, 0)
	c.Polygon(xs, ys, ink)
	c.Circle(50, 50, 32, paper)
	c.Circle(50, 50, 28, ink)
}

func nutWingTop(c *svg.SVG) {
	annulus(c, 32, 16)
	c.Gtransform("rotate(45 50 50)")
	c.Rect(40, 0, 20, 20, ink)
	c.Rect(40, 80, 20, 20, ink)
	c.Gend()
}

func insertHeatTop(c *svg.SVG) {
	c.Path(starPath(20, 48, 40), ink)
	c.Circle(50, 50, 16, paper)
}

func insertWoodTop(c *svg.SVG) {
	c.Circle(50, 50, 40, ink)
	c.Circle(50, 50, 16, paper)
	for i := 0; i < 12; i++ {
		c.Gtransform(fmt.Sprintf("rotate(%d 50 50)", i*30))
		c.Rect(50, 82, 8, 8, paper)
		c.Gend()
	}
}

func bearingTop(c *svg.SVG) {
	c.Circle(50, 50, 40, ink)
	c.Circle(50, 50, 32, paper)
	c.Circle(50, 50, 18, ink)
	c.Circle(50, 50, 15, paper)
}

func springTop(c *svg.SVG) {
	c.Circle(50, 50, 40, ink)
	c.Circle(50, 50, 28, paper)
}
