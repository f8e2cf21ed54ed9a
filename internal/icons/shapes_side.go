package icons

import (
	"math"

	svg "github.com/ajstarks/svgo/float"
)

// Side views: the label's secondary icon slot shows the part in profile.

func buttonHeadSide(c *svg.SVG) {
	buttonSide(c, 50, 20)
	boltShaft(c, 25, 80, false)
}

func capHeadSide(c *svg.SVG) {
	capSide(c, 50, 30)
	boltShaft(c, 25, 80, false)
}

func flushHeadSide(c *svg.SVG) {
	countersunkSide(c, 50, 20)
	boltShaft(c, 20, 80, false)
}

func woodScrewSide(c *svg.SVG) {
	countersunkSide(c, 50, 20)
	boltShaft(c, 20, 80, true)
}

func washerStdSide(outerDiameter, innerDiameter float64) func(c *svg.SVG) {
	return func(c *svg.SVG) {
		thickness := outerDiameter / 6
		c.Rect((100-thickness)/2, (100-outerDiameter)/2, thickness, outerDiameter, ink)
		c.Rect((100-thickness)/2, (100-innerDiameter)/2, thickness, innerDiameter, paper)
	}
}

func washerSplitSide(c *svg.SVG) {
	left := 46.0
	c.Path("M 46 15 Q 41 45 46 50 Q 51 55 46 85", "stroke:#000000;stroke-width:8;fill:none")
	// Diagonal cut marks the split.
	c.Line(left+14, 30, left-10, 70, "stroke:#FFFFFF;stroke-width:8")
}

func nutStandardSide(c *svg.SVG) {
	nutHexSide(c, 30, 80)
}

func nutLockSide(c *svg.SVG) {
	nutHexSide(c, 30, 80)
	// Band on top marks the nylon insert.
	c.Rect(50, 18, 30, 64, ink)
}

func nutFlangeSide(c *svg.SVG) {
	nutHexSide(c, 30, 80)
	c.Rect(35, 2, 12, 96, ink)
}

func nutCapSide(c *svg.SVG) {
	c.Circle(50, 50, 32, ink)
	c.Rect(0, 0, 50, 100, paper)
	c.Rect(30, 10, 20, 80, ink)
	c.Rect(50, 0, 4, 100, paper)
}

func nutWingSide(c *svg.SVG) {
	c.Gtransform("rotate(-60 50 50)")
	c.Rect(50, 40, 48, 16, ink)
	c.Gend()
	c.Gtransform("rotate(60 50 50)")
	c.Rect(50, 40, 48, 16, ink)
	c.Gend()
	nutHexSide(c, 30, 48)
}

func insertHeatSide(c *svg.SVG) {
	const (
		length       = 60.0
		wideWidth    = 40.0
		narrowWidth  = 32.0
		wideHeight   = length / 3
		narrowHeight = length / 6
	)
	top := 100 - length*1.3
	c.Rect((100-wideWidth)/2, top, wideWidth, wideHeight, ink)
	c.Rect((100-narrowWidth)/2, top+wideHeight, narrowWidth, narrowHeight, ink)
	c.Rect((100-wideWidth)/2, top+wideHeight+narrowHeight, wideWidth, wideHeight, ink)
	c.Rect((100-narrowWidth)/2, top+2*wideHeight+narrowHeight, narrowWidth, narrowHeight, ink)

	// Opposed diagonal hatching on the wide bands reads as knurling.
	slant := wideHeight * math.Tan(30*math.Pi/180)
	for x := (100 - wideWidth) / 2; x <= (100+wideWidth)/2; x += 10 {
		c.Line(x, top, x-slant, top+wideHeight, cutLine)
		lower := top + wideHeight + narrowHeight
		c.Line(x, lower, x+slant, lower+wideHeight, cutLine)
	}
}

func insertWoodSide(c *svg.SVG) {
	c.Rect(20, 29, 60, 42, ink)
	c.Path("M 20 70 L 80 70 L 71 90 L 29 90 Z", ink)
	for i := 0; i < 7; i++ {
		y := 30 + float64(i)*8
		c.Line(20, y, 80, y-12, cutLine)
	}
	c.Rect(45, 25, 10, 15, paper)
}

func insertPressSide(c *svg.SVG) {
	const (
		diameter      = 60.0
		height        = diameter * 1.2
		sectionHeight = height * 0.25
	)
	top := (100 - height) / 2
	c.Rect(50-diameter/2, top, diameter, sectionHeight, ink)
	c.Rect(50-diameter/2, top+height-sectionHeight, diameter, sectionHeight, ink)
	c.Rect(50-diameter*0.35, top+sectionHeight, diameter*0.7, height-2*sectionHeight, ink)
	for i := 0; i < 8; i++ {
		x := 50 - diameter/2 + float64(i)*diameter*0.2
		c.Rect(x-4, top, 2, sectionHeight, paper)
		c.Rect(x-6, top+height-sectionHeight, 2, sectionHeight, paper)
	}
}

func bearingSide(c *svg.SVG) {
	c.Rect(36.7, 10, 26.7, 80, ink)
	c.Rect(36.7, 35, 26.7, 30, paper)
}

func bearingFlangeSide(c *svg.SVG) {
	c.Rect(36.7, 10, 26.7, 80, ink)
	c.Rect(36.7, 2, 8, 96, ink)
	c.Rect(36.7, 35, 26.7, 30, paper)
}

func springSide(c *svg.SVG) {
	const (
		diameter = 40.0
		length   = 60.0
		numCoils = 7
	)
	startY := (100 - length) / 2
	endY := startY + length
	startX := (100 - diameter) / 2
	endX := startX + diameter
	spacing := diameter * 2 / numCoils

	c.Line(startX, startY, endX, startY, "stroke:#000000;stroke-width:8")
	c.Line(startX, endY, endX, endY, "stroke:#000000;stroke-width:8")
	for i := 0; i < numCoils; i++ {
		y := startY + float64(i)*spacing
		if y+spacing > endY {
			if y < endY {
				c.Line(startX, y, endX, endY, coilLine)
			}
			break
		}
		c.Line(startX, y, endX, y+spacing, coilLine)
	}
}
