package icons

import (
	"fmt"

	"github.com/vk/gridlabelgo/internal/svgutil"
)

// SplitPolicy fixes where each fragment lands when both icon slots are
// populated. Values are fractions of the design square; the geometry is
// a layout constant, never derived from fragment content.
type SplitPolicy struct {
	// Scale applied to each fragment.
	Scale float64
	// Offset of the side fragment from the origin, as a fraction of the
	// design square. The top fragment stays at the origin.
	SideOffset float64
}

// DefaultSplit places the top view in the upper-left quadrant and the
// side view in the lower-right quadrant. SideOffset >= Scale keeps the
// two sub-regions disjoint.
var DefaultSplit = SplitPolicy{Scale: 0.5, SideOffset: 0.5}

// Compose combines the resolved slot fragments into a single fragment
// covering the full design square.
//
// With both slots empty it returns an empty fragment. With exactly one
// populated slot the fragment is returned unchanged, pre-sized to the
// full square. With both populated, each fragment is scaled and
// positioned per the split policy inside a new design-square group. The
// result stays in design-square coordinates, so callers place it with a
// single transform.
func Compose(top, side svgutil.Fragment, policy SplitPolicy) svgutil.Fragment {
	switch {
	case top.Empty() && side.Empty():
		return ""
	case side.Empty():
		return top
	case top.Empty():
		return side
	}

	offset := policy.SideOffset * designSize
	combined := fmt.Sprintf(
		`<g>`+
			`<g transform="scale(%g)">%s</g>`+
			`<g transform="translate(%g,%g) scale(%g)">%s</g>`+
			`</g>`,
		policy.Scale, top,
		offset, offset, policy.Scale, side,
	)
	return svgutil.Fragment(combined)
}
