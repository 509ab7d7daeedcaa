package output

import (
	"github.com/yourusername/edgejump/internal/types"
)

// Terminal characters are roughly twice as tall as they are wide
const aspectRatio = 2

// border is the margin kept free around the drawing
const border = 2

// ScalingContext maps virtual-desktop pixels onto terminal cells with one
// uniform scale, so screen proportions survive. The scale is the exact
// fraction num/den; integer math keeps shared edges on the same column.
type ScalingContext struct {
	Bounds     types.Rect
	TermWidth  int
	TermHeight int

	num, den int64
}

// NewScalingContext fits bounds into a termWidth x termHeight area
func NewScalingContext(bounds types.Rect, termWidth, termHeight int) *ScalingContext {
	availWidth := termWidth - 2*border
	availHeight := termHeight - 2*border
	if availWidth < 10 {
		availWidth = 10
	}
	if availHeight < 5 {
		availHeight = 5
	}

	pixelWidth := int64(bounds.Width())
	pixelHeight := int64(bounds.Height())
	if pixelWidth <= 0 || pixelHeight <= 0 {
		pixelWidth, pixelHeight = 1920, 1080
	}

	sc := &ScalingContext{
		Bounds:     bounds,
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	// Width-limited unless the height in cells would overflow
	if int64(availWidth)*pixelHeight <= int64(availHeight)*aspectRatio*pixelWidth {
		sc.num, sc.den = int64(availWidth), pixelWidth
	} else {
		sc.num, sc.den = int64(availHeight)*aspectRatio, pixelHeight
	}
	return sc
}

// PixelToTerminal converts a virtual-desktop point to a terminal cell
func (sc *ScalingContext) PixelToTerminal(p types.Point) (int, int) {
	relX := int64(p.X - sc.Bounds.Left)
	relY := int64(p.Y - sc.Bounds.Top)

	termX := int(relX*sc.num/sc.den) + border
	termY := int(relY*sc.num/(sc.den*aspectRatio)) + border
	return termX, termY
}

// RectToTerminal converts a rect to a cell box (x, y, w, h). Adjacent rects
// produce adjacent boxes. Boxes are at least 3x2 and clamped to the terminal.
func (sc *ScalingContext) RectToTerminal(r types.Rect) (x, y, w, h int) {
	x, y = sc.PixelToTerminal(types.Point{X: r.Left, Y: r.Top})
	x2, y2 := sc.PixelToTerminal(types.Point{X: r.Right, Y: r.Bottom})
	return sc.clamp(x, y, x2-x, y2-y)
}

func (sc *ScalingContext) clamp(x, y, w, h int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > sc.TermWidth {
		w = sc.TermWidth - x
	}
	if y+h > sc.TermHeight {
		h = sc.TermHeight - y
	}

	if w < 3 {
		w = 3
	}
	if h < 2 {
		h = 2
	}
	return x, y, w, h
}
