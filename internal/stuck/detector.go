// Package stuck decides whether the OS has pinned the cursor at a screen edge
// while the raw mouse keeps moving.
package stuck

import (
	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/types"
)

// Result is the outcome of evaluating one mouse sample.
type Result struct {
	Stuck     bool
	Direction types.Direction // Edges of CursorScreen the mouse lies beyond

	Mouse  types.Point // Raw mouse sample
	Cursor types.Point // OS cursor position

	CursorScreen *screen.Screen // Screen holding the cursor, nil in a gap
	MouseScreen  *screen.Screen // Screen holding the raw mouse point, nil in a gap
	LastScreen   *screen.Screen // Screen holding the previous raw sample
}

// Detector holds the previous raw sample and the jump counter.
// It is not safe for concurrent use: exactly one input path owns it.
type Detector struct {
	lastMouse types.Point
	jumps     uint64
}

// NewDetector creates a detector seeded with an initial mouse position.
func NewDetector(initial types.Point) *Detector {
	return &Detector{lastMouse: initial}
}

// Evaluate classifies a sample against the topology.
// The previous sample is replaced by mouse before returning, whatever the result.
func (d *Detector) Evaluate(topo *screen.Topology, mouse, cursor types.Point) Result {
	prev := d.lastMouse
	d.lastMouse = mouse

	res := Result{
		Mouse:        mouse,
		Cursor:       cursor,
		LastScreen:   topo.WhichScreen(prev),
		CursorScreen: topo.WhichScreen(cursor),
		MouseScreen:  topo.WhichScreen(mouse),
	}

	// The OS clamped the cursor onto a different screen than the mouse wants,
	// or the raw mouse crossed into another screen since the last sample.
	res.Stuck = (cursor != prev && res.MouseScreen != res.CursorScreen) ||
		res.MouseScreen != res.LastScreen

	if res.CursorScreen != nil {
		res.Direction = res.CursorScreen.Bounds.OutsideDirection(mouse)
	}

	return res
}

// LastMouse returns the previous raw sample.
func (d *Detector) LastMouse() types.Point {
	return d.lastMouse
}

// Reset re-seeds the previous sample.
func (d *Detector) Reset(p types.Point) {
	d.lastMouse = p
}

// RecordJump counts one cursor relocation.
func (d *Detector) RecordJump() {
	d.jumps++
}

// Jumps returns the number of relocations recorded so far.
func (d *Detector) Jumps() uint64 {
	return d.jumps
}
