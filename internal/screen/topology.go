// Package screen models the set of displays forming the virtual desktop and
// answers containment and adjacency questions about it.
package screen

import (
	"github.com/google/uuid"

	"github.com/yourusername/edgejump/internal/types"
)

// ReferenceDPI is the DPI at which one logical pixel equals one device pixel.
const ReferenceDPI = 96

// Screen describes one physical display.
type Screen struct {
	ID       int        // Position in the topology, assigned by NewTopology
	Name     string     // Platform device name or handle, informational
	Bounds   types.Rect // Full screen bounds in virtual desktop coordinates
	WorkArea types.Rect // Excludes taskbar / dock
	DPI      int        // Effective DPI
	Primary  bool
}

// Scale returns the screen's DPI relative to ReferenceDPI.
func (s *Screen) Scale() float64 {
	return float64(s.DPI) / ReferenceDPI
}

// Topology is an immutable snapshot of the screens in the virtual desktop.
// A configuration change builds a new Topology; nothing mutates an old one.
type Topology struct {
	screens    []*Screen
	bounds     types.Rect
	generation string
}

// NewTopology copies screens into a new topology.
// IDs are reassigned by position. A DPI of zero (platform could not tell)
// becomes referenceDPI, and a zero referenceDPI means ReferenceDPI.
// A WorkArea left empty defaults to the screen bounds.
func NewTopology(screens []Screen, referenceDPI int) *Topology {
	if referenceDPI <= 0 {
		referenceDPI = ReferenceDPI
	}

	t := &Topology{
		screens:    make([]*Screen, 0, len(screens)),
		generation: uuid.New().String(),
	}

	for i, s := range screens {
		s.ID = i
		if s.DPI <= 0 {
			s.DPI = referenceDPI
		}
		if s.WorkArea.Empty() {
			s.WorkArea = s.Bounds
		}
		sc := s
		t.screens = append(t.screens, &sc)
		t.bounds = t.bounds.Union(s.Bounds)
	}

	return t
}

// Len returns the number of screens.
func (t *Topology) Len() int {
	return len(t.screens)
}

// Screens returns the screens in topology order. Callers must not modify them.
func (t *Topology) Screens() []*Screen {
	return t.screens
}

// ByID returns the screen with the given ID, or nil.
func (t *Topology) ByID(id int) *Screen {
	if id < 0 || id >= len(t.screens) {
		return nil
	}
	return t.screens[id]
}

// Primary returns the primary screen, or the first screen if none is flagged.
// Returns nil for an empty topology.
func (t *Topology) Primary() *Screen {
	for _, s := range t.screens {
		if s.Primary {
			return s
		}
	}
	if len(t.screens) == 0 {
		return nil
	}
	return t.screens[0]
}

// Bounds returns the outer extents of the virtual desktop.
func (t *Topology) Bounds() types.Rect {
	return t.bounds
}

// Generation identifies this snapshot in logs.
func (t *Topology) Generation() string {
	return t.generation
}

// WhichScreen returns the first screen containing p, or nil if p is in a gap.
func (t *Topology) WhichScreen(p types.Point) *Screen {
	for _, s := range t.screens {
		if s.Bounds.Contains(p) {
			return s
		}
	}
	return nil
}

// ScreenInDirection finds the nearest screen beyond the given edge of from.
// Candidates must overlap from on the perpendicular axis and lie entirely past
// the edge; gaps are allowed. Ties go to the earlier screen.
// A diagonal direction tries its horizontal component first.
// Returns nil if no screen qualifies.
func (t *Topology) ScreenInDirection(direction types.Direction, from types.Rect) *Screen {
	if h := direction.Horizontal(); h != types.DirNone {
		if s := t.neighbor(h, from); s != nil {
			return s
		}
	}
	if v := direction.Vertical(); v != types.DirNone {
		return t.neighbor(v, from)
	}
	return nil
}

// neighbor handles a single-edge direction.
func (t *Topology) neighbor(direction types.Direction, from types.Rect) *Screen {
	var best *Screen
	bestGap := 0

	for _, s := range t.screens {
		frame := s.Bounds
		if frame.Empty() {
			continue
		}

		gap := -1
		switch direction {
		case types.DirLeft:
			// B is to the left: B.Right <= A.Left AND vertical overlap
			if frame.Right <= from.Left && frame.OverlapsVertically(from) {
				gap = from.Left - frame.Right
			}
		case types.DirRight:
			// B is to the right: A.Right <= B.Left AND vertical overlap
			if frame.Left >= from.Right && frame.OverlapsVertically(from) {
				gap = frame.Left - from.Right
			}
		case types.DirUp:
			// B is above: B.Bottom <= A.Top AND horizontal overlap
			if frame.Bottom <= from.Top && frame.OverlapsHorizontally(from) {
				gap = from.Top - frame.Bottom
			}
		case types.DirDown:
			// B is below: A.Bottom <= B.Top AND horizontal overlap
			if frame.Top >= from.Bottom && frame.OverlapsHorizontally(from) {
				gap = frame.Top - from.Bottom
			}
		}

		if gap < 0 {
			continue
		}
		if best == nil || gap < bestGap {
			best = s
			bestGap = gap
		}
	}

	return best
}

// WrapScreen finds the screen on the opposite extreme of the virtual desktop
// for wrap-around. Only screens whose perpendicular extent contains p are
// considered; if none do, the first screen is returned. Returns nil only for
// an empty topology.
func (t *Topology) WrapScreen(direction types.Direction, p types.Point) *Screen {
	if len(t.screens) == 0 {
		return nil
	}

	var candidate *Screen
	candidateValue := 0

	for _, s := range t.screens {
		frame := s.Bounds
		switch direction.Primary() {
		case types.DirLeft:
			// Wrap left -> rightmost screen covering p.Y
			if p.Y >= frame.Top && p.Y < frame.Bottom {
				if candidate == nil || frame.Right > candidateValue {
					candidate = s
					candidateValue = frame.Right
				}
			}
		case types.DirRight:
			// Wrap right -> leftmost screen covering p.Y
			if p.Y >= frame.Top && p.Y < frame.Bottom {
				if candidate == nil || frame.Left < candidateValue {
					candidate = s
					candidateValue = frame.Left
				}
			}
		case types.DirUp:
			// Wrap up -> bottommost screen covering p.X
			if p.X >= frame.Left && p.X < frame.Right {
				if candidate == nil || frame.Bottom > candidateValue {
					candidate = s
					candidateValue = frame.Bottom
				}
			}
		case types.DirDown:
			// Wrap down -> topmost screen covering p.X
			if p.X >= frame.Left && p.X < frame.Right {
				if candidate == nil || frame.Top < candidateValue {
					candidate = s
					candidateValue = frame.Top
				}
			}
		}
	}

	if candidate == nil {
		return t.screens[0]
	}
	return candidate
}
