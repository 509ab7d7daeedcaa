package types

import (
	"fmt"
	"strings"
)

// Point is a position in virtual desktop pixels.
// Coordinates can be negative (a screen left of or above the primary).
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// String returns "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a rectangle in virtual desktop pixels.
// Right and Bottom are exclusive: a 1920 wide screen at 0 has Right 1920.
type Rect struct {
	Left   int `yaml:"left" json:"left"`
	Top    int `yaml:"top" json:"top"`
	Right  int `yaml:"right" json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
}

// RectFromSize builds a Rect from an origin and a size.
func RectFromSize(x, y, width, height int) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns the horizontal extent of the rect
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rect
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Center returns the center point of a Rect
func (r Rect) Center() Point {
	return Point{
		X: r.Left + r.Width()/2,
		Y: r.Top + r.Height()/2,
	}
}

// Contains checks if a point is inside the rect.
// The test is half-open: [Left,Right) x [Top,Bottom).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right &&
		p.Y >= r.Top && p.Y < r.Bottom
}

// OverlapsVertically checks if two rects share any rows.
// An empty rect overlaps nothing.
func (r Rect) OverlapsVertically(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.Top < other.Bottom && r.Bottom > other.Top
}

// OverlapsHorizontally checks if two rects share any columns.
// An empty rect overlaps nothing.
func (r Rect) OverlapsHorizontally(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.Left < other.Right && r.Right > other.Left
}

// Union returns the smallest rect enclosing both rects.
// An empty rect does not contribute.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// OutsideDirection returns the edges the point lies beyond.
// Both a horizontal and a vertical edge are reported for a diagonal overshoot;
// use Direction.Primary to pick one.
func (r Rect) OutsideDirection(p Point) Direction {
	dir := DirNone
	if p.X < r.Left {
		dir |= DirLeft
	} else if p.X >= r.Right {
		dir |= DirRight
	}
	if p.Y < r.Top {
		dir |= DirUp
	} else if p.Y >= r.Bottom {
		dir |= DirDown
	}
	return dir
}

// OutsideDistance returns how many pixels the point lies outside the rect,
// measured as the larger of the two per-axis distances. Zero when inside.
func (r Rect) OutsideDistance(p Point) int {
	dx, dy := 0, 0
	if p.X < r.Left {
		dx = r.Left - p.X
	} else if p.X >= r.Right {
		dx = p.X - (r.Right - 1)
	}
	if p.Y < r.Top {
		dy = r.Top - p.Y
	} else if p.Y >= r.Bottom {
		dy = p.Y - (r.Bottom - 1)
	}
	return max(dx, dy)
}

// ClosestBoundaryPoint clamps the point onto the rect: x into [Left, Right-1]
// and y into [Top, Bottom-1], each axis independently.
func (r Rect) ClosestBoundaryPoint(p Point) Point {
	return Point{
		X: clamp(p.X, r.Left, r.Right-1),
		Y: clamp(p.Y, r.Top, r.Bottom-1),
	}
}

// String returns "WxH@(x,y)".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width(), r.Height(), r.Left, r.Top)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Direction is a set of edges: the side(s) of a rect a point lies outside of.
type Direction uint8

// DirNone is the empty set: the point is inside.
const DirNone Direction = 0

const (
	DirLeft Direction = 1 << iota
	DirRight
	DirUp
	DirDown
)

const (
	horizontalMask = DirLeft | DirRight
	verticalMask   = DirUp | DirDown
)

// Has reports whether every edge in other is set in d.
func (d Direction) Has(other Direction) bool {
	return other != DirNone && d&other == other
}

// Horizontal returns only the left/right component.
func (d Direction) Horizontal() Direction {
	return d & horizontalMask
}

// Vertical returns only the up/down component.
func (d Direction) Vertical() Direction {
	return d & verticalMask
}

// IsDiagonal reports whether both a horizontal and a vertical edge are set.
func (d Direction) IsDiagonal() bool {
	return d.Horizontal() != DirNone && d.Vertical() != DirNone
}

// Primary resolves a diagonal to a single axis.
// Horizontal wins: screens are side by side far more often than stacked.
func (d Direction) Primary() Direction {
	if h := d.Horizontal(); h != DirNone {
		return h
	}
	return d.Vertical()
}

// String returns the string representation of a Direction
func (d Direction) String() string {
	if d == DirNone {
		return "none"
	}
	var parts []string
	for _, e := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		if d&e == 0 {
			continue
		}
		switch e {
		case DirLeft:
			parts = append(parts, "left")
		case DirRight:
			parts = append(parts, "right")
		case DirUp:
			parts = append(parts, "up")
		case DirDown:
			parts = append(parts, "down")
		}
	}
	if len(parts) == 0 || d&^(horizontalMask|verticalMask) != 0 {
		return "unknown"
	}
	return strings.Join(parts, "+")
}

// ParseDirection converts a string to Direction.
// Combined forms such as "right+down" are accepted.
func ParseDirection(s string) (Direction, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "none" || s == "" {
		return DirNone, s == "none"
	}
	dir := DirNone
	for _, part := range strings.Split(s, "+") {
		switch part {
		case "left":
			dir |= DirLeft
		case "right":
			dir |= DirRight
		case "up":
			dir |= DirUp
		case "down":
			dir |= DirDown
		default:
			return DirNone, false
		}
	}
	if dir.Has(horizontalMask) || dir.Has(verticalMask) {
		return DirNone, false
	}
	return dir, true
}
