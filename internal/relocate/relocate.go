// Package relocate computes where a stuck cursor should go.
package relocate

import (
	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/stuck"
	"github.com/yourusername/edgejump/internal/types"
)

// Policy holds the three independently toggleable behaviors.
type Policy struct {
	AllowUnstick bool `yaml:"allowUnstick" json:"allowUnstick"` // Follow the raw mouse onto the screen it already occupies
	AllowJump    bool `yaml:"allowJump" json:"allowJump"`       // Cross gaps to the nearest screen in the stuck direction
	AllowWrap    bool `yaml:"allowWrap" json:"allowWrap"`       // Wrap around the outer left/right edge
}

// Action names the branch that produced a decision.
type Action string

const (
	ActionNone    Action = "none"
	ActionUnstick Action = "unstick"
	ActionJump    Action = "jump"
	ActionWrap    Action = "wrap"
)

// Reason explains a decision that did not move the cursor.
type Reason string

const (
	ReasonMoved           Reason = ""
	ReasonNotStuck        Reason = "not-stuck"
	ReasonUnstickDisabled Reason = "unstick-disabled"
	ReasonJumpDisabled    Reason = "jump-disabled"
	ReasonWrapDisabled    Reason = "wrap-disabled"
	ReasonWrapNeedsJump   Reason = "wrap-needs-jump"
	ReasonNoTarget        Reason = "no-target"
	ReasonReconfiguring   Reason = "reconfiguring"
	ReasonIgnored         Reason = "ignored"
)

// Decision is the outcome for one sample.
type Decision struct {
	Moved    bool
	Position types.Point
	Action   Action
	Reason   Reason
	Target   *screen.Screen // Screen the cursor lands on when Moved
}

// Decline returns a decision that leaves the cursor alone.
func Decline(action Action, reason Reason) Decision {
	return Decision{Action: action, Reason: reason}
}

func moved(action Action, p types.Point, target *screen.Screen) Decision {
	return Decision{Moved: true, Position: p, Action: action, Target: target}
}

// Relocate picks the new cursor position for a detector result.
// Branches are tried in order (unstick, jump, wrap); the first one whose
// precondition holds decides, even if its policy flag declines.
func Relocate(res stuck.Result, policy Policy, topo *screen.Topology) Decision {
	if !res.Stuck {
		return Decline(ActionNone, ReasonNotStuck)
	}

	// Unstick: the raw mouse already lies on some screen.
	if res.MouseScreen != nil {
		if !policy.AllowUnstick {
			return Decline(ActionUnstick, ReasonUnstickDisabled)
		}
		p := res.Mouse
		if res.LastScreen != nil && res.LastScreen != res.MouseScreen {
			p.Y = RescaleDPI(res.Mouse.Y, res.LastScreen.DPI, res.MouseScreen.DPI)
		}
		return moved(ActionUnstick, p, res.MouseScreen)
	}

	if res.CursorScreen == nil {
		return Decline(ActionNone, ReasonNoTarget)
	}

	// Jump: a neighbor exists in the stuck direction, possibly across a gap.
	if jumpScreen := topo.ScreenInDirection(res.Direction, res.CursorScreen.Bounds); jumpScreen != nil {
		if !policy.AllowJump {
			return Decline(ActionJump, ReasonJumpDisabled)
		}
		return moved(ActionJump, jumpScreen.Bounds.ClosestBoundaryPoint(res.Cursor), jumpScreen)
	}

	// Wrap: only across the outer left/right edge.
	horizontal := res.Direction.Horizontal()
	if horizontal == types.DirNone {
		return Decline(ActionNone, ReasonNoTarget)
	}
	if !policy.AllowWrap {
		return Decline(ActionWrap, ReasonWrapDisabled)
	}

	wrapScreen := topo.WrapScreen(horizontal, res.Cursor)
	if wrapScreen == nil {
		return Decline(ActionWrap, ReasonNoTarget)
	}

	candidate := types.Point{X: wrapScreen.Bounds.Left, Y: res.Cursor.Y}
	if horizontal == types.DirLeft {
		candidate.X = wrapScreen.Bounds.Right - 1
	}

	// Landing off-screen would need a jump the user disabled.
	if !policy.AllowJump && !wrapScreen.Bounds.Contains(candidate) {
		return Decline(ActionWrap, ReasonWrapNeedsJump)
	}

	return moved(ActionWrap, wrapScreen.Bounds.ClosestBoundaryPoint(candidate), wrapScreen)
}

// RescaleDPI converts a coordinate reported in the source screen's DPI space
// into the target screen's. Integer division truncates toward zero.
func RescaleDPI(v, fromDPI, toDPI int) int {
	if fromDPI <= 0 || toDPI <= 0 || fromDPI == toDPI {
		return v
	}
	return int(int64(v) * int64(toDPI) / int64(fromDPI))
}
