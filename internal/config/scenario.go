package config

import (
	"github.com/yourusername/edgejump/internal/engine"
	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/types"
)

// ToRect converts an origin+size frame into a Rect
func (f FrameConfig) ToRect() types.Rect {
	return types.RectFromSize(f.X, f.Y, f.Width, f.Height)
}

// ToScreen converts ScreenConfig to screen.Screen
func (sc ScreenConfig) ToScreen() screen.Screen {
	s := screen.Screen{
		Name:    sc.Name,
		Bounds:  sc.Frame.ToRect(),
		DPI:     sc.DPI,
		Primary: sc.Primary,
	}
	if sc.WorkArea != nil {
		s.WorkArea = sc.WorkArea.ToRect()
	}
	return s
}

// ToScreens converts every configured screen, keeping order
func (s *Scenario) ToScreens() []screen.Screen {
	screens := make([]screen.Screen, len(s.Screens))
	for i, sc := range s.Screens {
		screens[i] = sc.ToScreen()
	}
	return screens
}

// ToSample converts SampleConfig to engine.Sample. Validate must have passed.
func (sc SampleConfig) ToSample() engine.Sample {
	kind := engine.Kind(sc.Kind)
	if kind == "" {
		kind = engine.KindMove
	}
	return engine.Sample{
		Kind:   kind,
		Mouse:  toPoint(sc.Mouse),
		Cursor: toPoint(sc.Cursor),
	}
}

// ExpectPoint returns the expected relocation target, if one was recorded
func (sc SampleConfig) ExpectPoint() (types.Point, bool) {
	if len(sc.Expect) != 2 {
		return types.Point{}, false
	}
	return toPoint(sc.Expect), true
}

// SeedPoint returns the initial previous sample. Without an explicit seed it
// is the first sample's cursor position.
func (s *Scenario) SeedPoint() types.Point {
	if len(s.Seed) == 2 {
		return toPoint(s.Seed)
	}
	if len(s.Samples) > 0 && len(s.Samples[0].Cursor) == 2 {
		return toPoint(s.Samples[0].Cursor)
	}
	return types.Point{}
}

func toPoint(xy []int) types.Point {
	if len(xy) != 2 {
		return types.Point{}
	}
	return types.Point{X: xy[0], Y: xy[1]}
}
