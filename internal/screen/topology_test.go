package screen

import (
	"testing"

	"github.com/yourusername/edgejump/internal/types"
)

// Test desktop:
//
//	+----------+   +--------+
//	|  left    |   | right  |
//	| 1920x1080|gap|1280x1024
//	+----------+   +--------+
//	+----------+
//	|  below   |
//	+----------+
func makeTestTopology() *Topology {
	return NewTopology([]Screen{
		{Name: "left", Bounds: types.RectFromSize(0, 0, 1920, 1080), DPI: 96, Primary: true},
		{Name: "right", Bounds: types.RectFromSize(2020, 0, 1280, 1024), DPI: 144},
		{Name: "below", Bounds: types.RectFromSize(0, 1080, 1920, 1080)},
	}, 0)
}

func TestNewTopology_Defaults(t *testing.T) {
	topo := makeTestTopology()

	if topo.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", topo.Len())
	}
	below := topo.ByID(2)
	if below == nil || below.Name != "below" {
		t.Fatalf("ByID(2) = %+v, want below", below)
	}
	if below.DPI != ReferenceDPI {
		t.Errorf("zero DPI should default to %d, got %d", ReferenceDPI, below.DPI)
	}
	if below.WorkArea != below.Bounds {
		t.Errorf("empty work area should default to bounds, got %v", below.WorkArea)
	}
	if topo.ByID(3) != nil || topo.ByID(-1) != nil {
		t.Error("ByID out of range should return nil")
	}
	want := types.Rect{Left: 0, Top: 0, Right: 3300, Bottom: 2160}
	if topo.Bounds() != want {
		t.Errorf("Bounds() = %+v, want %+v", topo.Bounds(), want)
	}
	if topo.Generation() == "" {
		t.Error("Generation() should not be empty")
	}
	if topo.Primary().Name != "left" {
		t.Errorf("Primary() = %s, want left", topo.Primary().Name)
	}
}

func TestNewTopology_CustomReferenceDPI(t *testing.T) {
	topo := NewTopology([]Screen{{Bounds: types.RectFromSize(0, 0, 10, 10)}}, 120)
	if got := topo.ByID(0).DPI; got != 120 {
		t.Errorf("DPI = %d, want 120", got)
	}
}

func TestNewTopology_CopiesInput(t *testing.T) {
	in := []Screen{{Name: "a", Bounds: types.RectFromSize(0, 0, 10, 10)}}
	topo := NewTopology(in, 0)
	in[0].Name = "mutated"
	if topo.ByID(0).Name != "a" {
		t.Error("topology should not alias the input slice")
	}
}

func TestWhichScreen_Single(t *testing.T) {
	topo := NewTopology([]Screen{{Bounds: types.RectFromSize(0, 0, 100, 50)}}, 0)
	only := topo.ByID(0)

	for x := -2; x < 103; x++ {
		for _, y := range []int{-1, 0, 25, 49, 50} {
			p := types.Point{X: x, Y: y}
			got := topo.WhichScreen(p)
			inside := x >= 0 && x < 100 && y >= 0 && y < 50
			if inside && got != only {
				t.Fatalf("WhichScreen(%v) = %v, want the screen", p, got)
			}
			if !inside && got != nil {
				t.Fatalf("WhichScreen(%v) = %v, want nil", p, got)
			}
		}
	}
}

func TestWhichScreen_Gap(t *testing.T) {
	topo := makeTestTopology()

	if s := topo.WhichScreen(types.Point{X: 1950, Y: 100}); s != nil {
		t.Errorf("point in gap should have no screen, got %s", s.Name)
	}
	if s := topo.WhichScreen(types.Point{X: 2020, Y: 100}); s == nil || s.Name != "right" {
		t.Errorf("expected right, got %v", s)
	}
}

func TestWhichScreen_EmptyTopology(t *testing.T) {
	topo := NewTopology(nil, 0)
	if topo.WhichScreen(types.Point{}) != nil {
		t.Error("empty topology should contain nothing")
	}
	if topo.WrapScreen(types.DirRight, types.Point{}) != nil {
		t.Error("empty topology has no wrap screen")
	}
	if topo.Primary() != nil {
		t.Error("empty topology has no primary screen")
	}
}

func TestScreenInDirection(t *testing.T) {
	topo := makeTestTopology()
	left := topo.ByID(0).Bounds
	right := topo.ByID(1).Bounds
	below := topo.ByID(2).Bounds

	tests := []struct {
		name string
		dir  types.Direction
		from types.Rect
		want string
	}{
		{"right across gap", types.DirRight, left, "right"},
		{"left across gap", types.DirLeft, right, "left"},
		{"down touching", types.DirDown, left, "below"},
		{"up touching", types.DirUp, below, "left"},
		{"nothing left of left", types.DirLeft, left, ""},
		{"nothing right of right", types.DirRight, right, ""},
		{"below does not overlap right vertically", types.DirRight, below, ""},
		{"diagonal prefers horizontal", types.DirRight | types.DirDown, left, "right"},
		{"diagonal falls back to vertical", types.DirLeft | types.DirDown, left, "below"},
		{"none", types.DirNone, left, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := topo.ScreenInDirection(tt.dir, tt.from)
			if tt.want == "" {
				if got != nil {
					t.Errorf("expected no screen, got %s", got.Name)
				}
				return
			}
			if got == nil || got.Name != tt.want {
				t.Errorf("ScreenInDirection(%v) = %v, want %s", tt.dir, got, tt.want)
			}
		})
	}
}

func TestScreenInDirection_Nearest(t *testing.T) {
	// Two candidates to the right; the nearer near-edge wins regardless of order.
	topo := NewTopology([]Screen{
		{Name: "origin", Bounds: types.RectFromSize(0, 0, 100, 100)},
		{Name: "far", Bounds: types.RectFromSize(500, 0, 100, 100)},
		{Name: "near", Bounds: types.RectFromSize(150, 50, 100, 100)},
	}, 0)

	got := topo.ScreenInDirection(types.DirRight, topo.ByID(0).Bounds)
	if got == nil || got.Name != "near" {
		t.Errorf("expected near, got %v", got)
	}
}

func TestScreenInDirection_TieGoesToFirst(t *testing.T) {
	topo := NewTopology([]Screen{
		{Name: "origin", Bounds: types.RectFromSize(0, 0, 100, 200)},
		{Name: "upper", Bounds: types.RectFromSize(100, 0, 100, 100)},
		{Name: "lower", Bounds: types.RectFromSize(100, 100, 100, 100)},
	}, 0)

	got := topo.ScreenInDirection(types.DirRight, topo.ByID(0).Bounds)
	if got == nil || got.Name != "upper" {
		t.Errorf("expected upper, got %v", got)
	}
}

func TestScreenInDirection_DegenerateScreen(t *testing.T) {
	topo := NewTopology([]Screen{
		{Name: "origin", Bounds: types.RectFromSize(0, 0, 100, 100)},
		{Name: "flat", Bounds: types.RectFromSize(100, 0, 0, 100)},
	}, 0)

	if got := topo.ScreenInDirection(types.DirRight, topo.ByID(0).Bounds); got != nil {
		t.Errorf("zero-width screen should never be adjacent, got %s", got.Name)
	}
}

func TestWrapScreen(t *testing.T) {
	// Three screens in a row, the middle one taller.
	//
	//	+----+----+----+
	//	| a  | b  | c  |
	//	+----+    +----+
	//	     |    |
	//	     +----+
	topo := NewTopology([]Screen{
		{Name: "a", Bounds: types.RectFromSize(0, 0, 100, 100)},
		{Name: "b", Bounds: types.RectFromSize(100, 0, 100, 200)},
		{Name: "c", Bounds: types.RectFromSize(200, 0, 100, 100)},
	}, 0)

	tests := []struct {
		name  string
		dir   types.Direction
		point types.Point
		want  string
	}{
		{"right wraps to leftmost", types.DirRight, types.Point{X: 300, Y: 50}, "a"},
		{"left wraps to rightmost", types.DirLeft, types.Point{X: -1, Y: 50}, "c"},
		{"right below a and c wraps to b", types.DirRight, types.Point{X: 200, Y: 150}, "b"},
		{"down wraps to topmost", types.DirDown, types.Point{X: 150, Y: 200}, "b"},
		{"up wraps to bottommost", types.DirUp, types.Point{X: 150, Y: -1}, "b"},
		{"no perpendicular match falls back to first", types.DirRight, types.Point{X: 300, Y: 500}, "a"},
		{"diagonal uses horizontal", types.DirLeft | types.DirDown, types.Point{X: -1, Y: 50}, "c"},
		{"none falls back to first", types.DirNone, types.Point{X: 50, Y: 50}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := topo.WrapScreen(tt.dir, tt.point)
			if got == nil {
				t.Fatal("WrapScreen must never return nil for a non-empty topology")
			}
			if got.Name != tt.want {
				t.Errorf("WrapScreen(%v, %v) = %s, want %s", tt.dir, tt.point, got.Name, tt.want)
			}
		})
	}
}

func TestScreenScale(t *testing.T) {
	s := Screen{DPI: 144}
	if got := s.Scale(); got != 1.5 {
		t.Errorf("Scale() = %v, want 1.5", got)
	}
}
