package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yourusername/edgejump/internal/engine"
	"github.com/yourusername/edgejump/internal/relocate"
	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/types"
)

// Two 1920x1080 screens side by side on a 44x16 terminal:
//
//	+------------------------------------------+
//	| +------------------++------------------+ |
//	| |a 1920x1080       ||b 1920x1080       | |
//	| |96dpi main        ||144dpi            | |
//	| +------------------++------------------+ |
//	+------------------------------------------+
func sideBySide() *screen.Topology {
	return screen.NewTopology([]screen.Screen{
		{Name: "a", Bounds: types.RectFromSize(0, 0, 1920, 1080), Primary: true},
		{Name: "b", Bounds: types.RectFromSize(1920, 0, 1920, 1080), DPI: 144},
	}, 96)
}

func TestRenderTopology(t *testing.T) {
	opts := VisualizationOptions{MaxWidth: 44, MaxHeight: 16}
	canvas := RenderTopology(sideBySide(), opts, Mark{Point: types.Point{X: 1919, Y: 500}, Rune: '*'})

	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '+'},   // outer border
		{43, 15, '+'}, // outer border
		{2, 2, '+'},   // a top-left
		{21, 2, '+'},  // a top-right
		{22, 2, '+'},  // b top-left, adjacent to a
		{41, 6, '+'},  // b bottom-right
		{2, 4, '|'},   // a left edge
	}
	for _, c := range corners {
		if got := canvas.At(c.x, c.y); got != c.want {
			t.Errorf("At(%d,%d) = %q, want %q\n%s", c.x, c.y, got, c.want, canvas)
		}
	}

	if got := canvas.At(21, 4); got != '*' {
		t.Errorf("cursor mark At(21,4) = %q, want '*'", got)
	}

	out := canvas.String()
	for _, want := range []string{"a 1920x1080", "b 1920x1080", "96dpi main", "144dpi"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTopology_Empty(t *testing.T) {
	out := RenderTopology(nil, VisualizationOptions{MaxWidth: 30, MaxHeight: 6}).String()
	if !strings.Contains(out, "no screens") {
		t.Errorf("empty diagram = %q", out)
	}
}

func TestScalingContext_HeightLimited(t *testing.T) {
	// A tall portrait screen on a wide terminal is limited by height
	bounds := types.RectFromSize(0, 0, 1080, 1920)
	sc := NewScalingContext(bounds, 100, 14)

	_, _, w, h := sc.RectToTerminal(bounds)
	if h != 10 {
		t.Errorf("height = %d, want the full 10 available rows", h)
	}
	// 1080 * 20 / 1920 = 11 columns
	if w != 11 {
		t.Errorf("width = %d, want 11", w)
	}
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(6, 1, true)
	c.Text(1, 0, "héllo world", 4)
	if got := c.String(); got != " héll" {
		t.Errorf("String() = %q, want %q", got, " héll")
	}

	c.Set(-1, 0, 'x')
	c.Set(6, 0, 'x')
	if c.At(-1, 0) != ' ' || c.At(99, 99) != ' ' {
		t.Error("out-of-range access should be ignored")
	}
}

func TestPrintTables(t *testing.T) {
	var buf bytes.Buffer
	PrintScreensTable(&buf, sideBySide())
	for _, want := range []string{"1920x1080@(1920,0)", "1.50x", "yes"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("screens table missing %q:\n%s", want, buf.String())
		}
	}

	want := types.Point{X: 1921, Y: 600}
	rows := []DecisionRow{
		{
			Index:    0,
			Sample:   engine.Sample{Kind: engine.KindMove, Mouse: types.Point{X: 1921, Y: 400}, Cursor: types.Point{X: 1919, Y: 400}},
			Decision: relocate.Decision{Moved: true, Position: want, Action: relocate.ActionUnstick},
			Expect:   &want,
		},
		{
			Index:    1,
			Sample:   engine.Sample{Kind: engine.KindMove},
			Decision: relocate.Decline(relocate.ActionNone, relocate.ReasonNotStuck),
			Expect:   &want,
		},
	}
	if !rows[0].Matches() || rows[1].Matches() {
		t.Errorf("Matches() = %v, %v; want true, false", rows[0].Matches(), rows[1].Matches())
	}

	buf.Reset()
	PrintDecisionsTable(&buf, rows)
	for _, want := range []string{"-> (1921,600)", "unstick", "not-stuck", "want (1921,600)"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("decisions table missing %q:\n%s", want, buf.String())
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"a very long screen name", 10, "a very ..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
