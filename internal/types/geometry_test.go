package types

import "testing"

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want Point
	}{
		{
			name: "origin rect",
			rect: RectFromSize(0, 0, 100, 100),
			want: Point{X: 50, Y: 50},
		},
		{
			name: "offset rect",
			rect: RectFromSize(100, 200, 50, 80),
			want: Point{X: 125, Y: 240},
		},
		{
			name: "zero size",
			rect: RectFromSize(10, 20, 0, 0),
			want: Point{X: 10, Y: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Center(); got != tt.want {
				t.Errorf("Center() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	rect := RectFromSize(0, 0, 100, 100)

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"center point", Point{X: 50, Y: 50}, true},
		{"top-left corner", Point{X: 0, Y: 0}, true},
		{"last pixel", Point{X: 99, Y: 99}, true},
		{"right edge is exclusive", Point{X: 100, Y: 50}, false},
		{"bottom edge is exclusive", Point{X: 50, Y: 100}, false},
		{"outside left", Point{X: -1, Y: 50}, false},
		{"outside top", Point{X: 50, Y: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestRectContains_Degenerate(t *testing.T) {
	rect := RectFromSize(10, 10, 0, 50)
	if rect.Contains(Point{X: 10, Y: 20}) {
		t.Error("zero-width rect should contain nothing")
	}
	full := RectFromSize(0, 0, 100, 100)
	if rect.OverlapsVertically(full) || full.OverlapsVertically(rect) {
		t.Error("zero-width rect should overlap no rows")
	}
	if rect.OverlapsHorizontally(full) || full.OverlapsHorizontally(rect) {
		t.Error("zero-width rect should overlap no columns")
	}
	flat := RectFromSize(0, 50, 100, 0)
	if flat.OverlapsHorizontally(full) || flat.OverlapsVertically(full) {
		t.Error("zero-height rect should overlap nothing")
	}
}

func TestRectOutsideDirection(t *testing.T) {
	rect := RectFromSize(0, 0, 1920, 1080)

	tests := []struct {
		name  string
		point Point
		want  Direction
	}{
		{"inside", Point{X: 500, Y: 500}, DirNone},
		{"left", Point{X: -1, Y: 500}, DirLeft},
		{"right", Point{X: 1920, Y: 500}, DirRight},
		{"up", Point{X: 500, Y: -3}, DirUp},
		{"down", Point{X: 500, Y: 1080}, DirDown},
		{"right and down", Point{X: 1925, Y: 1090}, DirRight | DirDown},
		{"left and up", Point{X: -1, Y: -1}, DirLeft | DirUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.OutsideDirection(tt.point); got != tt.want {
				t.Errorf("OutsideDirection(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestRectOutsideDistance(t *testing.T) {
	rect := RectFromSize(0, 0, 100, 100)

	tests := []struct {
		point Point
		want  int
	}{
		{Point{X: 50, Y: 50}, 0},
		{Point{X: 100, Y: 50}, 1},
		{Point{X: -5, Y: 50}, 5},
		{Point{X: 105, Y: 130}, 31},
		{Point{X: -2, Y: -7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.point.String(), func(t *testing.T) {
			if got := rect.OutsideDistance(tt.point); got != tt.want {
				t.Errorf("OutsideDistance(%v) = %d, want %d", tt.point, got, tt.want)
			}
		})
	}
}

func TestRectClosestBoundaryPoint(t *testing.T) {
	rect := RectFromSize(1920, 0, 1280, 1024)

	tests := []struct {
		name  string
		point Point
		want  Point
	}{
		{"inside is unchanged", Point{X: 2000, Y: 500}, Point{X: 2000, Y: 500}},
		{"left of rect", Point{X: 1900, Y: 500}, Point{X: 1920, Y: 500}},
		{"right of rect", Point{X: 4000, Y: 500}, Point{X: 3199, Y: 500}},
		{"below rect", Point{X: 2000, Y: 1200}, Point{X: 2000, Y: 1023}},
		{"corner", Point{X: 0, Y: -50}, Point{X: 1920, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rect.ClosestBoundaryPoint(tt.point)
			if got != tt.want {
				t.Fatalf("ClosestBoundaryPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
			if again := rect.ClosestBoundaryPoint(got); again != got {
				t.Errorf("ClosestBoundaryPoint is not idempotent: %v then %v", got, again)
			}
			if !rect.Contains(got) {
				t.Errorf("ClosestBoundaryPoint(%v) = %v lies outside %v", tt.point, got, rect)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := RectFromSize(0, 0, 1920, 1080)
	b := RectFromSize(-1280, 200, 1280, 1024)

	got := a.Union(b)
	want := Rect{Left: -1280, Top: 0, Right: 1920, Bottom: 1224}
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if u := (Rect{}).Union(a); u != a {
		t.Errorf("empty.Union(a) = %+v, want %+v", u, a)
	}
}

func TestDirectionPrimary(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{DirNone, DirNone},
		{DirLeft, DirLeft},
		{DirDown, DirDown},
		{DirRight | DirDown, DirRight},
		{DirLeft | DirUp, DirLeft},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Primary(); got != tt.want {
				t.Errorf("Primary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirNone, "none"},
		{DirLeft, "left"},
		{DirRight, "right"},
		{DirUp, "up"},
		{DirDown, "down"},
		{DirRight | DirDown, "right+down"},
		{Direction(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.dir.String(); got != tt.want {
				t.Errorf("Direction.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input  string
		want   Direction
		wantOK bool
	}{
		{"left", DirLeft, true},
		{"RIGHT", DirRight, true},
		{" up ", DirUp, true},
		{"down", DirDown, true},
		{"left+up", DirLeft | DirUp, true},
		{"none", DirNone, true},
		{"left+right", DirNone, false},
		{"invalid", DirNone, false},
		{"", DirNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDirection(tt.input)
			if ok != tt.wantOK {
				t.Errorf("ParseDirection(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
