package output

import (
	"strings"
)

// BoxStyle defines the character set for drawing boxes
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

var (
	// ASCIIStyle uses simple ASCII characters for box drawing
	ASCIIStyle = BoxStyle{'+', '+', '+', '+', '-', '|'}

	// UnicodeStyle uses Unicode box drawing characters
	UnicodeStyle = BoxStyle{'┌', '┐', '└', '┘', '─', '│'}
)

// Canvas is a 2D character buffer
type Canvas struct {
	Width  int
	Height int
	cells  [][]rune
	style  BoxStyle
}

// NewCanvas creates a blank canvas
func NewCanvas(width, height int, useUnicode bool) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", width))
	}

	style := ASCIIStyle
	if useUnicode {
		style = UnicodeStyle
	}
	return &Canvas{Width: width, Height: height, cells: cells, style: style}
}

// Set writes r at (x, y); out-of-range writes are dropped
func (c *Canvas) Set(x, y int, r rune) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.cells[y][x] = r
	}
}

// At returns the character at (x, y), or a space outside the canvas
func (c *Canvas) At(x, y int) rune {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		return c.cells[y][x]
	}
	return ' '
}

// Box draws a w by h outline with its top-left corner at (x, y)
func (c *Canvas) Box(x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1

	for i := x + 1; i < right; i++ {
		c.Set(i, y, c.style.Horizontal)
		c.Set(i, bottom, c.style.Horizontal)
	}
	for j := y + 1; j < bottom; j++ {
		c.Set(x, j, c.style.Vertical)
		c.Set(right, j, c.style.Vertical)
	}

	c.Set(x, y, c.style.TopLeft)
	c.Set(right, y, c.style.TopRight)
	c.Set(x, bottom, c.style.BottomLeft)
	c.Set(right, bottom, c.style.BottomRight)
}

// Text writes s starting at (x, y), cut at maxLen runes when maxLen > 0
func (c *Canvas) Text(x, y int, s string, maxLen int) {
	i := 0
	for _, r := range s {
		if maxLen > 0 && i >= maxLen {
			return
		}
		c.Set(x+i, y, r)
		i++
	}
}

// String renders the canvas, one line per row
func (c *Canvas) String() string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
