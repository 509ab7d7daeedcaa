package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/types"
)

// VisualizationOptions controls the appearance of the desktop diagram
type VisualizationOptions struct {
	UseUnicode bool
	MaxWidth   int
	MaxHeight  int
}

// Mark is a point highlighted on the diagram, e.g. the cursor
type Mark struct {
	Point types.Point
	Rune  rune
}

// DefaultVisualizationOptions sizes the diagram to the terminal
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	// Leave room for the prompt and the legend
	if height > 6 {
		height -= 4
	}
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		MaxWidth:   width,
		MaxHeight:  height,
	}
}

// RenderTopology draws every screen of topo as a labelled box, then the marks.
func RenderTopology(topo *screen.Topology, opts VisualizationOptions, marks ...Mark) *Canvas {
	canvas := NewCanvas(opts.MaxWidth, opts.MaxHeight, opts.UseUnicode)
	canvas.Box(0, 0, opts.MaxWidth, opts.MaxHeight)
	if topo == nil || topo.Len() == 0 {
		canvas.Text(border, border, "no screens", opts.MaxWidth-2*border)
		return canvas
	}

	sc := NewScalingContext(topo.Bounds(), opts.MaxWidth, opts.MaxHeight)
	for _, s := range topo.Screens() {
		x, y, w, h := sc.RectToTerminal(s.Bounds)
		canvas.Box(x, y, w, h)

		for i, line := range screenLabel(s) {
			if i+1 >= h-1 {
				break
			}
			canvas.Text(x+1, y+1+i, line, w-2)
		}
	}

	for _, m := range marks {
		x, y := sc.PixelToTerminal(m.Point)
		canvas.Set(x, y, m.Rune)
	}
	return canvas
}

func screenLabel(s *screen.Screen) []string {
	name := s.Name
	if name == "" {
		name = fmt.Sprintf("#%d", s.ID)
	}
	info := fmt.Sprintf("%ddpi", s.DPI)
	if s.Primary {
		info += " main"
	}
	return []string{
		fmt.Sprintf("%s %dx%d", name, s.Bounds.Width(), s.Bounds.Height()),
		info,
	}
}

// getTerminalSize returns the current terminal dimensions
func getTerminalSize() (width, height int) {
	width, height, err := terminalSize(os.Stdout)
	if err != nil || width <= 0 || height <= 0 {
		// Default to 80x24 if we can't detect
		return 80, 24
	}
	return width, height
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	// Check LANG and LC_ALL environment variables
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")

	return strings.Contains(lang, "UTF-8") || strings.Contains(lcAll, "UTF-8")
}

// PrintTopology writes a colored diagram of topo to w
func PrintTopology(w io.Writer, topo *screen.Topology, opts VisualizationOptions, marks ...Mark) {
	result := RenderTopology(topo, opts, marks...).String()

	if color.NoColor {
		fmt.Fprintln(w, result)
		return
	}
	color.New(color.FgCyan).Fprintln(w, result)
}
