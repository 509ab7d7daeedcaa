package platform

import (
	"fmt"
	"math"

	"github.com/yourusername/edgejump/internal/engine"
	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/types"
)

// parseDisplays extracts the screens from a displays.list result
func parseDisplays(raw map[string]interface{}) ([]screen.Screen, error) {
	displays, ok := raw["displays"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("missing displays in result")
	}

	screens := make([]screen.Screen, 0, len(displays))
	for i, d := range displays {
		display, ok := d.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("display %d: not an object", i)
		}

		// An empty frame is kept; the topology never matches it
		frame, ok := parseFrame(display["frame"])
		if !ok {
			return nil, fmt.Errorf("display %d: missing frame", i)
		}

		s := screen.Screen{
			Name:    toString(display["name"]),
			Bounds:  frame,
			DPI:     toInt(display["dpi"]),
			Primary: toBool(display["isMain"]),
		}
		if s.Name == "" {
			s.Name = toString(display["id"])
		}

		// workArea excludes taskbar/dock; older helpers call it visibleFrame
		if wa, ok := parseFrame(display["workArea"]); ok {
			s.WorkArea = wa
		} else if wa, ok := parseFrame(display["visibleFrame"]); ok {
			s.WorkArea = wa
		}

		screens = append(screens, s)
	}
	return screens, nil
}

// parsePoint reads {x, y} from a result or event payload
func parsePoint(raw map[string]interface{}, xKey, yKey string) (types.Point, bool) {
	if raw == nil {
		return types.Point{}, false
	}
	if _, ok := raw[xKey]; !ok {
		return types.Point{}, false
	}
	if _, ok := raw[yKey]; !ok {
		return types.Point{}, false
	}
	return types.Point{X: toInt(raw[xKey]), Y: toInt(raw[yKey])}, true
}

// parseMouseEvent converts an input.mouse payload into a sequence number and sample
func parseMouseEvent(data map[string]interface{}) (uint64, engine.Sample, error) {
	mouse, ok := parsePoint(data, "x", "y")
	if !ok {
		return 0, engine.Sample{}, fmt.Errorf("input.mouse: missing x/y")
	}
	cursor, ok := parsePoint(data, "cursorX", "cursorY")
	if !ok {
		return 0, engine.Sample{}, fmt.Errorf("input.mouse: missing cursorX/cursorY")
	}

	kind := engine.Kind(toString(data["kind"]))
	if kind == "" {
		kind = engine.KindMove
	}

	return uint64(toInt(data["seq"])), engine.Sample{Kind: kind, Mouse: mouse, Cursor: cursor}, nil
}

// parseFrame accepts {x, y, width, height} or [[x, y], [width, height]]
func parseFrame(frame interface{}) (types.Rect, bool) {
	if frame == nil {
		return types.Rect{}, false
	}

	// Try object format: {x, y, width, height}
	if obj, ok := frame.(map[string]interface{}); ok {
		return types.RectFromSize(
			toInt(obj["x"]),
			toInt(obj["y"]),
			toInt(obj["width"]),
			toInt(obj["height"]),
		), true
	}

	// Try array format: [[x, y], [width, height]]
	if arr, ok := frame.([]interface{}); ok && len(arr) == 2 {
		origin, okOrigin := arr[0].([]interface{})
		size, okSize := arr[1].([]interface{})

		if okOrigin && okSize && len(origin) >= 2 && len(size) >= 2 {
			return types.RectFromSize(
				toInt(origin[0]),
				toInt(origin[1]),
				toInt(size[0]),
				toInt(size[1]),
			), true
		}
	}

	return types.Rect{}, false
}

// Type conversion helpers

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	default:
		return 0
	}
}

// toInt rounds to the nearest pixel; helpers on scaled displays report
// fractional coordinates
func toInt(v interface{}) int {
	return int(math.Round(toFloat64(v)))
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func toBool(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}
