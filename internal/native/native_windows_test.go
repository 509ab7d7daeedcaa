//go:build windows

package native

import (
	"context"
	"testing"

	"github.com/yourusername/edgejump/internal/engine"
)

var (
	_ engine.ScreenSource     = (*Adapter)(nil)
	_ engine.CursorController = (*Adapter)(nil)
)

func TestEnumProcWithoutTarget(t *testing.T) {
	if r := enumProc(0, 0, 0, 0); r != 0 {
		t.Errorf("enumProc() with no target = %d, want 0 to stop enumeration", r)
	}
}

// Repeated enumerations share one callback
func TestScreensRepeated(t *testing.T) {
	a := New(0)
	for i := 0; i < 3; i++ {
		screens, err := a.Screens(context.Background())
		if err != nil {
			t.Skipf("no monitors on this host: %v", err)
		}
		for _, s := range screens {
			if s.DPI <= 0 {
				t.Errorf("%s DPI = %d, want > 0", s.Name, s.DPI)
			}
		}
	}
	if enumTarget != nil {
		t.Error("enumTarget should be cleared after Screens")
	}
}
