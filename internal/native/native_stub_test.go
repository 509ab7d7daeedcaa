//go:build !windows

package native

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/edgejump/internal/engine"
	"github.com/yourusername/edgejump/internal/types"
)

var (
	_ engine.ScreenSource     = (*Adapter)(nil)
	_ engine.CursorController = (*Adapter)(nil)
)

func TestStubReturnsErrUnsupported(t *testing.T) {
	a := New(0)
	ctx := context.Background()

	if a.referenceDPI != 96 {
		t.Errorf("referenceDPI = %d, want 96", a.referenceDPI)
	}
	if _, err := a.Screens(ctx); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Screens() error = %v", err)
	}
	if _, err := a.CursorPos(ctx); !errors.Is(err, ErrUnsupported) {
		t.Errorf("CursorPos() error = %v", err)
	}
	if err := a.SetCursorPos(ctx, types.Point{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetCursorPos() error = %v", err)
	}
	if err := EnablePerMonitorDPI(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("EnablePerMonitorDPI() error = %v", err)
	}
}
