//go:build !windows

package native

import (
	"context"

	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/types"
)

// EnablePerMonitorDPI returns ErrUnsupported on non-Windows platforms.
func EnablePerMonitorDPI() error {
	return ErrUnsupported
}

// Screens returns ErrUnsupported on non-Windows platforms.
func (a *Adapter) Screens(ctx context.Context) ([]screen.Screen, error) {
	return nil, ErrUnsupported
}

// CursorPos returns ErrUnsupported on non-Windows platforms.
func (a *Adapter) CursorPos(ctx context.Context) (types.Point, error) {
	return types.Point{}, ErrUnsupported
}

// SetCursorPos returns ErrUnsupported on non-Windows platforms.
func (a *Adapter) SetCursorPos(ctx context.Context, p types.Point) error {
	return ErrUnsupported
}
