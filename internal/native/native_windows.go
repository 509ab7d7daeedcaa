//go:build windows

package native

import (
	"context"
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/types"
)

var (
	shcore                  = windows.NewLazySystemDLL("shcore.dll")
	procGetDpiForMonitor    = shcore.NewProc("GetDpiForMonitor")
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetDpiAwarenessCtx  = user32.NewProc("SetProcessDpiAwarenessContext")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
)

// Windows never frees callbacks, so there is exactly one. enumMu serializes
// enumerations and guards enumTarget.
var (
	enumCallback = syscall.NewCallback(enumProc)
	enumMu       sync.Mutex
	enumTarget   *enumState
)

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is (HANDLE)(-4)
var dpiAwarenessPerMonitorV2 = ^uintptr(3)

const mdtEffectiveDPI = 0

// EnablePerMonitorDPI makes the process see physical pixels on every screen.
// Call it before the first Screens.
func EnablePerMonitorDPI() error {
	if procSetDpiAwarenessCtx.Find() != nil {
		return fmt.Errorf("SetProcessDpiAwarenessContext not found")
	}
	if r, _, _ := procSetDpiAwarenessCtx.Call(dpiAwarenessPerMonitorV2); r == 0 {
		return fmt.Errorf("SetProcessDpiAwarenessContext failed")
	}
	return nil
}

// EffectiveDPI returns the monitor's effective DPI. ok is false when
// GetDpiForMonitor is unavailable (before Windows 8.1) or fails.
func EffectiveDPI(hMonitor win.HMONITOR) (dpi int, ok bool) {
	if procGetDpiForMonitor.Find() != nil {
		return 0, false
	}
	var dx, dy uint32
	r, _, _ := procGetDpiForMonitor.Call(uintptr(hMonitor), mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dx)), uintptr(unsafe.Pointer(&dy)))
	if r != 0 || dx == 0 {
		return 0, false
	}
	return int(dx), true
}

// Screens enumerates the attached monitors
func (a *Adapter) Screens(ctx context.Context) ([]screen.Screen, error) {
	state := &enumState{referenceDPI: a.referenceDPI}

	enumMu.Lock()
	enumTarget = state
	r, _, callErr := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	enumTarget = nil
	enumMu.Unlock()

	if r == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", callErr)
	}
	if len(state.list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return state.list, nil
}

type enumState struct {
	list         []screen.Screen
	referenceDPI int
}

// enumProc is the MONITORENUMPROC; it appends to enumTarget
func enumProc(hMonitor, hdc, rect, lparam uintptr) uintptr {
	s := enumTarget
	if s == nil {
		return 0
	}
	s.add(win.HMONITOR(hMonitor))
	return 1
}

func (s *enumState) add(hMonitor win.HMONITOR) {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return
	}

	dpi, ok := EffectiveDPI(hMonitor)
	if !ok {
		dpi = s.referenceDPI
	}

	s.list = append(s.list, screen.Screen{
		Name:     fmt.Sprintf("monitor%d", len(s.list)+1),
		Bounds:   toRect(info.RcMonitor),
		WorkArea: toRect(info.RcWork),
		DPI:      dpi,
		Primary:  info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
}

// CursorPos returns the OS cursor position
func (a *Adapter) CursorPos(ctx context.Context) (types.Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return types.Point{}, fmt.Errorf("GetCursorPos failed: %w", syscall.GetLastError())
	}
	return types.Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

// SetCursorPos moves the OS cursor
func (a *Adapter) SetCursorPos(ctx context.Context, p types.Point) error {
	if !win.SetCursorPos(int32(p.X), int32(p.Y)) {
		return fmt.Errorf("SetCursorPos(%d,%d) failed: %w", p.X, p.Y, syscall.GetLastError())
	}
	return nil
}

func toRect(r win.RECT) types.Rect {
	return types.Rect{
		Left:   int(r.Left),
		Top:    int(r.Top),
		Right:  int(r.Right),
		Bottom: int(r.Bottom),
	}
}
