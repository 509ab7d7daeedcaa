// Package native reads screens and moves the cursor through the OS directly,
// without the input helper. Only Windows is supported.
package native

import "errors"

// ErrUnsupported is returned on platforms without a native backend
var ErrUnsupported = errors.New("native backend is only supported on Windows")

// Adapter implements engine.ScreenSource and engine.CursorController
type Adapter struct {
	referenceDPI int
}

// New creates an adapter. Screens whose DPI cannot be queried get
// referenceDPI.
func New(referenceDPI int) *Adapter {
	if referenceDPI <= 0 {
		referenceDPI = 96
	}
	return &Adapter{referenceDPI: referenceDPI}
}
