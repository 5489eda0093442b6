// Package winstyle manipulates native window style flags: the layered bit
// required for transparency, the click-through bit that lets input fall
// through to windows beneath, layer alpha, z-order and screen position.
// A real implementation exists for Windows; everywhere else every call
// reports ErrUnsupported so callers can warn instead of silently claiming
// success.
package winstyle

import "errors"

// Handle is a native platform window handle (HWND on Windows). Zero means
// no handle is available.
type Handle uintptr

// ErrUnsupported is returned on platforms without native style support.
var ErrUnsupported = errors.New("winstyle: not supported on this platform")

// Styler applies OS-level style flags to a native window.
type Styler interface {
	// SetLayered adds the layered style bit, a precondition for any
	// transparency or alpha effect.
	SetLayered(h Handle) error
	// SetClickThrough toggles the style bit that makes input events pass
	// to whatever is beneath the window. Enabling implies layered.
	SetClickThrough(h Handle, enabled bool) error
	// SetLayerAlpha sets whole-window alpha, 0 (invisible) to 255 (opaque).
	SetLayerAlpha(h Handle, alpha uint8) error
	// SetTopmost pins the window above normal windows, or unpins it.
	SetTopmost(h Handle, enabled bool) error
	// SetPosition moves the window to screen coordinates (x, y).
	SetPosition(h Handle, x, y int) error
}

// New returns the platform Styler. Implementation is provided in a
// platform-specific file.
func New() Styler { return newStyler() }
