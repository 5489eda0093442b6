//go:build windows

package gui

import (
	"fyne.io/fyne/v2/driver"

	"subs-overlay/winstyle"
)

// NativeHandle digs the HWND out of the Fyne window. Must run on the UI
// thread; RunNative executes the callback synchronously there.
func (w *window) NativeHandle() winstyle.Handle {
	nw, ok := w.win.(driver.NativeWindow)
	if !ok {
		return 0
	}
	var h winstyle.Handle
	nw.RunNative(func(ctx any) {
		if wc, ok := ctx.(driver.WindowsWindowContext); ok {
			h = winstyle.Handle(wc.HWND)
		}
	})
	return h
}
