//go:build !windows

package gui

import "subs-overlay/winstyle"

// Extended window styles are a Windows concept; elsewhere there is no
// native handle to style and the Manager skips style application.
func (w *window) NativeHandle() winstyle.Handle {
	return 0
}
