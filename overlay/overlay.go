// Package overlay manages transparent, always-on-top, optionally
// click-through text windows. The Manager is the public API: it owns the
// registry of overlay records, funnels every window mutation through the
// UI-thread dispatcher and applies native style flags via winstyle.
package overlay

import (
	"subs-overlay/display"
	"subs-overlay/winstyle"
)

// TextConfig describes the text shown by an overlay.
type TextConfig struct {
	Content  string  `json:"content"`
	FontSize float32 `json:"font_size"`
	// Color is a hex color string, e.g. "#FFFFFFFF" (AARRGGBB) or "#FFF".
	Color string `json:"color"`
	// X, Y is the overlay position in virtual-screen coordinates.
	X int `json:"x"`
	Y int `json:"y"`
}

// Config is the full overlay configuration.
type Config struct {
	Text        TextConfig `json:"text"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Transparent bool       `json:"transparent"`
	AlwaysOnTop bool       `json:"always_on_top"`
	IgnoreInput bool       `json:"ignore_input"`
}

// Update is a partial configuration change. Nil fields are left untouched.
type Update struct {
	Text     *string  `json:"text,omitempty"`
	FontSize *float32 `json:"font_size,omitempty"`
	Color    *string  `json:"color,omitempty"`
	X        *int     `json:"x,omitempty"`
	Y        *int     `json:"y,omitempty"`
	Width    *int     `json:"width,omitempty"`
	Height   *int     `json:"height,omitempty"`

	Transparent *bool `json:"transparent,omitempty"`
	AlwaysOnTop *bool `json:"always_on_top,omitempty"`
	IgnoreInput *bool `json:"ignore_input,omitempty"`
}

// Window is one live native overlay window. Implementations are confined to
// the UI thread: the Manager calls these methods only from dispatched
// closures, and so must everyone else.
type Window interface {
	SetText(text string)
	Text() string
	SetFontSize(size float32)
	// SetColor takes a packed 0xAARRGGBB value.
	SetColor(argb uint32)
	Resize(width, height int)
	Show()
	Hide()
	Close()
	// NativeHandle returns the platform handle for winstyle calls, or zero
	// when none is available.
	NativeHandle() winstyle.Handle
}

// WindowFactory constructs windows. New is called on the UI thread.
type WindowFactory interface {
	New(cfg Config) (Window, error)
}

// Status is a snapshot of global overlay state.
type Status struct {
	ClickThrough bool `json:"click_through_enabled"`
	AlwaysOnTop  bool `json:"always_on_top"`
	OverlayCount int  `json:"overlay_count"`
	// Displays lists the active display bounds, when known.
	Displays []display.Bounds `json:"displays,omitempty"`
}
