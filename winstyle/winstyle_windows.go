//go:build windows

package winstyle

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

const (
	gwlExStyle      = -20
	wsExTransparent = 0x00000020
	wsExLayered     = 0x00080000

	lwaAlpha = 0x00000002

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var (
	hwndTopmost   = ^uintptr(0) // -1
	hwndNoTopmost = ^uintptr(1) // -2
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongW             = user32.NewProc("GetWindowLongW")
	procSetWindowLongW             = user32.NewProc("SetWindowLongW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
)

var errNullHandle = errors.New("winstyle: null window handle")

type winStyler struct{}

func newStyler() Styler { return winStyler{} }

func getExStyle(h Handle) int32 {
	style, _, _ := procGetWindowLongW.Call(uintptr(h), uintptr(int32(gwlExStyle)))
	return int32(style)
}

func setExStyle(h Handle, style int32) {
	procSetWindowLongW.Call(uintptr(h), uintptr(int32(gwlExStyle)), uintptr(style))
}

func (winStyler) SetLayered(h Handle) error {
	if h == 0 {
		return errNullHandle
	}
	setExStyle(h, getExStyle(h)|wsExLayered)
	return nil
}

func (winStyler) SetClickThrough(h Handle, enabled bool) error {
	if h == 0 {
		return errNullHandle
	}
	style := getExStyle(h) | wsExLayered
	if enabled {
		style |= wsExTransparent
	} else {
		style &^= wsExTransparent
	}
	setExStyle(h, style)
	return nil
}

func (winStyler) SetLayerAlpha(h Handle, alpha uint8) error {
	if h == 0 {
		return errNullHandle
	}
	// The layered bit must be present before alpha takes effect.
	if style := getExStyle(h); style&wsExLayered == 0 {
		setExStyle(h, style|wsExLayered)
	}
	ret, _, err := procSetLayeredWindowAttributes.Call(
		uintptr(h), 0, uintptr(alpha), lwaAlpha)
	if ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes: %w", err)
	}
	return nil
}

func (winStyler) SetTopmost(h Handle, enabled bool) error {
	if h == 0 {
		return errNullHandle
	}
	insertAfter := hwndTopmost
	if !enabled {
		insertAfter = hwndNoTopmost
	}
	ret, _, err := procSetWindowPos.Call(
		uintptr(h), insertAfter, 0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoActivate)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}

func (winStyler) SetPosition(h Handle, x, y int) error {
	if h == 0 {
		return errNullHandle
	}
	ret, _, err := procSetWindowPos.Call(
		uintptr(h), 0, uintptr(int32(x)), uintptr(int32(y)), 0, 0,
		swpNoSize|swpNoZOrder|swpNoActivate)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}
