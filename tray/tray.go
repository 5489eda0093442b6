// Package tray owns the system tray menu for gui mode.
package tray

import (
	"log"

	"github.com/getlantern/systray"
)

// Callbacks connect the menu items to the overlay manager. Nil callbacks
// disable the corresponding item.
type Callbacks struct {
	ToggleClickThrough func() (bool, error)
	SetAlwaysOnTop     func(enabled bool) error
	ClearOverlays      func()
	OnQuit             func()
}

// Run starts the systray loop. Blocks; must run on the main goroutine on
// platforms that require it.
func Run(cb Callbacks) {
	systray.Run(func() { onReady(cb) }, func() {
		if cb.OnQuit != nil {
			cb.OnQuit()
		}
	})
}

// Quit asks the systray loop to exit, which unblocks Run.
func Quit() {
	systray.Quit()
}

func onReady(cb Callbacks) {
	systray.SetTitle("Subs Overlay")
	systray.SetTooltip("Subtitle overlay manager")

	mClickThrough := systray.AddMenuItemCheckbox("Click-through", "Let mouse clicks pass through overlays", true)
	mAlwaysOnTop := systray.AddMenuItemCheckbox("Always on top", "Keep overlays above every window", true)
	systray.AddSeparator()
	mClear := systray.AddMenuItem("Clear overlays", "Remove all overlays")
	mQuit := systray.AddMenuItem("Quit", "Quit the application")

	go func() {
		for {
			select {
			case <-mClickThrough.ClickedCh:
				if cb.ToggleClickThrough == nil {
					continue
				}
				enabled, err := cb.ToggleClickThrough()
				if err != nil {
					log.Printf("tray: toggle click-through failed: %v", err)
					continue
				}
				if enabled {
					mClickThrough.Check()
				} else {
					mClickThrough.Uncheck()
				}
			case <-mAlwaysOnTop.ClickedCh:
				if cb.SetAlwaysOnTop == nil {
					continue
				}
				enabled := !mAlwaysOnTop.Checked()
				if err := cb.SetAlwaysOnTop(enabled); err != nil {
					log.Printf("tray: always-on-top failed: %v", err)
					continue
				}
				if enabled {
					mAlwaysOnTop.Check()
				} else {
					mAlwaysOnTop.Uncheck()
				}
			case <-mClear.ClickedCh:
				if cb.ClearOverlays != nil {
					cb.ClearOverlays()
				}
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}
