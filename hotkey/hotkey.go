package hotkey

import (
	"log"
	"strings"

	gohook "github.com/robotn/gohook"
)

// Binding maps one key combination to a callback. Combos look like
// "Ctrl+Alt+T"; supported modifiers are ctrl, alt, shift and win/cmd/super.
type Binding struct {
	Combo    string
	Callback func()
}

type chord struct {
	ctrl, alt, shift, meta bool
	raw                    uint16
}

// Listen starts the global keyboard hook and fires bindings on their
// combinations. Call once; the hook library supports a single event loop
// per process.
func Listen(bindings []Binding) {
	chords := make([]chord, 0, len(bindings))
	callbacks := make([]func(), 0, len(bindings))
	for _, b := range bindings {
		c, ok := parseCombo(b.Combo)
		if !ok {
			log.Printf("hotkey: ignoring unparseable combo %q", b.Combo)
			continue
		}
		log.Printf("hotkey: registered %q", b.Combo)
		chords = append(chords, c)
		callbacks = append(callbacks, b.Callback)
	}
	if len(chords) == 0 {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in hotkey goroutine: %v", r)
			}
		}()

		evChan := gohook.Start()
		if evChan == nil {
			log.Printf("ERROR: gohook.Start() returned nil channel")
			return
		}

		// Track modifier states across events
		var ctrlPressed, altPressed, shiftPressed, metaPressed bool

		for ev := range evChan {
			if ev.Kind != gohook.KeyDown && ev.Kind != gohook.KeyUp {
				continue
			}
			down := ev.Kind == gohook.KeyDown
			switch ev.Rawcode {
			case 162, 163: // Left/Right Ctrl
				ctrlPressed = down
				continue
			case 164, 165: // Left/Right Alt
				altPressed = down
				continue
			case 160, 161: // Left/Right Shift
				shiftPressed = down
				continue
			case 91, 92: // Left/Right Win
				metaPressed = down
				continue
			}
			if !down {
				continue
			}
			for i, c := range chords {
				if ev.Rawcode == c.raw &&
					ctrlPressed == c.ctrl &&
					altPressed == c.alt &&
					shiftPressed == c.shift &&
					metaPressed == c.meta {
					log.Printf("hotkey: combination %d triggered", i)
					callbacks[i]()
				}
			}
		}
		log.Printf("hotkey: event channel closed")
	}()
}

// parseCombo converts "Ctrl+Alt+T" into modifier flags plus the virtual-key
// rawcode of the final key. Reports false when no non-modifier key is
// present or the key is longer than one character.
func parseCombo(combo string) (chord, bool) {
	var c chord
	haveKey := false
	for _, part := range strings.Split(strings.ToLower(combo), "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "ctrl":
			c.ctrl = true
		case "alt":
			c.alt = true
		case "shift":
			c.shift = true
		case "win", "cmd", "super":
			c.meta = true
		case "":
			return chord{}, false
		default:
			if haveKey || len(part) != 1 {
				return chord{}, false
			}
			// Letter and digit virtual-key codes match uppercase ASCII
			c.raw = uint16(strings.ToUpper(part)[0])
			haveKey = true
		}
	}
	return c, haveKey
}
