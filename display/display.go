// Package display reports screen geometry so overlays can be kept
// on-screen. Bounds come from the active displays; on a headless system
// (no displays) clamping degrades to a passthrough.
package display

import "github.com/kbinani/screenshot"

// Bounds is one rectangle of screen real estate in virtual-screen
// coordinates (the origin can be negative with multiple monitors).
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// All returns the bounds of every active display.
func All() []Bounds {
	n := screenshot.NumActiveDisplays()
	out := make([]Bounds, 0, n)
	for i := 0; i < n; i++ {
		r := screenshot.GetDisplayBounds(i)
		out = append(out, Bounds{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()})
	}
	return out
}

// Virtual returns the union of all active displays. A zero Bounds means no
// display information is available.
func Virtual() Bounds {
	return Union(All())
}

// Union merges display rectangles into one covering rectangle.
func Union(all []Bounds) Bounds {
	if len(all) == 0 {
		return Bounds{}
	}
	minX, minY := all[0].X, all[0].Y
	maxX, maxY := all[0].X+all[0].Width, all[0].Y+all[0].Height
	for _, b := range all[1:] {
		if b.X < minX {
			minX = b.X
		}
		if b.Y < minY {
			minY = b.Y
		}
		if b.X+b.Width > maxX {
			maxX = b.X + b.Width
		}
		if b.Y+b.Height > maxY {
			maxY = b.Y + b.Height
		}
	}
	return Bounds{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Clamp adjusts (x, y) so a window of size w x h stays inside b. When the
// window is larger than the bounds the top-left edge wins. A zero Bounds
// leaves the position untouched.
func Clamp(b Bounds, x, y, w, h int) (int, int) {
	if b.Width == 0 || b.Height == 0 {
		return x, y
	}
	if x+w > b.X+b.Width {
		x = b.X + b.Width - w
	}
	if x < b.X {
		x = b.X
	}
	if y+h > b.Y+b.Height {
		y = b.Y + b.Height - h
	}
	if y < b.Y {
		y = b.Y
	}
	return x, y
}
