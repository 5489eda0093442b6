package gui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"

	"subs-overlay/overlay"
)

func TestNRGBAFromARGB(t *testing.T) {
	tests := []struct {
		argb uint32
		want color.NRGBA
	}{
		{0xFFFF0000, color.NRGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}},
		{0x80112233, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
		{0x00000000, color.NRGBA{}},
		{0xFFFFFFFF, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
	}
	for _, tt := range tests {
		if got := nrgbaFromARGB(tt.argb); got != tt.want {
			t.Errorf("nrgbaFromARGB(%#08x) = %+v, want %+v", tt.argb, got, tt.want)
		}
	}
}

func TestFactoryBuildsWindow(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	f := &Factory{app: a}
	w, err := f.New(overlay.Config{
		Text: overlay.TextConfig{
			Content:  "subtitle line",
			FontSize: 20,
			Color:    "#FF00FF00",
		},
		Width:  300,
		Height: 100,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if got := w.Text(); got != "subtitle line" {
		t.Errorf("Text() = %q, want %q", got, "subtitle line")
	}

	w.SetText("changed")
	if got := w.Text(); got != "changed" {
		t.Errorf("Text() after SetText = %q, want %q", got, "changed")
	}

	fw := w.(*window)
	if fw.text.TextSize != 20 {
		t.Errorf("TextSize = %v, want 20", fw.text.TextSize)
	}
	w.SetColor(0xFF0000FF)
	if fw.text.Color != (color.NRGBA{B: 0xFF, A: 0xFF}) {
		t.Errorf("Color = %+v, want opaque blue", fw.text.Color)
	}
}
