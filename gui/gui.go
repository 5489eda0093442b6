// Package gui is the Fyne-backed window toolkit binding. It produces the
// borderless splash windows the overlays render into and exposes the
// toolkit's UI-thread dispatcher, so everything above it only ever sees the
// overlay.Window and eventloop.Dispatcher interfaces.
package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"subs-overlay/colorutil"
	"subs-overlay/eventloop"
	"subs-overlay/overlay"
)

// App wraps the Fyne application. Run must be called on the main goroutine
// and blocks until Quit.
type App struct {
	fapp fyne.App
}

func NewApp() *App {
	return &App{fapp: app.New()}
}

// Dispatcher returns the toolkit's UI-thread dispatcher. Fyne serializes the
// submitted closures onto its event goroutine, matching the FIFO contract.
func (a *App) Dispatcher() eventloop.Dispatcher {
	return fyneDispatcher{}
}

// Factory returns a window factory bound to this app. Factory.New must run
// on the UI thread; the Manager guarantees that.
func (a *App) Factory() overlay.WindowFactory {
	return &Factory{app: a.fapp}
}

func (a *App) Run() {
	a.fapp.Run()
}

func (a *App) Quit() {
	fyne.Do(a.fapp.Quit)
}

type fyneDispatcher struct{}

func (fyneDispatcher) Invoke(fn func()) error {
	fyne.Do(fn)
	return nil
}

func (fyneDispatcher) InvokeWait(fn func()) error {
	fyne.DoAndWait(fn)
	return nil
}

// Factory builds overlay windows. Splash windows are borderless and
// undecorated; drivers without splash support (mobile, test) fall back to a
// plain window.
type Factory struct {
	app fyne.App
}

func (f *Factory) New(cfg overlay.Config) (overlay.Window, error) {
	var win fyne.Window
	if d, ok := f.app.Driver().(desktop.Driver); ok {
		win = d.CreateSplashWindow()
	} else {
		win = f.app.NewWindow("")
	}
	win.SetPadded(false)

	text := canvas.NewText(cfg.Text.Content, nrgbaFromARGB(colorutil.ParseARGB(cfg.Text.Color)))
	text.TextSize = cfg.Text.FontSize
	text.Alignment = fyne.TextAlignCenter

	win.SetContent(container.NewCenter(text))
	win.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	return &window{win: win, text: text}, nil
}

// window adapts a Fyne window plus its single text canvas object to
// overlay.Window. All methods assume the UI thread.
type window struct {
	win  fyne.Window
	text *canvas.Text
}

func (w *window) SetText(text string) {
	w.text.Text = text
	w.text.Refresh()
}

func (w *window) Text() string {
	return w.text.Text
}

func (w *window) SetFontSize(size float32) {
	w.text.TextSize = size
	w.text.Refresh()
}

func (w *window) SetColor(argb uint32) {
	w.text.Color = nrgbaFromARGB(argb)
	w.text.Refresh()
}

func (w *window) Resize(width, height int) {
	w.win.Resize(fyne.NewSize(float32(width), float32(height)))
}

func (w *window) Show() { w.win.Show() }
func (w *window) Hide() { w.win.Hide() }
func (w *window) Close() { w.win.Close() }

func nrgbaFromARGB(argb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}
