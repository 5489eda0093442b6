package overlay

import "subs-overlay/winstyle"

// HeadlessFactory builds in-memory windows with no native backing. Used by
// the api/mcp-only modes, where the process renders nothing itself, and by
// tests. Headless windows report a zero native handle, so style calls are
// skipped with a warning.
type HeadlessFactory struct{}

func (HeadlessFactory) New(cfg Config) (Window, error) {
	return &headlessWindow{
		text:     cfg.Text.Content,
		fontSize: cfg.Text.FontSize,
		width:    cfg.Width,
		height:   cfg.Height,
	}, nil
}

// headlessWindow state is confined to the dispatcher goroutine, like every
// Window implementation.
type headlessWindow struct {
	text     string
	fontSize float32
	color    uint32
	width    int
	height   int
	visible  bool
	closed   bool
}

func (w *headlessWindow) SetText(text string)          { w.text = text }
func (w *headlessWindow) Text() string                 { return w.text }
func (w *headlessWindow) SetFontSize(size float32)     { w.fontSize = size }
func (w *headlessWindow) SetColor(argb uint32)         { w.color = argb }
func (w *headlessWindow) Resize(width, height int)     { w.width, w.height = width, height }
func (w *headlessWindow) Show()                        { w.visible = true }
func (w *headlessWindow) Hide()                        { w.visible = false }
func (w *headlessWindow) Close()                       { w.closed = true }
func (w *headlessWindow) NativeHandle() winstyle.Handle { return 0 }
