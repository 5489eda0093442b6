package overlay

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"subs-overlay/colorutil"
	"subs-overlay/display"
	"subs-overlay/eventloop"
	"subs-overlay/registry"
	"subs-overlay/winstyle"
)

// layerAlpha is the whole-window alpha applied to transparent overlays.
const layerAlpha = 200

// Options configures a Manager. Factory and Dispatcher are required.
type Options struct {
	Factory    WindowFactory
	Dispatcher eventloop.Dispatcher
	// Styler defaults to the platform styler.
	Styler winstyle.Styler
	// Displays defaults to display.All. Injectable for tests and headless
	// systems.
	Displays func() []display.Bounds

	// Initial global toggles.
	ClickThrough bool
	AlwaysOnTop  bool
}

// Manager is the public overlay API. Safe for concurrent use from any
// goroutine; all window access is marshaled through the dispatcher.
//
// Two ownership domains keep toolkit objects off foreign threads: the
// registry holds id-keyed configuration (cross-thread-visible), while the
// windows map is the UI-thread-owned keep-alive holder, touched only inside
// dispatched closures.
type Manager struct {
	reg      *registry.Registry[Config]
	disp     eventloop.Dispatcher
	factory  WindowFactory
	styler   winstyle.Styler
	displays func() []display.Bounds

	mu           sync.Mutex
	clickThrough bool
	alwaysOnTop  bool

	// UI-thread domain. Never touch outside a dispatched closure.
	windows map[string]Window
}

func NewManager(opts Options) *Manager {
	if opts.Factory == nil {
		panic("overlay: Options.Factory is required")
	}
	if opts.Dispatcher == nil {
		panic("overlay: Options.Dispatcher is required")
	}
	styler := opts.Styler
	if styler == nil {
		styler = winstyle.New()
	}
	displays := opts.Displays
	if displays == nil {
		displays = display.All
	}
	return &Manager{
		reg:          registry.New[Config](),
		disp:         opts.Dispatcher,
		factory:      opts.Factory,
		styler:       styler,
		displays:     displays,
		clickThrough: opts.ClickThrough,
		alwaysOnTop:  opts.AlwaysOnTop,
		windows:      make(map[string]Window),
	}
}

func validate(cfg Config) error {
	if cfg.Width <= 0 {
		return &InvalidInputError{Field: "width", Reason: "must be positive"}
	}
	if cfg.Height <= 0 {
		return &InvalidInputError{Field: "height", Reason: "must be positive"}
	}
	if cfg.Text.FontSize <= 0 {
		return &InvalidInputError{Field: "font_size", Reason: "must be positive"}
	}
	if !colorutil.IsValid(cfg.Text.Color) {
		return &InvalidColorError{Value: cfg.Text.Color}
	}
	return nil
}

func queueErr(err error) error {
	return fmt.Errorf("event queue: %w", err)
}

// Create builds a new overlay and returns its id. Validation happens before
// any window work, so a rejected config leaves the registry unchanged. The
// native window is constructed and configured on the UI thread; style flags
// (layered, click-through, topmost) are applied afterwards.
func (m *Manager) Create(cfg Config) (string, error) {
	if err := validate(cfg); err != nil {
		return "", err
	}

	id := uuid.NewString()

	var w Window
	var werr error
	err := m.disp.InvokeWait(func() {
		w, werr = m.factory.New(cfg)
		if werr != nil {
			return
		}
		w.SetText(cfg.Text.Content)
		w.SetFontSize(cfg.Text.FontSize)
		w.SetColor(colorutil.ParseARGB(cfg.Text.Color))
		w.Resize(cfg.Width, cfg.Height)
		m.windows[id] = w
	})
	if err != nil {
		return "", queueErr(err)
	}
	if werr != nil {
		return "", &PlatformError{Op: "create window", Err: werr}
	}

	m.reg.Insert(id, cfg)

	if err := m.applyStyles(id, cfg); err != nil {
		// The overlay exists and works; missing style flags are a warning,
		// not a failure.
		log.Printf("overlay %s: window styles not applied: %v", id, err)
	}
	return id, nil
}

// applyStyles pushes the config's style flags and position to the native
// window. Must be called without the registry lock held.
func (m *Manager) applyStyles(id string, cfg Config) error {
	var styleErr error
	err := m.disp.InvokeWait(func() {
		w, ok := m.windows[id]
		if !ok {
			return
		}
		h := w.NativeHandle()
		if h == 0 {
			styleErr = fmt.Errorf("no native handle")
			return
		}
		record := func(err error) {
			if err != nil && styleErr == nil {
				styleErr = err
			}
		}
		if cfg.Transparent || cfg.IgnoreInput {
			record(m.styler.SetLayered(h))
		}
		record(m.styler.SetClickThrough(h, cfg.IgnoreInput))
		if cfg.Transparent {
			record(m.styler.SetLayerAlpha(h, layerAlpha))
		}
		record(m.styler.SetTopmost(h, cfg.AlwaysOnTop))
		x, y := display.Clamp(display.Union(m.displays()), cfg.Text.X, cfg.Text.Y, cfg.Width, cfg.Height)
		record(m.styler.SetPosition(h, x, y))
	})
	if err != nil {
		return queueErr(err)
	}
	return styleErr
}

// ApplyProperties re-applies the stored style flags and position of an
// overlay, for use after something external has reset them.
func (m *Manager) ApplyProperties(id string) error {
	e, ok := m.reg.Get(id)
	if !ok {
		return notFound(id)
	}
	if err := m.applyStyles(id, e.Config); err != nil {
		log.Printf("overlay %s: window styles not applied: %v", id, err)
	}
	return nil
}

// Show makes the overlay visible, re-applying size and font size first so
// an externally resized window comes back to its configured shape.
func (m *Manager) Show(id string) error {
	e, ok := m.reg.Get(id)
	if !ok {
		return notFound(id)
	}
	err := m.disp.InvokeWait(func() {
		w, ok := m.windows[id]
		if !ok {
			return
		}
		w.Resize(e.Config.Width, e.Config.Height)
		w.SetFontSize(e.Config.Text.FontSize)
		w.Show()
	})
	if err != nil {
		return queueErr(err)
	}
	return nil
}

// Hide hides the overlay without destroying it.
func (m *Manager) Hide(id string) error {
	if _, ok := m.reg.Get(id); !ok {
		return notFound(id)
	}
	err := m.disp.InvokeWait(func() {
		if w, ok := m.windows[id]; ok {
			w.Hide()
		}
	})
	if err != nil {
		return queueErr(err)
	}
	return nil
}

// UpdateText replaces the overlay's text. Unknown ids are an error here;
// the lenient variant is UpdateTextAndShow.
func (m *Manager) UpdateText(id, text string) error {
	return m.Apply(id, Update{Text: &text})
}

// UpdatePosition moves the overlay. Both the stored config and the live
// window are updated; the position is clamped to the display bounds.
func (m *Manager) UpdatePosition(id string, x, y int) error {
	return m.Apply(id, Update{X: &x, Y: &y})
}

// Apply merges a partial update into the overlay's stored config and pushes
// the affected properties to the live window. Style-flag changes are
// re-applied through the native styler.
func (m *Manager) Apply(id string, u Update) error {
	if u.FontSize != nil && *u.FontSize <= 0 {
		return &InvalidInputError{Field: "font_size", Reason: "must be positive"}
	}
	if u.Width != nil && *u.Width <= 0 {
		return &InvalidInputError{Field: "width", Reason: "must be positive"}
	}
	if u.Height != nil && *u.Height <= 0 {
		return &InvalidInputError{Field: "height", Reason: "must be positive"}
	}
	if u.Color != nil && !colorutil.IsValid(*u.Color) {
		return &InvalidColorError{Value: *u.Color}
	}

	var cfg Config
	flagsChanged := false
	ok := m.reg.Update(id, func(e *registry.Entry[Config]) {
		c := &e.Config
		if u.Text != nil {
			c.Text.Content = *u.Text
		}
		if u.FontSize != nil {
			c.Text.FontSize = *u.FontSize
		}
		if u.Color != nil {
			c.Text.Color = *u.Color
		}
		if u.X != nil {
			c.Text.X = *u.X
		}
		if u.Y != nil {
			c.Text.Y = *u.Y
		}
		if u.Width != nil {
			c.Width = *u.Width
		}
		if u.Height != nil {
			c.Height = *u.Height
		}
		if u.Transparent != nil && *u.Transparent != c.Transparent {
			c.Transparent = *u.Transparent
			flagsChanged = true
		}
		if u.AlwaysOnTop != nil && *u.AlwaysOnTop != c.AlwaysOnTop {
			c.AlwaysOnTop = *u.AlwaysOnTop
			flagsChanged = true
		}
		if u.IgnoreInput != nil && *u.IgnoreInput != c.IgnoreInput {
			c.IgnoreInput = *u.IgnoreInput
			flagsChanged = true
		}
		cfg = *c
	})
	if !ok {
		return notFound(id)
	}

	// Content changes need no result; fire-and-forget keeps API handlers
	// snappy while the FIFO queue preserves ordering.
	err := m.disp.Invoke(func() {
		w, ok := m.windows[id]
		if !ok {
			return
		}
		if u.Text != nil {
			w.SetText(cfg.Text.Content)
		}
		if u.FontSize != nil {
			w.SetFontSize(cfg.Text.FontSize)
		}
		if u.Color != nil {
			w.SetColor(colorutil.ParseARGB(cfg.Text.Color))
		}
		if u.Width != nil || u.Height != nil {
			w.Resize(cfg.Width, cfg.Height)
		}
		if u.X != nil || u.Y != nil || u.Width != nil || u.Height != nil {
			if h := w.NativeHandle(); h != 0 {
				x, y := display.Clamp(display.Union(m.displays()), cfg.Text.X, cfg.Text.Y, cfg.Width, cfg.Height)
				if perr := m.styler.SetPosition(h, x, y); perr != nil {
					log.Printf("overlay %s: position not applied: %v", id, perr)
				}
			}
		}
	})
	if err != nil {
		return queueErr(err)
	}

	if flagsChanged {
		if serr := m.applyStyles(id, cfg); serr != nil {
			log.Printf("overlay %s: window styles not applied: %v", id, serr)
		}
	}
	return nil
}

// Remove tears the overlay down in two phases: the registry entry goes away
// immediately (IDs reflects the removal before this function returns), then
// the UI thread releases its keep-alive reference and closes the window.
// The async phase has no caller left to report to, so it logs and
// continues on failure.
func (m *Manager) Remove(id string) error {
	if _, ok := m.reg.Remove(id); !ok {
		return notFound(id)
	}
	if err := m.disp.Invoke(func() {
		w, ok := m.windows[id]
		if !ok {
			return
		}
		delete(m.windows, id)
		w.Hide()
		w.Close()
	}); err != nil {
		log.Printf("overlay %s: teardown not dispatched: %v", id, err)
	}
	return nil
}

// Clear removes every overlay. Same two-phase teardown as Remove.
func (m *Manager) Clear() {
	ids := m.reg.Clear()
	if len(ids) == 0 {
		return
	}
	if err := m.disp.Invoke(func() {
		for _, id := range ids {
			w, ok := m.windows[id]
			if !ok {
				continue
			}
			delete(m.windows, id)
			w.Hide()
			w.Close()
		}
	}); err != nil {
		log.Printf("overlay clear: teardown not dispatched: %v", err)
	}
}

// IDs returns a snapshot of the current overlay ids, in no particular
// order.
func (m *Manager) IDs() []string {
	return m.reg.IDs()
}

// GetConfig returns the overlay's configuration. The text content is read
// back from the live window, which is the source of truth; other paths may
// have mutated it directly.
func (m *Manager) GetConfig(id string) (Config, error) {
	e, ok := m.reg.Get(id)
	if !ok {
		return Config{}, notFound(id)
	}
	cfg := e.Config
	if err := m.disp.InvokeWait(func() {
		if w, ok := m.windows[id]; ok {
			cfg.Text.Content = w.Text()
		}
	}); err != nil {
		// Stored config is still valid; the live read-back is best effort.
		log.Printf("overlay %s: live text read failed: %v", id, err)
	}
	return cfg, nil
}

// SetClickThrough toggles input passthrough on every live overlay and
// records the global state.
func (m *Manager) SetClickThrough(enabled bool) error {
	m.mu.Lock()
	m.clickThrough = enabled
	m.mu.Unlock()
	return m.forEachHandle("click-through", func(h winstyle.Handle) error {
		if enabled {
			if err := m.styler.SetLayered(h); err != nil {
				return err
			}
		}
		return m.styler.SetClickThrough(h, enabled)
	})
}

// ToggleClickThrough flips the global click-through state and returns the
// new value.
func (m *Manager) ToggleClickThrough() (bool, error) {
	m.mu.Lock()
	enabled := !m.clickThrough
	m.mu.Unlock()
	return enabled, m.SetClickThrough(enabled)
}

// SetAlwaysOnTop pins or unpins every live overlay.
func (m *Manager) SetAlwaysOnTop(enabled bool) error {
	m.mu.Lock()
	m.alwaysOnTop = enabled
	m.mu.Unlock()
	return m.forEachHandle("always-on-top", func(h winstyle.Handle) error {
		return m.styler.SetTopmost(h, enabled)
	})
}

// forEachHandle runs fn against every live window's native handle on the UI
// thread. Unsupported platforms produce one logged warning, not an error;
// the flag state is still recorded for Status.
func (m *Manager) forEachHandle(op string, fn func(winstyle.Handle) error) error {
	ids := m.reg.IDs()
	err := m.disp.InvokeWait(func() {
		for _, id := range ids {
			w, ok := m.windows[id]
			if !ok {
				continue
			}
			h := w.NativeHandle()
			if h == 0 {
				continue
			}
			if err := fn(h); err != nil {
				log.Printf("overlay %s: %s not applied: %v", id, op, err)
			}
		}
	})
	if err != nil {
		return queueErr(err)
	}
	return nil
}

// Status reports the global toggles, overlay count and display layout.
func (m *Manager) Status() Status {
	m.mu.Lock()
	ct, aot := m.clickThrough, m.alwaysOnTop
	m.mu.Unlock()
	return Status{
		ClickThrough: ct,
		AlwaysOnTop:  aot,
		OverlayCount: m.reg.Len(),
		Displays:     m.displays(),
	}
}
