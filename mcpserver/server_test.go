package mcpserver

import (
	"context"
	"errors"
	"testing"

	"subs-overlay/display"
	"subs-overlay/eventloop"
	"subs-overlay/overlay"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	loop := eventloop.New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	mgr := overlay.NewManager(overlay.Options{
		Factory:    overlay.HeadlessFactory{},
		Dispatcher: loop,
		Displays: func() []display.Bounds {
			return []display.Bounds{{Width: 1920, Height: 1080}}
		},
	})
	return New(mgr, Options{})
}

func addOne(t *testing.T, s *Server, text string) string {
	t.Helper()
	_, out, err := s.handleAddOverlay(context.Background(), nil, AddOverlayInput{
		Text:   text,
		X:      10,
		Y:      10,
		Width:  300,
		Height: 100,
	})
	if err != nil {
		t.Fatalf("add_overlay: %v", err)
	}
	if out.ID == "" {
		t.Fatalf("add_overlay returned empty id")
	}
	return out.ID
}

func TestAddOverlayDefaults(t *testing.T) {
	s := newTestServer(t)
	id := addOne(t, s, "subtitle")

	cfg, err := s.mgr.GetConfig(id)
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if cfg.Text.Color != overlay.DefaultColor {
		t.Errorf("color = %q, want default %q", cfg.Text.Color, overlay.DefaultColor)
	}
	if cfg.Text.FontSize != overlay.DefaultFontSize {
		t.Errorf("font size = %v, want default %v", cfg.Text.FontSize, overlay.DefaultFontSize)
	}
	if !cfg.Transparent || !cfg.AlwaysOnTop || !cfg.IgnoreInput {
		t.Errorf("overlay flags not set: %+v", cfg)
	}
}

func TestAddOverlayInvalidColor(t *testing.T) {
	s := newTestServer(t)
	_, _, err := s.handleAddOverlay(context.Background(), nil, AddOverlayInput{
		Text:   "x",
		Width:  300,
		Height: 100,
		Color:  "magenta",
	})
	var ce *overlay.InvalidColorError
	if !errors.As(err, &ce) {
		t.Fatalf("add_overlay = %v, want InvalidColorError", err)
	}
	if n := len(s.mgr.IDs()); n != 0 {
		t.Errorf("%d overlays exist after rejected add, want 0", n)
	}
}

func TestUpdateOverlay(t *testing.T) {
	s := newTestServer(t)
	id := addOne(t, s, "before")

	text := "after"
	x := 50
	_, _, err := s.handleUpdateOverlay(context.Background(), nil, UpdateOverlayInput{
		ID:   id,
		Text: &text,
		X:    &x,
	})
	if err != nil {
		t.Fatalf("update_overlay: %v", err)
	}

	cfg, _ := s.mgr.GetConfig(id)
	if cfg.Text.Content != "after" || cfg.Text.X != 50 {
		t.Errorf("config after update = %+v", cfg.Text)
	}
}

func TestUpdateOverlayUnknownID(t *testing.T) {
	s := newTestServer(t)
	text := "x"
	_, _, err := s.handleUpdateOverlay(context.Background(), nil, UpdateOverlayInput{
		ID:   "missing",
		Text: &text,
	})
	if !errors.Is(err, overlay.ErrNotFound) {
		t.Errorf("update_overlay(unknown) = %v, want ErrNotFound", err)
	}
}

func TestRemoveAndList(t *testing.T) {
	s := newTestServer(t)
	id := addOne(t, s, "one")
	addOne(t, s, "two")

	_, out, err := s.handleListOverlays(context.Background(), nil, ListOverlaysInput{})
	if err != nil {
		t.Fatalf("list_overlays: %v", err)
	}
	if len(out.Overlays) != 2 {
		t.Fatalf("list has %d overlays, want 2", len(out.Overlays))
	}

	if _, _, err := s.handleRemoveOverlay(context.Background(), nil, RemoveOverlayInput{ID: id}); err != nil {
		t.Fatalf("remove_overlay: %v", err)
	}
	_, out, _ = s.handleListOverlays(context.Background(), nil, ListOverlaysInput{})
	if len(out.Overlays) != 1 {
		t.Errorf("list has %d overlays after remove, want 1", len(out.Overlays))
	}
	for _, o := range out.Overlays {
		if o.ID == id {
			t.Errorf("removed id %s still listed", id)
		}
	}

	_, _, err = s.handleRemoveOverlay(context.Background(), nil, RemoveOverlayInput{ID: id})
	if !errors.Is(err, overlay.ErrNotFound) {
		t.Errorf("second remove = %v, want ErrNotFound", err)
	}
}

func TestClearOverlays(t *testing.T) {
	s := newTestServer(t)
	addOne(t, s, "one")
	addOne(t, s, "two")
	addOne(t, s, "three")

	_, out, err := s.handleClearOverlays(context.Background(), nil, ClearOverlaysInput{})
	if err != nil {
		t.Fatalf("clear_overlays: %v", err)
	}
	if out.Removed != 3 {
		t.Errorf("Removed = %d, want 3", out.Removed)
	}
	if n := len(s.mgr.IDs()); n != 0 {
		t.Errorf("%d overlays remain after clear, want 0", n)
	}
}

func boolPtr(b bool) *bool { return &b }

func TestToggleInteraction(t *testing.T) {
	s := newTestServer(t)
	addOne(t, s, "x")

	_, out, err := s.handleToggleInteraction(context.Background(), nil, ToggleInteractionInput{})
	if err != nil {
		t.Fatalf("toggle_interaction: %v", err)
	}
	if !out.ClickThroughEnabled {
		t.Errorf("first toggle = false, want true")
	}

	_, out, err = s.handleToggleInteraction(context.Background(), nil, ToggleInteractionInput{Enabled: boolPtr(false)})
	if err != nil {
		t.Fatalf("toggle_interaction(false): %v", err)
	}
	if out.ClickThroughEnabled {
		t.Errorf("explicit disable reported enabled")
	}
	if st := s.mgr.Status(); st.ClickThrough {
		t.Errorf("Status.ClickThrough = true after explicit disable")
	}
}

func TestSetAlwaysOnTopAndStatus(t *testing.T) {
	s := newTestServer(t)
	addOne(t, s, "x")

	_, out, err := s.handleSetAlwaysOnTop(context.Background(), nil, SetAlwaysOnTopInput{Enabled: true})
	if err != nil {
		t.Fatalf("set_always_on_top: %v", err)
	}
	if !out.AlwaysOnTop {
		t.Errorf("AlwaysOnTop = false in output")
	}

	_, st, err := s.handleGetStatus(context.Background(), nil, GetStatusInput{})
	if err != nil {
		t.Fatalf("get_status: %v", err)
	}
	if !st.AlwaysOnTop {
		t.Errorf("status AlwaysOnTop = false, want true")
	}
	if st.OverlayCount != 1 {
		t.Errorf("OverlayCount = %d, want 1", st.OverlayCount)
	}
}
