package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"API_HOST", "API_PORT", "ENABLE_FILE_LOGGING", "TOGGLE_HOTKEY",
		"CLIPBOARD_HOTKEY", "DEFAULT_WIDTH", "DEFAULT_HEIGHT",
		"DEFAULT_FONT_SIZE", "DEFAULT_COLOR", "CLICK_THROUGH",
		"ALWAYS_ON_TOP", "TRANSPARENT", "SUBS_OVERLAY_ENV",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIHost != "127.0.0.1" {
		t.Errorf("APIHost = %q, want 127.0.0.1", cfg.APIHost)
	}
	if cfg.APIPort != 8080 {
		t.Errorf("APIPort = %d, want 8080", cfg.APIPort)
	}
	if cfg.ToggleHotkey != "Ctrl+Alt+T" {
		t.Errorf("ToggleHotkey = %q, want Ctrl+Alt+T", cfg.ToggleHotkey)
	}
	if cfg.DefaultWidth != 400 || cfg.DefaultHeight != 100 {
		t.Errorf("default size = %dx%d, want 400x100", cfg.DefaultWidth, cfg.DefaultHeight)
	}
	if cfg.DefaultFontSize != 24 {
		t.Errorf("DefaultFontSize = %v, want 24", cfg.DefaultFontSize)
	}
	if cfg.DefaultColor != "#FFFFFFFF" {
		t.Errorf("DefaultColor = %q, want #FFFFFFFF", cfg.DefaultColor)
	}
	if cfg.ClickThrough {
		t.Error("ClickThrough defaults to true, want false")
	}
	if !cfg.AlwaysOnTop {
		t.Error("AlwaysOnTop defaults to false, want true")
	}
	if !cfg.Transparent {
		t.Error("Transparent defaults to false, want true")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_HOST", "0.0.0.0")
	t.Setenv("API_PORT", "9090")
	t.Setenv("ENABLE_FILE_LOGGING", "TRUE")
	t.Setenv("DEFAULT_COLOR", "#80FF0000")
	t.Setenv("ALWAYS_ON_TOP", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIHost != "0.0.0.0" {
		t.Errorf("APIHost = %q, want 0.0.0.0", cfg.APIHost)
	}
	if cfg.APIPort != 9090 {
		t.Errorf("APIPort = %d, want 9090", cfg.APIPort)
	}
	if !cfg.EnableFileLogging {
		t.Error("EnableFileLogging not parsed case-insensitively")
	}
	if cfg.DefaultColor != "#80FF0000" {
		t.Errorf("DefaultColor = %q, want #80FF0000", cfg.DefaultColor)
	}
	if cfg.AlwaysOnTop {
		t.Error("AlwaysOnTop = true, want false")
	}
}

func TestLoadBadPortFallsBack(t *testing.T) {
	t.Setenv("API_PORT", "not-a-port")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIPort != 8080 {
		t.Errorf("APIPort = %d, want default 8080 on parse failure", cfg.APIPort)
	}
}
