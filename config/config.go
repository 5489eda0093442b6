package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIHost           string
	APIPort           int
	EnableFileLogging bool

	ToggleHotkey    string
	ClipboardHotkey string

	DefaultWidth    int
	DefaultHeight   int
	DefaultFontSize float32
	DefaultColor    string

	ClickThrough bool
	AlwaysOnTop  bool
	Transparent  bool
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or executable directory
	envPaths := []string{".env"}

	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		envPaths = append(envPaths, filepath.Join(execDir, ".env"))
	}

	// An explicit path wins over the search list
	if p := os.Getenv("SUBS_OVERLAY_ENV"); p != "" {
		envPaths = []string{p}
	}

	// Try to load .env file (ignore errors if file doesn't exist)
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
			break
		}
	}

	cfg := &Config{
		APIHost:           getEnvWithDefault("API_HOST", "127.0.0.1"),
		APIPort:           getEnvInt("API_PORT", 8080),
		EnableFileLogging: getEnvBool("ENABLE_FILE_LOGGING", false),
		ToggleHotkey:      getEnvWithDefault("TOGGLE_HOTKEY", "Ctrl+Alt+T"),
		ClipboardHotkey:   getEnvWithDefault("CLIPBOARD_HOTKEY", "Ctrl+Alt+V"),
		DefaultWidth:      getEnvInt("DEFAULT_WIDTH", 400),
		DefaultHeight:     getEnvInt("DEFAULT_HEIGHT", 100),
		DefaultFontSize:   float32(getEnvInt("DEFAULT_FONT_SIZE", 24)),
		DefaultColor:      getEnvWithDefault("DEFAULT_COLOR", "#FFFFFFFF"),
		ClickThrough:      getEnvBool("CLICK_THROUGH", false),
		AlwaysOnTop:       getEnvBool("ALWAYS_ON_TOP", true),
		Transparent:       getEnvBool("TRANSPARENT", true),
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.ToLower(value) == "true"
}
