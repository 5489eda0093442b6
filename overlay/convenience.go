package overlay

import "log"

// Defaults used by the convenience helpers.
const (
	DefaultFontSize float32 = 24
	DefaultColor            = "#FFFFFFFF"
)

// CreateText creates and shows a white, transparent, click-through,
// always-on-top text overlay with default font settings. Intended for quick
// scripting; use Manager.Create for full control.
//
// The show after a successful create is best effort: its failure is
// downgraded to a logged warning because the overlay itself already exists.
func CreateText(m *Manager, text string, x, y, width, height int) (string, error) {
	cfg := Config{
		Text: TextConfig{
			Content:  text,
			FontSize: DefaultFontSize,
			Color:    DefaultColor,
			X:        x,
			Y:        y,
		},
		Width:       width,
		Height:      height,
		Transparent: true,
		AlwaysOnTop: true,
		IgnoreInput: true,
	}
	id, err := m.Create(cfg)
	if err != nil {
		return "", err
	}
	if err := m.Show(id); err != nil {
		log.Printf("warning: could not show overlay %s after create: %v", id, err)
	}
	return id, nil
}

// UpdateTextAndShow updates an overlay's text and re-shows it in case it
// was hidden. The update error propagates; the secondary show is downgraded
// to a logged warning.
func UpdateTextAndShow(m *Manager, id, text string) error {
	if err := m.UpdateText(id, text); err != nil {
		return err
	}
	if err := m.Show(id); err != nil {
		log.Printf("warning: could not show overlay %s after text update: %v", id, err)
	}
	return nil
}
