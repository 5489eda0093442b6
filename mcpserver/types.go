package mcpserver

// AddOverlayInput creates a new text overlay.
type AddOverlayInput struct {
	Text     string   `json:"text" jsonschema:"required,Text content of the overlay"`
	X        int      `json:"x" jsonschema:"required,X position in virtual-screen pixels"`
	Y        int      `json:"y" jsonschema:"required,Y position in virtual-screen pixels"`
	Width    int      `json:"width" jsonschema:"required,Width in pixels"`
	Height   int      `json:"height" jsonschema:"required,Height in pixels"`
	Color    string   `json:"color,omitempty" jsonschema:"Text color in hex format (#RRGGBB or #AARRGGBB, default #FFFFFFFF)"`
	FontSize *float32 `json:"font_size,omitempty" jsonschema:"Font size in pixels (default 24)"`
}

type AddOverlayOutput struct {
	ID string `json:"id" jsonschema:"Server-generated overlay id"`
}

// UpdateOverlayInput changes any subset of an overlay's properties.
type UpdateOverlayInput struct {
	ID       string   `json:"id" jsonschema:"required,ID of the overlay to update"`
	Text     *string  `json:"text,omitempty" jsonschema:"New text content"`
	X        *int     `json:"x,omitempty" jsonschema:"New X position"`
	Y        *int     `json:"y,omitempty" jsonschema:"New Y position"`
	Width    *int     `json:"width,omitempty" jsonschema:"New width"`
	Height   *int     `json:"height,omitempty" jsonschema:"New height"`
	Color    *string  `json:"color,omitempty" jsonschema:"New text color"`
	FontSize *float32 `json:"font_size,omitempty" jsonschema:"New font size"`
}

type RemoveOverlayInput struct {
	ID string `json:"id" jsonschema:"required,ID of the overlay to remove"`
}

type ClearOverlaysInput struct{}

type ClearOverlaysOutput struct {
	Removed int `json:"removed" jsonschema:"Number of overlays removed"`
}

type ListOverlaysInput struct{}

type OverlayInfo struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Color    string  `json:"color"`
	FontSize float32 `json:"font_size"`
}

type ListOverlaysOutput struct {
	Overlays []OverlayInfo `json:"overlays"`
}

// ToggleInteractionInput flips or sets click-through. With Enabled nil the
// current state is toggled.
type ToggleInteractionInput struct {
	Enabled *bool `json:"enabled,omitempty" jsonschema:"Enable (true) or disable (false) click-through. If not provided, toggles current state."`
}

type ToggleInteractionOutput struct {
	ClickThroughEnabled bool `json:"click_through_enabled"`
}

type SetAlwaysOnTopInput struct {
	Enabled bool `json:"enabled" jsonschema:"required,Enable (true) or disable (false) always-on-top"`
}

type SetAlwaysOnTopOutput struct {
	AlwaysOnTop bool `json:"always_on_top"`
}

type GetStatusInput struct{}
