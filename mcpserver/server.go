// Package mcpserver exposes the overlay manager as MCP tools over stdio, so
// LLM agents can drive the overlays the same way scripts drive the REST API.
package mcpserver

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"subs-overlay/overlay"
)

const (
	ServerName    = "subs-overlay"
	ServerVersion = "0.1.0"
)

// Server is the MCP server bound to one overlay manager.
type Server struct {
	mcpServer *mcpsdk.Server
	mgr       *overlay.Manager

	defaultColor    string
	defaultFontSize float32
}

// Options carry the defaults applied when a tool call omits optional
// styling fields.
type Options struct {
	DefaultColor    string
	DefaultFontSize float32
}

func New(mgr *overlay.Manager, opts Options) *Server {
	if opts.DefaultColor == "" {
		opts.DefaultColor = overlay.DefaultColor
	}
	if opts.DefaultFontSize <= 0 {
		opts.DefaultFontSize = overlay.DefaultFontSize
	}
	s := &Server{
		mgr:             mgr,
		defaultColor:    opts.DefaultColor,
		defaultFontSize: opts.DefaultFontSize,
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "add_overlay",
		Description: "Add a new text overlay at the given position. The overlay is transparent, always on top and click-through. Returns the server-generated id for future reference.",
	}, s.handleAddOverlay)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "update_overlay",
		Description: "Update any subset of an existing overlay's text, position, size, color or font size. Omitted fields are left unchanged.",
	}, s.handleUpdateOverlay)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "remove_overlay",
		Description: "Remove an overlay and destroy its window.",
	}, s.handleRemoveOverlay)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "clear_overlays",
		Description: "Remove all overlays.",
	}, s.handleClearOverlays)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_overlays",
		Description: "List all current overlays with their text and geometry.",
	}, s.handleListOverlays)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_interaction",
		Description: "Enable or disable click-through on all overlays. Without the enabled argument the current state is toggled.",
	}, s.handleToggleInteraction)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_always_on_top",
		Description: "Set whether the overlay windows stay on top of other windows.",
	}, s.handleSetAlwaysOnTop)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Get the current overlay count, interaction flags and display layout.",
	}, s.handleGetStatus)
}

func (s *Server) handleAddOverlay(_ context.Context, _ *mcpsdk.CallToolRequest, args AddOverlayInput) (*mcpsdk.CallToolResult, AddOverlayOutput, error) {
	color := args.Color
	if color == "" {
		color = s.defaultColor
	}
	fontSize := s.defaultFontSize
	if args.FontSize != nil {
		fontSize = *args.FontSize
	}

	cfg := overlay.Config{
		Text: overlay.TextConfig{
			Content:  args.Text,
			FontSize: fontSize,
			Color:    color,
			X:        args.X,
			Y:        args.Y,
		},
		Width:       args.Width,
		Height:      args.Height,
		Transparent: true,
		AlwaysOnTop: true,
		IgnoreInput: true,
	}
	id, err := s.mgr.Create(cfg)
	if err != nil {
		return nil, AddOverlayOutput{}, err
	}
	if err := s.mgr.Show(id); err != nil {
		return nil, AddOverlayOutput{}, err
	}
	return nil, AddOverlayOutput{ID: id}, nil
}

func (s *Server) handleUpdateOverlay(_ context.Context, _ *mcpsdk.CallToolRequest, args UpdateOverlayInput) (*mcpsdk.CallToolResult, any, error) {
	u := overlay.Update{
		Text:     args.Text,
		FontSize: args.FontSize,
		Color:    args.Color,
		X:        args.X,
		Y:        args.Y,
		Width:    args.Width,
		Height:   args.Height,
	}
	if err := s.mgr.Apply(args.ID, u); err != nil {
		return nil, nil, err
	}
	return nil, nil, nil
}

func (s *Server) handleRemoveOverlay(_ context.Context, _ *mcpsdk.CallToolRequest, args RemoveOverlayInput) (*mcpsdk.CallToolResult, any, error) {
	if err := s.mgr.Remove(args.ID); err != nil {
		return nil, nil, err
	}
	return nil, nil, nil
}

func (s *Server) handleClearOverlays(_ context.Context, _ *mcpsdk.CallToolRequest, _ ClearOverlaysInput) (*mcpsdk.CallToolResult, ClearOverlaysOutput, error) {
	n := len(s.mgr.IDs())
	s.mgr.Clear()
	return nil, ClearOverlaysOutput{Removed: n}, nil
}

func (s *Server) handleListOverlays(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListOverlaysInput) (*mcpsdk.CallToolResult, ListOverlaysOutput, error) {
	ids := s.mgr.IDs()
	out := ListOverlaysOutput{Overlays: make([]OverlayInfo, 0, len(ids))}
	for _, id := range ids {
		cfg, err := s.mgr.GetConfig(id)
		if err != nil {
			continue
		}
		out.Overlays = append(out.Overlays, OverlayInfo{
			ID:       id,
			Text:     cfg.Text.Content,
			X:        cfg.Text.X,
			Y:        cfg.Text.Y,
			Width:    cfg.Width,
			Height:   cfg.Height,
			Color:    cfg.Text.Color,
			FontSize: cfg.Text.FontSize,
		})
	}
	return nil, out, nil
}

func (s *Server) handleToggleInteraction(_ context.Context, _ *mcpsdk.CallToolRequest, args ToggleInteractionInput) (*mcpsdk.CallToolResult, ToggleInteractionOutput, error) {
	var (
		enabled bool
		err     error
	)
	if args.Enabled != nil {
		enabled = *args.Enabled
		err = s.mgr.SetClickThrough(enabled)
	} else {
		enabled, err = s.mgr.ToggleClickThrough()
	}
	if err != nil {
		return nil, ToggleInteractionOutput{}, err
	}
	return nil, ToggleInteractionOutput{ClickThroughEnabled: enabled}, nil
}

func (s *Server) handleSetAlwaysOnTop(_ context.Context, _ *mcpsdk.CallToolRequest, args SetAlwaysOnTopInput) (*mcpsdk.CallToolResult, SetAlwaysOnTopOutput, error) {
	if err := s.mgr.SetAlwaysOnTop(args.Enabled); err != nil {
		return nil, SetAlwaysOnTopOutput{}, err
	}
	return nil, SetAlwaysOnTopOutput{AlwaysOnTop: args.Enabled}, nil
}

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, overlay.Status, error) {
	return nil, s.mgr.Status(), nil
}
