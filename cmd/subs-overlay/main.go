// Command subs-overlay runs the overlay manager in one of three modes:
// gui (native windows plus REST, tray and hotkeys), api (headless REST
// only) and mcp (headless stdio MCP server).
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"subs-overlay/api"
	"subs-overlay/clipboard"
	"subs-overlay/config"
	"subs-overlay/display"
	"subs-overlay/eventloop"
	"subs-overlay/gui"
	"subs-overlay/hotkey"
	"subs-overlay/logutil"
	"subs-overlay/mcpserver"
	"subs-overlay/overlay"
	"subs-overlay/tray"
)

type options struct {
	host string
	port int
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts := &options{}

	root := &cobra.Command{
		Use:           "subs-overlay",
		Short:         "Transparent always-on-top text overlay manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.host, "host", "", "API listen host (overrides API_HOST)")
	root.PersistentFlags().IntVar(&opts.port, "port", 0, "API listen port (overrides API_PORT)")

	root.AddCommand(
		&cobra.Command{
			Use:   "gui",
			Short: "Run with native overlay windows, REST API, tray and hotkeys",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runGUI(opts)
			},
		},
		&cobra.Command{
			Use:   "api",
			Short: "Run headless with the REST API only",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAPI(opts)
			},
		},
		&cobra.Command{
			Use:   "mcp",
			Short: "Run headless as a stdio MCP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMCP()
			},
		},
	)

	return root.Execute()
}

func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if opts != nil {
		if opts.host != "" {
			cfg.APIHost = opts.host
		}
		if opts.port != 0 {
			cfg.APIPort = opts.port
		}
	}
	return cfg, nil
}

func apiAddr(cfg *config.Config) string {
	return net.JoinHostPort(cfg.APIHost, strconv.Itoa(cfg.APIPort))
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func managerOptions(cfg *config.Config, factory overlay.WindowFactory, disp eventloop.Dispatcher) overlay.Options {
	return overlay.Options{
		Factory:      factory,
		Dispatcher:   disp,
		ClickThrough: cfg.ClickThrough,
		AlwaysOnTop:  cfg.AlwaysOnTop,
	}
}

// runAPI serves REST against the headless backend. Overlay state is fully
// tracked but nothing is rendered.
func runAPI(opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logutil.Setup(cfg.EnableFileLogging)

	ctx, cancel := signalContext()
	defer cancel()

	loop := eventloop.New()
	go loop.Run(ctx)

	mgr := overlay.NewManager(managerOptions(cfg, overlay.HeadlessFactory{}, loop))
	srv := api.New(mgr)

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("api shutdown: %v", err)
		}
	}()

	log.Printf("REST API listening on %s (headless)", apiAddr(cfg))
	return srv.Start(apiAddr(cfg))
}

// runMCP serves MCP tools over stdio against the headless backend.
func runMCP() error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	// Stdout carries the MCP protocol; never log there.
	logutil.Setup(cfg.EnableFileLogging)

	ctx, cancel := signalContext()
	defer cancel()

	loop := eventloop.New()
	go loop.Run(ctx)

	mgr := overlay.NewManager(managerOptions(cfg, overlay.HeadlessFactory{}, loop))
	srv := mcpserver.New(mgr, mcpserver.Options{
		DefaultColor:    cfg.DefaultColor,
		DefaultFontSize: cfg.DefaultFontSize,
	})
	return srv.Run(ctx)
}

// runGUI is the full desktop mode: real windows through the toolkit, REST
// in the background, tray menu and global hotkeys.
func runGUI(opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logutil.Setup(cfg.EnableFileLogging)

	ctx, cancel := signalContext()
	defer cancel()

	app := gui.NewApp()
	mgr := overlay.NewManager(managerOptions(cfg, app.Factory(), app.Dispatcher()))

	srv := api.New(mgr)
	go func() {
		log.Printf("REST API listening on %s", apiAddr(cfg))
		if err := srv.Start(apiAddr(cfg)); err != nil {
			log.Printf("api server: %v", err)
		}
	}()

	go tray.Run(tray.Callbacks{
		ToggleClickThrough: mgr.ToggleClickThrough,
		SetAlwaysOnTop:     mgr.SetAlwaysOnTop,
		ClearOverlays:      mgr.Clear,
		OnQuit:             cancel,
	})

	bindings := []hotkey.Binding{
		{Combo: cfg.ToggleHotkey, Callback: func() {
			if _, err := mgr.ToggleClickThrough(); err != nil {
				log.Printf("hotkey toggle failed: %v", err)
			}
		}},
	}
	if cfg.ClipboardHotkey != "" {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable, hotkey disabled: %v", err)
		} else {
			bindings = append(bindings, hotkey.Binding{
				Combo:    cfg.ClipboardHotkey,
				Callback: func() { showClipboardOverlay(mgr, cfg) },
			})
		}
	}
	hotkey.Listen(bindings)

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("api shutdown: %v", err)
		}
		tray.Quit()
		app.Quit()
	}()

	log.Printf("Subs Overlay initialized, toggle hotkey %s", cfg.ToggleHotkey)
	app.Run()
	return nil
}

// showClipboardOverlay flashes the clipboard text near the bottom of the
// virtual screen for a few seconds.
func showClipboardOverlay(mgr *overlay.Manager, cfg *config.Config) {
	text := clipboard.ReadText()
	if text == "" {
		return
	}
	vb := display.Virtual()
	x := vb.X + (vb.Width-cfg.DefaultWidth)/2
	y := vb.Y + vb.Height - cfg.DefaultHeight - 50
	id, err := overlay.CreateText(mgr, text, x, y, cfg.DefaultWidth, cfg.DefaultHeight)
	if err != nil {
		log.Printf("clipboard overlay failed: %v", err)
		return
	}
	time.AfterFunc(5*time.Second, func() {
		if err := mgr.Remove(id); err != nil {
			log.Printf("clipboard overlay cleanup: %v", err)
		}
	})
}
