// Package api exposes the overlay manager over HTTP. Handlers translate
// between JSON and Manager calls; the envelope and routes mirror the MCP
// tool catalog so scripts can use either surface interchangeably.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"subs-overlay/overlay"
)

// Server wraps an echo instance bound to one Manager.
type Server struct {
	mgr  *overlay.Manager
	echo *echo.Echo
}

type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

func ok(data any) response {
	return response{Success: true, Data: data}
}

func fail(msg string) response {
	return response{Success: false, Error: msg}
}

func New(mgr *overlay.Manager) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{mgr: mgr, echo: e}

	e.POST("/overlays", s.createOverlay)
	e.GET("/overlays", s.listOverlays)
	e.DELETE("/overlays", s.clearOverlays)
	e.GET("/overlays/:id", s.getOverlay)
	e.PUT("/overlays/:id", s.updateOverlay)
	e.DELETE("/overlays/:id", s.removeOverlay)
	e.POST("/overlays/:id/show", s.showOverlay)
	e.POST("/overlays/:id/hide", s.hideOverlay)
	e.POST("/window/toggle-clickthrough", s.toggleClickThrough)
	e.PUT("/window/always-on-top", s.setAlwaysOnTop)
	e.GET("/status", s.status)

	return s
}

// Start blocks serving on addr until Shutdown.
func (s *Server) Start(addr string) error {
	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler returns the http.Handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// respondErr maps manager errors onto status codes. Queue and platform
// failures are reported as a generic internal error; details go to the log,
// not the client.
func respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, overlay.ErrNotFound):
		return c.JSON(http.StatusNotFound, fail(err.Error()))
	case overlay.IsInvalidInput(err):
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	default:
		log.Printf("api: internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, fail("internal error"))
	}
}

type overlayRecord struct {
	ID     string         `json:"id"`
	Config overlay.Config `json:"config"`
}

func (s *Server) createOverlay(c echo.Context) error {
	var cfg overlay.Config
	if err := c.Bind(&cfg); err != nil {
		return c.JSON(http.StatusBadRequest, fail("malformed request body"))
	}
	id, err := s.mgr.Create(cfg)
	if err != nil {
		return respondErr(c, err)
	}
	if err := s.mgr.Show(id); err != nil {
		log.Printf("api: overlay %s created but not shown: %v", id, err)
	}
	return c.JSON(http.StatusCreated, ok(overlayRecord{ID: id, Config: cfg}))
}

func (s *Server) listOverlays(c echo.Context) error {
	ids := s.mgr.IDs()
	records := make([]overlayRecord, 0, len(ids))
	for _, id := range ids {
		cfg, err := s.mgr.GetConfig(id)
		if err != nil {
			// Removed between IDs and GetConfig; skip.
			continue
		}
		records = append(records, overlayRecord{ID: id, Config: cfg})
	}
	return c.JSON(http.StatusOK, ok(records))
}

func (s *Server) getOverlay(c echo.Context) error {
	cfg, err := s.mgr.GetConfig(c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, ok(overlayRecord{ID: c.Param("id"), Config: cfg}))
}

func (s *Server) updateOverlay(c echo.Context) error {
	var u overlay.Update
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, fail("malformed request body"))
	}
	if err := s.mgr.Apply(c.Param("id"), u); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, ok(nil))
}

func (s *Server) removeOverlay(c echo.Context) error {
	if err := s.mgr.Remove(c.Param("id")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, ok(nil))
}

func (s *Server) clearOverlays(c echo.Context) error {
	s.mgr.Clear()
	return c.JSON(http.StatusOK, ok(nil))
}

func (s *Server) showOverlay(c echo.Context) error {
	if err := s.mgr.Show(c.Param("id")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, ok(nil))
}

func (s *Server) hideOverlay(c echo.Context) error {
	if err := s.mgr.Hide(c.Param("id")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, ok(nil))
}

func (s *Server) toggleClickThrough(c echo.Context) error {
	enabled, err := s.mgr.ToggleClickThrough()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, ok(map[string]bool{"click_through_enabled": enabled}))
}

type alwaysOnTopRequest struct {
	Enabled bool `json:"enabled"`
}

func (s *Server) setAlwaysOnTop(c echo.Context) error {
	var req alwaysOnTopRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("malformed request body"))
	}
	if err := s.mgr.SetAlwaysOnTop(req.Enabled); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, ok(map[string]bool{"always_on_top": req.Enabled}))
}

func (s *Server) status(c echo.Context) error {
	return c.JSON(http.StatusOK, ok(s.mgr.Status()))
}
