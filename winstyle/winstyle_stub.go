//go:build !windows

package winstyle

type stubStyler struct{}

func newStyler() Styler { return stubStyler{} }

func (stubStyler) SetLayered(h Handle) error                  { return ErrUnsupported }
func (stubStyler) SetClickThrough(h Handle, enabled bool) error { return ErrUnsupported }
func (stubStyler) SetLayerAlpha(h Handle, alpha uint8) error  { return ErrUnsupported }
func (stubStyler) SetTopmost(h Handle, enabled bool) error    { return ErrUnsupported }
func (stubStyler) SetPosition(h Handle, x, y int) error       { return ErrUnsupported }
