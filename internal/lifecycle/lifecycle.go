// Package lifecycle runs the one-shot startup routine for the widget
// window: set always-on-top and, when repositioning is enabled, anchor the
// window to the bottom-right corner of its monitor.
//
// Every step is best-effort. A failed step ends the remainder of the
// sequence (or is skipped over, where later steps do not depend on it) and
// the application keeps running; window placement is cosmetic and must
// never block or crash startup.
package lifecycle

import (
	"context"
	"log/slog"

	"github.com/jezek/xgb/xproto"
	"github.com/perchwm/perch/internal/geometry"
)

// Display is the subset of the display service the controller needs. All
// calls are synchronous, in-process queries.
type Display interface {
	LookupWindow(title string) (xproto.Window, error)
	SetAlwaysOnTop(wid xproto.Window, above bool) error
	CurrentMonitor(wid xproto.Window) (geometry.MonitorGeometry, error)
	OuterSize(wid xproto.Window) (geometry.WindowSize, error)
	SetPosition(wid xproto.Window, pos geometry.Point) error
}

func NewController(display Display, title string, reposition bool) *Controller {
	return &Controller{
		display:    display,
		title:      title,
		reposition: reposition,
		margin:     geometry.Margin,
		fallback:   geometry.FallbackSize,
	}
}

type Controller struct {
	display    Display
	title      string
	reposition bool
	margin     int
	fallback   geometry.WindowSize
}

// Startup runs the startup sequence exactly once. It never returns an
// error; failures are logged and absorbed.
func (c *Controller) Startup(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	var wid xproto.Window
	if !attempt("lookup window", func() error {
		var err error
		wid, err = c.display.LookupWindow(c.title)
		return err
	}) {
		return
	}

	attempt("set always-on-top", func() error {
		return c.display.SetAlwaysOnTop(wid, true)
	})

	if !c.reposition {
		return
	}

	var mon geometry.MonitorGeometry
	if !attempt("resolve monitor", func() error {
		var err error
		mon, err = c.display.CurrentMonitor(wid)
		return err
	}) {
		return
	}

	size := c.fallback
	attempt("query outer size", func() error {
		queried, err := c.display.OuterSize(wid)
		if err != nil {
			return err
		}
		size = queried
		return nil
	})

	pos := geometry.BottomRight(mon, size, c.margin)
	if attempt("apply position", func() error {
		return c.display.SetPosition(wid, pos)
	}) {
		slog.Debug("Anchored widget window", "x", pos.X, "y", pos.Y, "width", size.Width, "height", size.Height)
	}
}

// attempt runs a fallible startup step and absorbs its error.
func attempt(step string, fn func() error) bool {
	if err := fn(); err != nil {
		slog.Debug("Skipped best-effort startup step", "step", step, "error", err)
		return false
	}
	return true
}
