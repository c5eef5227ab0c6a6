// Package shell owns the widget window: it creates it with the restored
// geometry, runs the one-shot lifecycle startup and then pumps X events
// until the window goes away.
package shell

import (
	"context"
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/perchwm/perch/internal/bus"
	"github.com/perchwm/perch/internal/config"
	"github.com/perchwm/perch/internal/display"
	"github.com/perchwm/perch/internal/geometry"
	"github.com/perchwm/perch/internal/lifecycle"
	"github.com/perchwm/perch/internal/winstate"
	"github.com/thejerf/suture/v4"
)

func New(conn *xgb.Conn, widget config.Widget, states winstate.Store, restore bool) Shell {
	return Shell{
		conn:    conn,
		widget:  widget,
		states:  states,
		restore: restore,
	}
}

type Shell struct {
	conn    *xgb.Conn
	widget  config.Widget
	states  winstate.Store
	restore bool
}

func (s Shell) String() string {
	return "shell.Shell(" + s.widget.Title + ")"
}

func (s Shell) Serve(ctx context.Context) error {
	disp, err := display.New(s.conn)
	if err != nil {
		return err
	}

	pos, size := s.initialGeometry()
	wid, err := disp.CreateWindow(s.widget.Title, pos, size)
	if err != nil {
		return err
	}
	defer disp.DestroyWindow(wid)

	// Restore ran first (through initialGeometry), so when repositioning is
	// enabled the corner placement wins over the persisted position.
	lifecycle.NewController(disp, s.widget.Title, s.widget.Reposition).Startup(ctx)

	eventC := make(chan xgb.Event)
	go s.receiveEvents(ctx, eventC)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventC:
			if !ok {
				return suture.ErrTerminateSupervisorTree
			}

			switch ev := ev.(type) {
			case xproto.ConfigureNotifyEvent:
				if ev.Window == wid {
					bus.Publish(winstate.EventWindowMoved{
						X:      int(ev.X),
						Y:      int(ev.Y),
						Width:  int(ev.Width),
						Height: int(ev.Height),
					})
				}
			case xproto.DestroyNotifyEvent:
				if ev.Window == wid {
					slog.Info("Widget window destroyed")
					return suture.ErrTerminateSupervisorTree
				}
			}
		}
	}
}

func (s Shell) initialGeometry() (geometry.Point, geometry.WindowSize) {
	pos, size := geometry.Point{}, geometry.FallbackSize
	if !s.restore {
		return pos, size
	}

	record, ok, err := s.states.Load()
	if err != nil {
		slog.Warn("Failed to load persisted window state", "error", err)
		return pos, size
	}
	if !ok || record.Width <= 0 || record.Height <= 0 {
		return pos, size
	}

	return geometry.Point{X: record.X, Y: record.Y},
		geometry.WindowSize{Width: uint32(record.Width), Height: uint32(record.Height)}
}

func (s Shell) receiveEvents(ctx context.Context, eventC chan<- xgb.Event) {
	defer close(eventC)

	for {
		ev, err := s.conn.WaitForEvent()
		if ev == nil && err == nil {
			slog.Debug("X connection closed")
			return
		}
		if err != nil {
			slog.Error("Failed to wait for X event", "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return
		case eventC <- ev:
		}
	}
}
