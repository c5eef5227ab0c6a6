package display

import (
	"fmt"
	"log/slog"

	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"github.com/perchwm/perch/internal/geometry"
)

// CurrentMonitor resolves the monitor containing the window's center. With
// RandR available it walks the active CRTCs; otherwise the whole X screen
// stands in for a single monitor.
func (d *Display) CurrentMonitor(wid xproto.Window) (geometry.MonitorGeometry, error) {
	geom, err := xproto.GetGeometry(d.conn, xproto.Drawable(wid)).Reply()
	if err != nil {
		return geometry.MonitorGeometry{}, fmt.Errorf("%w: %w", ErrMonitorUnresolved, err)
	}

	trans, err := xproto.TranslateCoordinates(d.conn, wid, d.screen.Root, 0, 0).Reply()
	if err != nil {
		return geometry.MonitorGeometry{}, fmt.Errorf("%w: %w", ErrMonitorUnresolved, err)
	}

	cx := int(trans.DstX) + int(geom.Width)/2
	cy := int(trans.DstY) + int(geom.Height)/2

	if d.randr {
		mon, err := d.monitorAt(cx, cy)
		if err == nil {
			return mon, nil
		}
		slog.Debug("RandR monitor resolution failed, falling back to the X screen", "error", err)
	}

	return geometry.MonitorGeometry{
		X:      0,
		Y:      0,
		Width:  uint32(d.screen.WidthInPixels),
		Height: uint32(d.screen.HeightInPixels),
	}, nil
}

// monitorAt returns the geometry of the active CRTC containing the point, or
// the first active CRTC when the point is outside every monitor.
func (d *Display) monitorAt(x, y int) (geometry.MonitorGeometry, error) {
	res, err := randr.GetScreenResourcesCurrent(d.conn, d.screen.Root).Reply()
	if err != nil {
		return geometry.MonitorGeometry{}, fmt.Errorf("%w: %w", ErrMonitorUnresolved, err)
	}

	var first *geometry.MonitorGeometry
	for _, crtc := range res.Crtcs {
		info, err := randr.GetCrtcInfo(d.conn, crtc, res.ConfigTimestamp).Reply()
		if err != nil || info.Mode == 0 || info.NumOutputs == 0 {
			continue
		}

		mon := geometry.MonitorGeometry{
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  uint32(info.Width),
			Height: uint32(info.Height),
		}
		if first == nil {
			first = &mon
		}

		if x >= mon.X && x < mon.X+int(mon.Width) && y >= mon.Y && y < mon.Y+int(mon.Height) {
			return mon, nil
		}
	}

	if first != nil {
		return *first, nil
	}
	return geometry.MonitorGeometry{}, ErrMonitorUnresolved
}
