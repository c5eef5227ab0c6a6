// Package geometry holds the placement math for the widget window.
package geometry

// Margin is the gap in pixels between the window's outer edge and the
// monitor edge. Fixed at design time.
const Margin = 14

// FallbackSize is substituted when the outer window size cannot be queried.
var FallbackSize = WindowSize{Width: 210, Height: 56}

// MonitorGeometry is the bounds of one display in the global coordinate
// space. It is a snapshot, queried on demand and never cached.
type MonitorGeometry struct {
	X      int
	Y      int
	Width  uint32
	Height uint32
}

// WindowSize is the outer pixel size of a window, decorations included.
type WindowSize struct {
	Width  uint32
	Height uint32
}

// Point is an absolute top-left coordinate in physical pixels.
type Point struct {
	X int
	Y int
}

// BottomRight returns the top-left coordinate that anchors a window of the
// given outer size to the monitor's bottom-right corner, margin pixels inside
// both edges. A window larger than the monitor yields a coordinate above or
// left of the monitor origin; that is accepted as-is, the caller is expected
// to supply a sane fallback size.
func BottomRight(mon MonitorGeometry, size WindowSize, margin int) Point {
	return Point{
		X: mon.X + int(mon.Width) - int(size.Width) - margin,
		Y: mon.Y + int(mon.Height) - int(size.Height) - margin,
	}
}
