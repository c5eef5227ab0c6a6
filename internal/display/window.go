package display

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/perchwm/perch/internal/geometry"
	"github.com/perchwm/perch/xcursor"
)

// CreateWindow creates and maps the undecorated widget window at the given
// position. Decorations are disabled through Motif hints so the outer size
// equals the client size under most window managers.
func (d *Display) CreateWindow(title string, pos geometry.Point, size geometry.WindowSize) (xproto.Window, error) {
	cursor, err := xcursor.CreateCursor(d.conn, xcursor.LeftPtr)
	if err != nil {
		return 0, err
	}

	wid, err := xproto.NewWindowId(d.conn)
	if err != nil {
		return 0, err
	}

	if err := xproto.CreateWindowChecked(d.conn, d.screen.RootDepth,
		wid, d.screen.Root,
		int16(pos.X), int16(pos.Y), uint16(size.Width), uint16(size.Height), 0,
		xproto.WindowClassInputOutput, d.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask|xproto.CwCursor, // 1, 2, 3
		[]uint32{
			0, // 1
			xproto.EventMaskStructureNotify | xproto.EventMaskButtonPress, // 2
			uint32(cursor), // 3
		}).Check(); err != nil {
		return 0, err
	}

	if err := d.setTitle(wid, title); err != nil {
		return 0, err
	}

	if err := d.disableDecorations(wid); err != nil {
		return 0, err
	}

	if err := xproto.MapWindowChecked(d.conn, wid).Check(); err != nil {
		return 0, err
	}

	return wid, nil
}

func (d *Display) DestroyWindow(wid xproto.Window) {
	xproto.DestroyWindow(d.conn, wid)
}

func (d *Display) setTitle(wid xproto.Window, title string) error {
	if err := xproto.ChangePropertyChecked(d.conn, xproto.PropModeReplace, wid,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title)).Check(); err != nil {
		return err
	}
	return xproto.ChangePropertyChecked(d.conn, xproto.PropModeReplace, wid,
		d.atoms.netWMName, d.atoms.utf8String, 8, uint32(len(title)), []byte(title)).Check()
}

// disableDecorations sets Motif hints with the decorations flag and no
// decorations, which every mainstream window manager honors.
func (d *Display) disableDecorations(wid xproto.Window) error {
	hints := make([]byte, 20)
	xgb.Put32(hints[0:], 2) // MWM_HINTS_DECORATIONS
	return xproto.ChangePropertyChecked(d.conn, xproto.PropModeReplace, wid,
		d.atoms.motifWMHints, d.atoms.motifWMHints, 32, 5, hints).Check()
}

// LookupWindow resolves a mapped window by its title, searching the window
// manager's client list.
func (d *Display) LookupWindow(title string) (xproto.Window, error) {
	reply, err := xproto.GetProperty(d.conn, false, d.screen.Root,
		d.atoms.netClientList, xproto.AtomWindow, 0, 1<<12).Reply()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWindowNotFound, err)
	}

	for i := 0; i+4 <= len(reply.Value); i += 4 {
		wid := xproto.Window(xgb.Get32(reply.Value[i:]))
		name, err := d.windowTitle(wid)
		if err != nil {
			continue
		}
		if name == title {
			return wid, nil
		}
	}

	return 0, ErrWindowNotFound
}

func (d *Display) windowTitle(wid xproto.Window) (string, error) {
	reply, err := xproto.GetProperty(d.conn, false, wid,
		d.atoms.netWMName, d.atoms.utf8String, 0, 1<<10).Reply()
	if err == nil && len(reply.Value) > 0 {
		return string(reply.Value), nil
	}

	reply, err = xproto.GetProperty(d.conn, false, wid,
		xproto.AtomWmName, xproto.AtomString, 0, 1<<10).Reply()
	if err != nil {
		return "", err
	}
	return string(reply.Value), nil
}

// SetAlwaysOnTop asks the window manager to keep the window above the
// normal layer, through a _NET_WM_STATE client message.
func (d *Display) SetAlwaysOnTop(wid xproto.Window, above bool) error {
	action := uint32(0) // _NET_WM_STATE_REMOVE
	if above {
		action = 1 // _NET_WM_STATE_ADD
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: wid,
		Type:   d.atoms.netWMState,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			action,
			uint32(d.atoms.netWMStateAbove),
			0,
			1, // source is a normal application
			0,
		}),
	}

	if err := xproto.SendEventChecked(d.conn, false, d.screen.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes())).Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrAlwaysOnTopApply, err)
	}
	return nil
}

// OuterSize returns the window size including window manager decorations,
// read from _NET_FRAME_EXTENTS when the window manager publishes them.
func (d *Display) OuterSize(wid xproto.Window) (geometry.WindowSize, error) {
	geom, err := xproto.GetGeometry(d.conn, xproto.Drawable(wid)).Reply()
	if err != nil {
		return geometry.WindowSize{}, fmt.Errorf("%w: %w", ErrSizeQuery, err)
	}

	size := geometry.WindowSize{
		Width:  uint32(geom.Width),
		Height: uint32(geom.Height),
	}

	if reply, err := xproto.GetProperty(d.conn, false, wid,
		d.atoms.netFrameExtents, xproto.AtomCardinal, 0, 4).Reply(); err == nil && len(reply.Value) >= 16 {
		left, right := xgb.Get32(reply.Value[0:]), xgb.Get32(reply.Value[4:])
		top, bottom := xgb.Get32(reply.Value[8:]), xgb.Get32(reply.Value[12:])
		size.Width += left + right
		size.Height += top + bottom
	}

	if size.Width == 0 || size.Height == 0 {
		return geometry.WindowSize{}, ErrSizeQuery
	}

	return size, nil
}

// SetPosition moves the window to an absolute position in physical root
// coordinates.
func (d *Display) SetPosition(wid xproto.Window, pos geometry.Point) error {
	if err := xproto.ConfigureWindowChecked(d.conn, wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(pos.X)), uint32(int32(pos.Y))}).Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrPositionApply, err)
	}
	return nil
}
