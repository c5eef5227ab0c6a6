// Package display is the X11 display service. It owns every interaction
// with the X server: window creation and lookup, always-on-top, outer
// geometry queries and absolute positioning.
package display

import (
	"errors"
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

var (
	ErrWindowNotFound    = errors.New("window not found")
	ErrMonitorUnresolved = errors.New("monitor unresolved")
	ErrSizeQuery         = errors.New("window size query failed")
	ErrPositionApply     = errors.New("window position apply failed")
	ErrAlwaysOnTopApply  = errors.New("always-on-top apply failed")
)

type Display struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
	randr  bool
	atoms  atoms
}

func New(conn *xgb.Conn) (*Display, error) {
	d := &Display{
		conn:   conn,
		screen: xproto.Setup(conn).DefaultScreen(conn),
	}

	var err error
	d.atoms, err = internAtoms(conn)
	if err != nil {
		return nil, err
	}

	if err := randr.Init(conn); err != nil {
		slog.Debug("RandR extension unavailable, monitor resolution falls back to the X screen", "error", err)
	} else {
		d.randr = true
	}

	return d, nil
}

type atoms struct {
	netWMState      xproto.Atom
	netWMStateAbove xproto.Atom
	netWMName       xproto.Atom
	netClientList   xproto.Atom
	netFrameExtents xproto.Atom
	utf8String      xproto.Atom
	motifWMHints    xproto.Atom
}

func internAtoms(conn *xgb.Conn) (atoms, error) {
	intern := func(name string) (xproto.Atom, error) {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return 0, err
		}
		return reply.Atom, nil
	}

	var a atoms
	var err error
	for _, atom := range []struct {
		name string
		dst  *xproto.Atom
	}{
		{"_NET_WM_STATE", &a.netWMState},
		{"_NET_WM_STATE_ABOVE", &a.netWMStateAbove},
		{"_NET_WM_NAME", &a.netWMName},
		{"_NET_CLIENT_LIST", &a.netClientList},
		{"_NET_FRAME_EXTENTS", &a.netFrameExtents},
		{"UTF8_STRING", &a.utf8String},
		{"_MOTIF_WM_HINTS", &a.motifWMHints},
	} {
		*atom.dst, err = intern(atom.name)
		if err != nil {
			return atoms{}, err
		}
	}

	return a, nil
}
