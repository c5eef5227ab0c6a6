package shell

import (
	"path/filepath"
	"testing"

	"github.com/perchwm/perch/internal/config"
	"github.com/perchwm/perch/internal/geometry"
	"github.com/perchwm/perch/internal/winstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialGeometryWithoutRestore(t *testing.T) {
	states := winstate.NewStore(filepath.Join(t.TempDir(), "window-state.json"))
	require.NoError(t, states.Save(winstate.Record{X: 100, Y: 200, Width: 300, Height: 400}))

	s := New(nil, config.Widget{Title: "perch"}, states, false)

	pos, size := s.initialGeometry()
	assert.Equal(t, geometry.Point{}, pos)
	assert.Equal(t, geometry.FallbackSize, size)
}

func TestInitialGeometryRestoresRecord(t *testing.T) {
	states := winstate.NewStore(filepath.Join(t.TempDir(), "window-state.json"))
	require.NoError(t, states.Save(winstate.Record{X: 1696, Y: 1010, Width: 210, Height: 56}))

	s := New(nil, config.Widget{Title: "perch"}, states, true)

	pos, size := s.initialGeometry()
	assert.Equal(t, geometry.Point{X: 1696, Y: 1010}, pos)
	assert.Equal(t, geometry.WindowSize{Width: 210, Height: 56}, size)
}

func TestInitialGeometryMissingRecord(t *testing.T) {
	states := winstate.NewStore(filepath.Join(t.TempDir(), "window-state.json"))

	s := New(nil, config.Widget{Title: "perch"}, states, true)

	pos, size := s.initialGeometry()
	assert.Equal(t, geometry.Point{}, pos)
	assert.Equal(t, geometry.FallbackSize, size)
}

func TestInitialGeometryRejectsDegenerateSize(t *testing.T) {
	states := winstate.NewStore(filepath.Join(t.TempDir(), "window-state.json"))
	require.NoError(t, states.Save(winstate.Record{X: 50, Y: 60, Width: 0, Height: 0}))

	s := New(nil, config.Widget{Title: "perch"}, states, true)

	_, size := s.initialGeometry()
	assert.Equal(t, geometry.FallbackSize, size, "a degenerate record must never produce a zero-sized window")
}
