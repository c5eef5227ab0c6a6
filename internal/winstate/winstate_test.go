package winstate

import (
	"path/filepath"
	"testing"

	"github.com/perchwm/perch/internal/bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "window-state.json"))

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "window-state.json"))

	want := Record{X: 1696, Y: 1010, Width: 210, Height: 56}
	require.NoError(t, store.Save(want))

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "window-state.json"))

	require.NoError(t, store.Save(Record{X: 1, Y: 2, Width: 3, Height: 4}))
	require.NoError(t, store.Save(Record{X: 5, Y: 6, Width: 7, Height: 8}))

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Record{X: 5, Y: 6, Width: 7, Height: 8}, got)
}

func TestWatchSavesOnMoveEvent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "window-state.json"))
	Watch(store)

	bus.Publish(EventWindowMoved{X: 2976, Y: 954, Width: 210, Height: 56})

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Record{X: 2976, Y: 954, Width: 210, Height: 56}, got)
}
