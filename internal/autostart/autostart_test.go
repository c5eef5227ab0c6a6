package autostart

import (
	"os"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigHome(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestRegister(t *testing.T) {
	setupConfigHome(t)

	entry := Entry{
		Name:    "perch",
		Exec:    "/usr/local/bin/perch",
		Comment: "Corner widget shell",
	}
	require.NoError(t, Register(entry))

	registered, err := Registered("perch")
	require.NoError(t, err)
	assert.True(t, registered)

	content, err := os.ReadFile(Path("perch"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[Desktop Entry]")
	assert.Contains(t, string(content), "Exec=/usr/local/bin/perch")
	assert.Contains(t, string(content), "Name=perch")
}

func TestRegisterReplacesExisting(t *testing.T) {
	setupConfigHome(t)

	require.NoError(t, Register(Entry{Name: "perch", Exec: "/old/perch"}))
	require.NoError(t, Register(Entry{Name: "perch", Exec: "/new/perch"}))

	content, err := os.ReadFile(Path("perch"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Exec=/new/perch")
	assert.NotContains(t, string(content), "/old/perch")
}

func TestUnregister(t *testing.T) {
	setupConfigHome(t)

	require.NoError(t, Register(Entry{Name: "perch", Exec: "/usr/local/bin/perch"}))
	require.NoError(t, Unregister("perch"))

	registered, err := Registered("perch")
	require.NoError(t, err)
	assert.False(t, registered)
}

func TestUnregisterMissingEntry(t *testing.T) {
	setupConfigHome(t)

	assert.NoError(t, Unregister("perch"))
}
