package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreWritesDefaultConfig(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "perch.yaml")

	store, err := NewStore(NewYAML(filePath))
	require.NoError(t, err)

	cfg, err := store.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, cfg)
	assert.FileExists(t, filePath)
}

func TestStoreRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name   string
		driver func(filePath string) Driver
	}{
		{"yaml", func(filePath string) Driver { return NewYAML(filePath) }},
		{"json", func(filePath string) Driver { return NewJSON(filePath) }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(t.TempDir(), "perch."+tt.name)

			store, err := NewStore(tt.driver(filePath))
			require.NoError(t, err)

			err = store.UpdateConfig(func(cfg Config) (Config, error) {
				cfg.Widget.Title = "clock"
				cfg.Widget.Reposition = false
				cfg.Autostart.Enabled = false
				return cfg, nil
			})
			require.NoError(t, err)

			cfg, err := store.GetConfig()
			require.NoError(t, err)
			assert.Equal(t, "clock", cfg.Widget.Title)
			assert.False(t, cfg.Widget.Reposition)
			assert.False(t, cfg.Autostart.Enabled)
		})
	}
}

func TestNormalizeAssignsStableUUID(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "perch.yaml")

	store, err := NewStore(NewYAML(filePath))
	require.NoError(t, err)

	require.NoError(t, Normalize(store))

	cfg, err := store.GetConfig()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Widget.UUID)

	require.NoError(t, Normalize(store))

	cfg2, err := store.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg.Widget.UUID, cfg2.Widget.UUID)
}

func TestNormalizeFillsTitle(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "perch.yaml")

	store, err := NewStore(NewYAML(filePath))
	require.NoError(t, err)

	err = store.UpdateConfig(func(cfg Config) (Config, error) {
		cfg.Widget.Title = ""
		return cfg, nil
	})
	require.NoError(t, err)

	require.NoError(t, Normalize(store))

	cfg, err := store.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "perch", cfg.Widget.Title)
}
