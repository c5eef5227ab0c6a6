package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/perchwm/perch/internal/bus"
	"github.com/perchwm/perch/internal/config"
	"github.com/perchwm/perch/internal/winstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminateCommand(t *testing.T) {
	terminated := false
	server := NewServer("", config.Widget{TerminateCommand: true}, NewStatus("test"), func() {
		terminated = true
	})

	_, api := humatest.New(t)
	server.register(api)

	resp := api.Post("/api/terminate")
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.True(t, terminated)
}

func TestTerminateCommandDisabled(t *testing.T) {
	terminated := false
	server := NewServer("", config.Widget{TerminateCommand: false}, NewStatus("test"), func() {
		terminated = true
	})

	_, api := humatest.New(t)
	server.register(api)

	resp := api.Post("/api/terminate")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.False(t, terminated)
}

func TestStatus(t *testing.T) {
	status := NewStatus("widget-uuid").Register()
	server := NewServer("", config.Widget{TerminateCommand: true}, status, func() {})

	_, api := humatest.New(t)
	server.register(api)

	resp := api.Get("/api/status")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		UUID   string           `json:"uuid"`
		Window *winstate.Record `json:"window"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "widget-uuid", body.UUID)
	assert.Nil(t, body.Window, "no geometry before the first move event")

	bus.Publish(winstate.EventWindowMoved{X: 1696, Y: 1010, Width: 210, Height: 56})

	resp = api.Get("/api/status")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotNil(t, body.Window)
	assert.Equal(t, winstate.Record{X: 1696, Y: 1010, Width: 210, Height: 56}, *body.Window)
}
