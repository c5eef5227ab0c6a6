package api

import (
	"context"
	"sync"

	"github.com/perchwm/perch/internal/bus"
	"github.com/perchwm/perch/internal/winstate"
)

func NewStatus(widgetUUID string) *Status {
	return &Status{
		uuid: widgetUUID,
	}
}

// Status tracks the widget's last known geometry for the status operation.
type Status struct {
	mu     sync.Mutex
	uuid   string
	window *winstate.Record
}

func (s *Status) Register() *Status {
	bus.Subscribe("api.Status", func(ctx context.Context, event winstate.EventWindowMoved) error {
		record := winstate.Record(event)

		s.mu.Lock()
		s.window = &record
		s.mu.Unlock()
		return nil
	})
	return s
}

func (s *Status) snapshot() (string, *winstate.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.window == nil {
		return s.uuid, nil
	}
	window := *s.window
	return s.uuid, &window
}
