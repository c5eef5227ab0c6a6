// Package winstate persists the widget window's last geometry across runs.
// Restore happens at window creation, before the one-shot corner placement,
// so an enabled placement deterministically wins over the restored position.
package winstate

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/perchwm/perch/internal/bus"
)

// EventWindowMoved is published by the shell whenever the window's geometry
// changes, from any source: the user, the window manager or the one-shot
// placement.
type EventWindowMoved struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Record is the persisted window geometry.
type Record struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func DefaultPath() string {
	return filepath.Join(xdg.StateHome, "perch", "window-state.json")
}

func NewStore(filePath string) Store {
	return Store{
		filePath: filePath,
	}
}

type Store struct {
	filePath string
}

// Load returns the saved record and whether one exists.
func (s Store) Load() (Record, bool, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}
	defer file.Close()

	var record Record
	if err := json.NewDecoder(file).Decode(&record); err != nil {
		return Record{}, false, err
	}
	return record, true, nil
}

func (s Store) Save(record Record) error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}

	filePathTmp := s.filePath + ".tmp"
	file, err := os.OpenFile(filePathTmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(file).Encode(record); err != nil {
		file.Close()
		return err
	}
	file.Close()

	return os.Rename(filePathTmp, s.filePath)
}

// Watch saves the window geometry on every move event.
func Watch(store Store) {
	bus.Subscribe("winstate.Watch", func(ctx context.Context, event EventWindowMoved) error {
		return store.Save(Record(event))
	})
}
