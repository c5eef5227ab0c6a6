package config

import "github.com/google/uuid"

type Driver interface {
	Exists() (bool, error)
	Write(config Config) error
	Read() (Config, error)
}

func NewStore(driver Driver) (Store, error) {
	exists, err := driver.Exists()
	if err != nil {
		return Store{}, err
	}
	if !exists {
		if err := driver.Write(defaultConfig); err != nil {
			return Store{}, err
		}
	}

	return Store{
		driver: driver,
	}, nil
}

type Store struct {
	driver Driver
}

func (s Store) GetConfig() (Config, error) {
	return s.driver.Read()
}

func (s Store) UpdateConfig(fn func(cfg Config) (Config, error)) error {
	cfg, err := s.driver.Read()
	if err != nil {
		return err
	}

	cfg, err = fn(cfg)
	if err != nil {
		return err
	}

	return s.driver.Write(cfg)
}

// Normalize assigns a stable UUID to the widget on first run and fills in
// fields that must never be empty.
func Normalize(store Store) error {
	return store.UpdateConfig(func(cfg Config) (Config, error) {
		if cfg.Widget.UUID == "" {
			cfg.Widget.UUID = uuid.NewString()
		}
		if cfg.Widget.Title == "" {
			cfg.Widget.Title = defaultConfig.Widget.Title
		}
		return cfg, nil
	})
}
