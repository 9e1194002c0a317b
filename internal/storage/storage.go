// /internal/storage/storage.go
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/keshon/datastore"
)

const settingsKey = "settings"

// Settings are the user-tunable presentation toggles, persisted between
// runs and mutated from the UI menu.
type Settings struct {
	Notifications bool `json:"notifications"`
	Sound         bool `json:"sound"`
}

type Storage struct {
	ds *datastore.DataStore
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// GetSettings returns the persisted settings, seeding the store with the
// given defaults on first run.
func (s *Storage) GetSettings(defaults Settings) (Settings, error) {
	data, exists := s.ds.Get(settingsKey)
	if !exists {
		s.ds.Add(settingsKey, defaults)
		return defaults, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return defaults, fmt.Errorf("error marshalling data: %w", err)
	}

	var set Settings
	if err := json.Unmarshal(jsonData, &set); err != nil {
		return defaults, fmt.Errorf("error unmarshalling to Settings: %w", err)
	}
	return set, nil
}

func (s *Storage) SetSettings(set Settings) error {
	s.ds.Add(settingsKey, set)
	return s.ds.SaveToFile()
}
