// Package progress persists the player's soul count between server runs.
package progress

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const soulsKey = "souls"

// Storage is the item store used for saves. *gdata.Manager satisfies it.
type Storage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Saved is the on-disk record.
type Saved struct {
	Souls int `json:"souls"`
	// Marker is the unrecovered soul drop, if any.
	Marker *SavedMarker `json:"marker,omitempty"`
}

type SavedMarker struct {
	Souls int     `json:"souls"`
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
}

type Store struct {
	storage Storage
}

// Open opens the gdata store for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("progress: open %s: %w", appName, err)
	}
	return New(m), nil
}

func New(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load returns the saved progress. A missing save is not an error and yields
// the zero value.
func (s *Store) Load() (Saved, error) {
	data, err := s.storage.LoadItem(soulsKey)
	if err != nil {
		return Saved{}, fmt.Errorf("progress: load: %w", err)
	}
	if data == nil {
		return Saved{}, nil
	}

	var saved Saved
	if err := json.Unmarshal(data, &saved); err != nil {
		return Saved{}, fmt.Errorf("progress: parse: %w", err)
	}
	return saved, nil
}

func (s *Store) Save(saved Saved) error {
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("progress: encode: %w", err)
	}
	if err := s.storage.SaveItem(soulsKey, data); err != nil {
		return fmt.Errorf("progress: save: %w", err)
	}
	return nil
}
