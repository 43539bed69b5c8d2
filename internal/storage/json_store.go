package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/datepick/internal/models"
)

type Store struct {
	Version int                      `json:"version"`
	Presets map[string]models.Preset `json:"presets"`
}

// JSONStore keeps presets in one human-editable JSON file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple datepick processes that share the same config path
//     at the same time is not supported and may lead to data loss.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Presets: make(map[string]models.Preset),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'datepick init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Presets == nil {
		s.store.Presets = make(map[string]models.Preset)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) SavePreset(preset models.Preset) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Presets[preset.Name] = preset
	return s.save()
}

func (s *JSONStore) GetPreset(name string) (models.Preset, error) {
	if s.store == nil {
		return models.Preset{}, fmt.Errorf("storage not loaded")
	}

	preset, ok := s.store.Presets[name]
	if !ok {
		return models.Preset{}, fmt.Errorf("preset not found: %s", name)
	}

	return preset, nil
}

func (s *JSONStore) GetAllPresets() ([]models.Preset, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	presets := make([]models.Preset, 0, len(s.store.Presets))
	for _, preset := range s.store.Presets {
		presets = append(presets, preset)
	}

	return presets, nil
}

func (s *JSONStore) DeletePreset(name string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Presets[name]; !ok {
		return fmt.Errorf("preset not found: %s", name)
	}

	delete(s.store.Presets, name)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
