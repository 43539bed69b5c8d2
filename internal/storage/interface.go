package storage

import "github.com/julianstephens/datepick/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Presets
	SavePreset(models.Preset) error
	GetPreset(name string) (models.Preset, error)
	GetAllPresets() ([]models.Preset, error)
	DeletePreset(name string) error

	// Utils
	GetConfigPath() string
}
