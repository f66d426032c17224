package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tasbihapp/tasbih/internal/models"
)

// Store is the on-disk document layout of the JSON backend.
type Store struct {
	Version         int             `json:"version"`
	Settings        models.Settings `json:"settings"`
	Tasbihs         []models.Tasbih `json:"tasbihs"`
	ActiveTasbihID  string          `json:"active_tasbih_id"`
	CompletionDates []string        `json:"completion_dates"`
}

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
		Version:         SchemaVersion,
		Settings:        models.DefaultSettings(),
		Tasbihs:         []models.Tasbih{},
		CompletionDates: []string{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tasbih init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Version > SchemaVersion {
		return fmt.Errorf("storage version %d is newer than this build supports (%d)", s.store.Version, SchemaVersion)
	}

	// Ensure slices are initialized and older documents get current defaults
	if s.store.Tasbihs == nil {
		s.store.Tasbihs = []models.Tasbih{}
	}
	if s.store.CompletionDates == nil {
		s.store.CompletionDates = []string{}
	}
	models.ApplyDefaultSettings(&s.store.Settings)

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

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetTasbihs() ([]models.Tasbih, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	tasbihs := make([]models.Tasbih, len(s.store.Tasbihs))
	copy(tasbihs, s.store.Tasbihs)
	return tasbihs, nil
}

func (s *JSONStore) SaveTasbihs(tasbihs []models.Tasbih) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Tasbihs = tasbihs
	return s.save()
}

func (s *JSONStore) GetActiveTasbihID() (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	return s.store.ActiveTasbihID, nil
}

func (s *JSONStore) SaveActiveTasbihID(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.ActiveTasbihID = id
	return s.save()
}

func (s *JSONStore) GetCompletionDates() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	dates := make([]string, len(s.store.CompletionDates))
	copy(dates, s.store.CompletionDates)
	return dates, nil
}

func (s *JSONStore) SaveCompletionDates(dates []string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.CompletionDates = dates
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
