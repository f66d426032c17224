package storage

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tasbihapp/tasbih/internal/models"
)

// docReader and docWriter are the primitive operations the SQL-backed
// stores implement; the typed document accessors below are shared.
type docReader interface {
	getDoc(key string) (string, bool, error)
}

type docWriter interface {
	setDoc(key, value string) error
}

func getSettingsDoc(r docReader) (models.Settings, error) {
	raw, ok, err := r.getDoc(DocSettings)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return models.DefaultSettings(), nil
	}
	var settings models.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to parse settings document: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func setSettingsDoc(w docWriter, settings models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings document: %w", err)
	}
	return w.setDoc(DocSettings, string(data))
}

func getTasbihsDoc(r docReader) ([]models.Tasbih, error) {
	raw, ok, err := r.getDoc(DocTasbihs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Tasbih{}, nil
	}
	var tasbihs []models.Tasbih
	if err := json.Unmarshal([]byte(raw), &tasbihs); err != nil {
		return nil, fmt.Errorf("failed to parse counters document: %w", err)
	}
	if tasbihs == nil {
		tasbihs = []models.Tasbih{}
	}
	return tasbihs, nil
}

func setTasbihsDoc(w docWriter, tasbihs []models.Tasbih) error {
	data, err := json.Marshal(tasbihs)
	if err != nil {
		return fmt.Errorf("failed to serialize counters document: %w", err)
	}
	return w.setDoc(DocTasbihs, string(data))
}

func getDatesDoc(r docReader) ([]string, error) {
	raw, ok, err := r.getDoc(DocCompletionDates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		return nil, fmt.Errorf("failed to parse completion dates document: %w", err)
	}
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

func setDatesDoc(w docWriter, dates []string) error {
	data, err := json.Marshal(dates)
	if err != nil {
		return fmt.Errorf("failed to serialize completion dates document: %w", err)
	}
	return w.setDoc(DocCompletionDates, string(data))
}

func checkVersionDoc(r docReader) error {
	raw, ok, err := r.getDoc(DocVersion)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("storage not initialized, run 'tasbih init' first")
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid storage version %q", raw)
	}
	if version > SchemaVersion {
		return fmt.Errorf("storage version %d is newer than this build supports (%d)", version, SchemaVersion)
	}
	return nil
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Credentials must come from the environment,
// .pgpass, or the OS keyring instead.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
