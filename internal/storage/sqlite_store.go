package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/tasbihapp/tasbih/internal/models"
)

// SQLiteStore persists the four application documents in a single key-value
// table. The document layout is identical to the JSON backend; SQLite only
// supplies durable atomic replacement per write.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}

	if _, ok, err := s.getDoc(DocVersion); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.setDoc(DocVersion, strconv.Itoa(SchemaVersion)); err != nil {
		return err
	}
	return setSettingsDoc(s, models.DefaultSettings())
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'tasbih init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return checkVersionDoc(s)
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) getDoc(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM documents WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read document %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) setDoc(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(
		"INSERT INTO documents (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	return getSettingsDoc(s)
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	return setSettingsDoc(s, settings)
}

func (s *SQLiteStore) GetTasbihs() ([]models.Tasbih, error) {
	return getTasbihsDoc(s)
}

func (s *SQLiteStore) SaveTasbihs(tasbihs []models.Tasbih) error {
	return setTasbihsDoc(s, tasbihs)
}

func (s *SQLiteStore) GetActiveTasbihID() (string, error) {
	id, _, err := s.getDoc(DocActiveTasbihID)
	return id, err
}

func (s *SQLiteStore) SaveActiveTasbihID(id string) error {
	return s.setDoc(DocActiveTasbihID, id)
}

func (s *SQLiteStore) GetCompletionDates() ([]string, error) {
	return getDatesDoc(s)
}

func (s *SQLiteStore) SaveCompletionDates(dates []string) error {
	return setDatesDoc(s, dates)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
