package storage

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/lib/pq"

	"github.com/tasbihapp/tasbih/internal/models"
)

// PostgresStore is the same key-value document layout as the SQLite backend
// over a PostgreSQL connection, for users who keep their counters on a
// shared host. Connection strings must not embed credentials; see
// HasEmbeddedCredentials.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS tasbih_documents (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}

	if _, ok, err := s.getDoc(DocVersion); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("storage already initialized")
	}

	if err := s.setDoc(DocVersion, strconv.Itoa(SchemaVersion)); err != nil {
		return err
	}
	return setSettingsDoc(s, models.DefaultSettings())
}

func (s *PostgresStore) Load() error {
	if err := s.open(); err != nil {
		return err
	}
	return checkVersionDoc(s)
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) getDoc(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM tasbih_documents WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read document %q: %w", key, err)
	}
	return value, true, nil
}

func (s *PostgresStore) setDoc(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(
		"INSERT INTO tasbih_documents (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) GetSettings() (models.Settings, error) {
	return getSettingsDoc(s)
}

func (s *PostgresStore) SaveSettings(settings models.Settings) error {
	return setSettingsDoc(s, settings)
}

func (s *PostgresStore) GetTasbihs() ([]models.Tasbih, error) {
	return getTasbihsDoc(s)
}

func (s *PostgresStore) SaveTasbihs(tasbihs []models.Tasbih) error {
	return setTasbihsDoc(s, tasbihs)
}

func (s *PostgresStore) GetActiveTasbihID() (string, error) {
	id, _, err := s.getDoc(DocActiveTasbihID)
	return id, err
}

func (s *PostgresStore) SaveActiveTasbihID(id string) error {
	return s.setDoc(DocActiveTasbihID, id)
}

func (s *PostgresStore) GetCompletionDates() ([]string, error) {
	return getDatesDoc(s)
}

func (s *PostgresStore) SaveCompletionDates(dates []string) error {
	return setDatesDoc(s, dates)
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
