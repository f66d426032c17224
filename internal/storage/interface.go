package storage

import "github.com/tasbihapp/tasbih/internal/models"

// Document keys. Every backend persists the same four JSON documents under
// these keys; each save replaces the whole document atomically.
const (
	DocSettings        = "settings"
	DocTasbihs         = "tasbihs"
	DocActiveTasbihID  = "active_tasbih_id"
	DocCompletionDates = "completion_dates"
	DocVersion         = "version"
)

// SchemaVersion is the current document layout version.
const SchemaVersion = 1

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Counters
	GetTasbihs() ([]models.Tasbih, error)
	SaveTasbihs([]models.Tasbih) error

	// Active counter pointer ("" means none)
	GetActiveTasbihID() (string, error)
	SaveActiveTasbihID(string) error

	// Completion dates (YYYY-MM-DD, deduplicated by calendar day)
	GetCompletionDates() ([]string, error)
	SaveCompletionDates([]string) error

	// Utils
	GetConfigPath() string
}
