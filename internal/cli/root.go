package cli

import (
	"strings"

	"github.com/tasbihapp/tasbih/internal/backup"
	"github.com/tasbihapp/tasbih/internal/counter"
	"github.com/tasbihapp/tasbih/internal/feedback"
	"github.com/tasbihapp/tasbih/internal/logger"
	"github.com/tasbihapp/tasbih/internal/models"
	"github.com/tasbihapp/tasbih/internal/stats"
	"github.com/tasbihapp/tasbih/internal/storage"
)

type Context struct {
	Store    storage.Provider
	Counters *counter.Store
	Stats    *stats.Engine
	Feedback *feedback.Adapter
}

// Settings returns the current settings, falling back to defaults when the
// document cannot be read. Feedback and notification gates read through
// here so a broken settings document never blocks counting.
func (c *Context) Settings() models.Settings {
	settings, err := c.Store.GetSettings()
	if err != nil {
		logger.Warn("Failed to read settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// ResolveTasbih finds a counter by id or name; an empty ref means the active
// counter. Name matching is case-insensitive and returns the first match in
// list order. A nil result with nil error means nothing matched.
func (c *Context) ResolveTasbih(ref string) (*models.Tasbih, error) {
	if ref == "" {
		return c.Counters.Active()
	}

	tasbihs, err := c.Counters.List()
	if err != nil {
		return nil, err
	}
	for i := range tasbihs {
		if tasbihs[i].ID == ref {
			return &tasbihs[i], nil
		}
	}
	for i := range tasbihs {
		if strings.EqualFold(tasbihs[i].Name, ref) {
			return &tasbihs[i], nil
		}
	}
	return nil, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
