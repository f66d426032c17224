package settings

import (
	"path/filepath"
	"testing"

	"github.com/tasbihapp/tasbih/internal/cli"
	"github.com/tasbihapp/tasbih/internal/storage"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "tasbih.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init storage: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load storage: %v", err)
	}
	return &cli.Context{Store: store}
}

func boolPtr(v bool) *bool    { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestSettingsUpdate(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SettingsCmd{
		Sound:            boolPtr(false),
		Reminder:         boolPtr(true),
		ReminderInterval: intPtr(30),
		Theme:            strPtr("light"),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() returned error: %v", err)
	}
	if settings.SoundEnabled {
		t.Error("SoundEnabled should be false")
	}
	if !settings.ReminderEnabled {
		t.Error("ReminderEnabled should be true")
	}
	if settings.ReminderIntervalMin != 30 {
		t.Errorf("ReminderIntervalMin = %d, want 30", settings.ReminderIntervalMin)
	}
	if settings.Theme != "light" {
		t.Errorf("Theme = %q, want light", settings.Theme)
	}
	// Untouched fields keep their defaults
	if !settings.VibrationEnabled {
		t.Error("VibrationEnabled should stay at its default")
	}
}

func TestSettingsRejectsBadInterval(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SettingsCmd{ReminderInterval: intPtr(0)}
	if err := cmd.Run(ctx); err == nil {
		t.Error("Run() should reject a zero interval")
	}

	settings, _ := ctx.Store.GetSettings()
	if settings.ReminderIntervalMin == 0 {
		t.Error("failed update must not be persisted")
	}
}

func TestSettingsListDoesNotModify(t *testing.T) {
	ctx := setupTestContext(t)
	before, _ := ctx.Store.GetSettings()

	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	after, _ := ctx.Store.GetSettings()
	if before != after {
		t.Errorf("list changed settings from %+v to %+v", before, after)
	}
}
