package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tasbihapp/tasbih/internal/constants"
)

func writeStore(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateBackupCopiesJSONStore(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, "tasbih.json", `{"version":1}`)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() returned error: %v", err)
	}

	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup extension = %q, want .json", filepath.Ext(backupPath))
	}
	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("backup content = %q, want original", data)
	}
}

func TestCreateBackupMissingStoreFails(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "tasbih.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() should fail when the store file is missing")
	}
}

func TestBackupFilenamesAreUnique(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, "tasbih.json", "{}")
	mgr := NewManager(storePath)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() returned error: %v", err)
		}
		if seen[path] {
			t.Fatalf("duplicate backup path %s", path)
		}
		seen[path] = true
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, "tasbih.json", "{}")
	mgr := NewManager(storePath)

	if backups, err := mgr.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("ListBackups() on empty dir = %v, %v; want empty, nil", backups, err)
	}

	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup() returned error: %v", err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned error: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("ListBackups() returned %d backups, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups out of order at index %d", i)
		}
	}
}

func TestRotationKeepsMostRecent(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, "tasbih.json", "{}")
	mgr := NewManager(storePath)

	for i := 0; i < constants.MaxBackups+3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup() returned error: %v", err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned error: %v", err)
	}
	if len(backups) > constants.MaxBackups {
		t.Errorf("kept %d backups, want at most %d", len(backups), constants.MaxBackups)
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, "tasbih.json", `{"state":"old"}`)
	mgr := NewManager(storePath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() returned error: %v", err)
	}

	if err := os.WriteFile(storePath, []byte(`{"state":"new"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(filepath.Base(backupPath)); err != nil {
		t.Fatalf("RestoreBackup() returned error: %v", err)
	}

	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"state":"old"}` {
		t.Errorf("restored content = %q, want old state", data)
	}

	// The pre-restore state must have been snapshotted
	backups, _ := mgr.ListBackups()
	var found bool
	for _, b := range backups {
		snapshot, err := os.ReadFile(b.Path)
		if err == nil && string(snapshot) == `{"state":"new"}` {
			found = true
		}
	}
	if !found {
		t.Error("no snapshot of the pre-restore state found")
	}
}

func TestRestoreMissingBackupFails(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStore(t, dir, "tasbih.json", "{}")
	mgr := NewManager(storePath)

	if err := mgr.RestoreBackup("tasbih-20990101-0000.json"); err == nil {
		t.Error("RestoreBackup() should fail for a missing backup")
	}
}
