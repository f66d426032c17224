package notifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/tasbihapp/tasbih/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func stubFindProcess(t *testing.T, fn func(pid int) (ps.Process, error)) {
	t.Helper()
	old := findProcessFunc
	findProcessFunc = fn
	t.Cleanup(func() { findProcessFunc = old })
}

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), constants.NotifierLockfileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	t.Run("missing lockfile", func(t *testing.T) {
		_, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "nope.lock"))
		if !errors.Is(err, ErrTrayUnavailable) {
			t.Errorf("error = %v, want ErrTrayUnavailable", err)
		}
	})

	t.Run("malformed lockfile", func(t *testing.T) {
		path := writeLockfile(t, "8080|1234")
		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Error("expected error for malformed lockfile")
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		path := writeLockfile(t, "99999|1234|secret")
		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Error("expected error for out-of-range port")
		}
	})

	t.Run("empty secret", func(t *testing.T) {
		path := writeLockfile(t, "8080|1234| ")
		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Error("expected error for empty secret")
		}
	})

	t.Run("process not running", func(t *testing.T) {
		stubFindProcess(t, func(pid int) (ps.Process, error) { return nil, nil })
		path := writeLockfile(t, "8080|1234|secret")
		if _, _, err := findAndValidateTrayProcess(path); !errors.Is(err, ErrTrayUnavailable) {
			t.Errorf("error = %v, want ErrTrayUnavailable", err)
		}
	})

	t.Run("wrong executable", func(t *testing.T) {
		stubFindProcess(t, func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "something-else"}, nil
		})
		path := writeLockfile(t, "8080|1234|secret")
		if _, _, err := findAndValidateTrayProcess(path); err == nil {
			t.Error("expected error for wrong executable name")
		}
	})

	t.Run("valid", func(t *testing.T) {
		stubFindProcess(t, func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "tasbih-tray"}, nil
		})
		path := writeLockfile(t, "8080|1234|secret")
		port, secret, err := findAndValidateTrayProcess(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port != "8080" || secret != "secret" {
			t.Errorf("got port=%q secret=%q, want 8080/secret", port, secret)
		}
	})
}

func TestSendNotification(t *testing.T) {
	var gotSecret string
	var gotPayload WebhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Tasbih-Secret")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	port := strings.TrimPrefix(server.URL, "http://127.0.0.1:")
	payload := WebhookPayload{Text: "Target reached!", DurationMs: constants.NotificationDurationMs}
	if err := sendNotification(port, "s3cret", payload); err != nil {
		t.Fatalf("sendNotification() returned error: %v", err)
	}

	if gotSecret != "s3cret" {
		t.Errorf("secret header = %q, want s3cret", gotSecret)
	}
	if gotPayload.Text != payload.Text || gotPayload.DurationMs != payload.DurationMs {
		t.Errorf("payload = %+v, want %+v", gotPayload, payload)
	}
}

func TestSendNotificationNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad secret", http.StatusUnauthorized)
	}))
	defer server.Close()

	port := strings.TrimPrefix(server.URL, "http://127.0.0.1:")
	err := sendNotification(port, "wrong", WebhookPayload{Text: "hi"})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), fmt.Sprint(http.StatusUnauthorized)) {
		t.Errorf("error %q should mention the status code", err)
	}
}

func TestGetTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	old := userConfigDirFunc
	defer func() { userConfigDirFunc = old }()
	userConfigDirFunc = func() (string, error) { return tempDir, nil }

	dir, err := getTrayAppConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(tempDir, constants.TrayAppIdentifier)
	if dir != want {
		t.Errorf("dir = %q, want %q", dir, want)
	}
}
