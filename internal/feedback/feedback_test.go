package feedback

import (
	"strings"
	"testing"

	"github.com/tasbihapp/tasbih/internal/models"
)

func newTestAdapter(settings models.Settings) (*Adapter, *strings.Builder) {
	var out strings.Builder
	adapter := NewWithWriter(&out, func() models.Settings { return settings })
	return adapter, &out
}

func TestCountTickBeepsOnce(t *testing.T) {
	settings := models.DefaultSettings()
	adapter, out := newTestAdapter(settings)

	adapter.CountTick()
	if got := strings.Count(out.String(), "\a"); got != 1 {
		t.Errorf("CountTick() wrote %d bells, want 1", got)
	}
}

func TestTargetReachedBeepsThrice(t *testing.T) {
	settings := models.DefaultSettings()
	adapter, out := newTestAdapter(settings)

	adapter.TargetReached()
	if got := strings.Count(out.String(), "\a"); got != 3 {
		t.Errorf("TargetReached() wrote %d bells, want 3", got)
	}
}

func TestSoundDisabledSilencesBeeps(t *testing.T) {
	settings := models.DefaultSettings()
	settings.SoundEnabled = false
	adapter, out := newTestAdapter(settings)

	adapter.CountTick()
	adapter.TargetReached()
	if out.Len() != 0 {
		t.Errorf("disabled sound still wrote %q", out.String())
	}
}

func TestFlashEnabledFollowsVibrationSetting(t *testing.T) {
	settings := models.DefaultSettings()
	adapter, _ := newTestAdapter(settings)
	if !adapter.FlashEnabled() {
		t.Error("FlashEnabled() = false with vibration on")
	}

	settings.VibrationEnabled = false
	adapter, _ = newTestAdapter(settings)
	if adapter.FlashEnabled() {
		t.Error("FlashEnabled() = true with vibration off")
	}
}

func TestSettingsConsultedPerCue(t *testing.T) {
	settings := models.DefaultSettings()
	var out strings.Builder
	adapter := NewWithWriter(&out, func() models.Settings { return settings })

	adapter.CountTick()
	settings.SoundEnabled = false
	adapter.CountTick()

	if got := strings.Count(out.String(), "\a"); got != 1 {
		t.Errorf("toggle mid-run produced %d bells, want 1", got)
	}
}
