package models

import "testing"

func TestApplyDefaultSettings(t *testing.T) {
	var settings Settings
	ApplyDefaultSettings(&settings)

	if settings.ReminderIntervalMin <= 0 {
		t.Errorf("ReminderIntervalMin = %d, want positive default", settings.ReminderIntervalMin)
	}
	if settings.Theme == "" {
		t.Error("Theme should get a default")
	}
	// Boolean zero values are legitimate stored states and stay untouched
	if settings.VibrationEnabled {
		t.Error("explicit false should not be overwritten")
	}
}

func TestSettingsMapRoundTrip(t *testing.T) {
	want := DefaultSettings()
	want.SoundEnabled = false
	want.ReminderIntervalMin = 45

	got, err := MapToSettings(SettingsToMap(want))
	if err != nil {
		t.Fatalf("MapToSettings() returned error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestMapToSettingsBadInterval(t *testing.T) {
	data := SettingsToMap(DefaultSettings())
	data["reminder_interval_min"] = "soon"

	if _, err := MapToSettings(data); err == nil {
		t.Error("MapToSettings() should reject a non-numeric interval")
	}
}

func TestTargetReached(t *testing.T) {
	tasbih := Tasbih{CurrentCount: 32, TargetCount: 33}
	if tasbih.TargetReached() {
		t.Error("TargetReached() = true below target")
	}

	tasbih.CurrentCount = 33
	if !tasbih.TargetReached() {
		t.Error("TargetReached() = false at target")
	}

	tasbih.CurrentCount = 50
	if !tasbih.TargetReached() {
		t.Error("TargetReached() = false past target")
	}
}
