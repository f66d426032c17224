package models

import (
	"fmt"

	"github.com/tasbihapp/tasbih/internal/constants"
)

// DefaultSettings returns the settings a fresh store starts with.
func DefaultSettings() Settings {
	return Settings{
		VibrationEnabled:     constants.DefaultVibrationEnabled,
		SoundEnabled:         constants.DefaultSoundEnabled,
		KeepScreenAwake:      constants.DefaultKeepScreenAwake,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		ReminderEnabled:      constants.DefaultReminderEnabled,
		ReminderIntervalMin:  constants.DefaultReminderIntervalMin,
		Theme:                constants.DefaultTheme,
	}
}

// ApplyDefaultSettings fills in values that persisted documents from older
// versions may be missing.
func ApplyDefaultSettings(settings *Settings) {
	if settings.ReminderIntervalMin <= 0 {
		settings.ReminderIntervalMin = constants.DefaultReminderIntervalMin
	}
	if settings.Theme == "" {
		settings.Theme = constants.DefaultTheme
	}
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingVibrationEnabled:     fmt.Sprintf("%v", settings.VibrationEnabled),
		constants.SettingSoundEnabled:         fmt.Sprintf("%v", settings.SoundEnabled),
		constants.SettingKeepScreenAwake:      fmt.Sprintf("%v", settings.KeepScreenAwake),
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingReminderEnabled:      fmt.Sprintf("%v", settings.ReminderEnabled),
		constants.SettingReminderIntervalMin:  fmt.Sprintf("%d", settings.ReminderIntervalMin),
		constants.SettingTheme:                settings.Theme,
	}
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingVibrationEnabled:
			settings.VibrationEnabled = value == "true"
		case constants.SettingSoundEnabled:
			settings.SoundEnabled = value == "true"
		case constants.SettingKeepScreenAwake:
			settings.KeepScreenAwake = value == "true"
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingReminderEnabled:
			settings.ReminderEnabled = value == "true"
		case constants.SettingReminderIntervalMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.ReminderIntervalMin); err != nil {
				return Settings{}, fmt.Errorf("parsing reminder_interval_min: %w", err)
			}
		case constants.SettingTheme:
			settings.Theme = value
		}
	}
	return settings, nil
}
