package constants

const (
	// Settings keys
	SettingVibrationEnabled     = "vibration_enabled"
	SettingSoundEnabled         = "sound_enabled"
	SettingKeepScreenAwake      = "keep_screen_awake"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingReminderEnabled      = "reminder_enabled"
	SettingReminderIntervalMin  = "reminder_interval_min"
	SettingTheme                = "theme"

	// Default settings values
	DefaultVibrationEnabled     = true
	DefaultSoundEnabled         = true
	DefaultKeepScreenAwake      = true
	DefaultNotificationsEnabled = false
	DefaultReminderEnabled      = false
	DefaultReminderIntervalMin  = 60
	DefaultTheme                = "dark"
)
