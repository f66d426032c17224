package models

// Settings represents application-wide settings
type Settings struct {
	VibrationEnabled     bool   `json:"vibration_enabled"`     // whether count feedback flashes the screen
	SoundEnabled         bool   `json:"sound_enabled"`         // whether count feedback beeps
	KeepScreenAwake      bool   `json:"keep_screen_awake"`     // whether the counting screen suppresses idle dimming
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether desktop notifications are sent at all
	ReminderEnabled      bool   `json:"reminder_enabled"`      // whether the periodic reminder runs
	ReminderIntervalMin  int    `json:"reminder_interval_min"` // minutes between reminder notifications
	Theme                string `json:"theme"`                 // TUI color theme name
}
