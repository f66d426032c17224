package settings

import (
	"fmt"

	"github.com/tasbihapp/tasbih/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Vibration        *bool   `help:"Enable or disable the count flash."`
	Sound            *bool   `help:"Enable or disable the count beep."`
	KeepScreenAwake  *bool   `help:"Keep the counting screen from idling."`
	Notifications    *bool   `help:"Enable or disable desktop notifications."`
	Reminder         *bool   `help:"Enable or disable the periodic reminder."`
	ReminderInterval *int    `help:"Minutes between reminder notifications."`
	Theme            *string `help:"TUI color theme name."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Vibration (flash):     %v\n", settings.VibrationEnabled)
		fmt.Printf("  Sound (beep):          %v\n", settings.SoundEnabled)
		fmt.Printf("  Keep Screen Awake:     %v\n", settings.KeepScreenAwake)
		fmt.Printf("  Theme:                 %s\n", settings.Theme)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Reminder Enabled:      %v\n", settings.ReminderEnabled)
		fmt.Printf("  Reminder Interval:     %d min\n", settings.ReminderIntervalMin)
		return nil
	}

	updated := false
	if c.Vibration != nil {
		settings.VibrationEnabled = *c.Vibration
		updated = true
	}
	if c.Sound != nil {
		settings.SoundEnabled = *c.Sound
		updated = true
	}
	if c.KeepScreenAwake != nil {
		settings.KeepScreenAwake = *c.KeepScreenAwake
		updated = true
	}
	if c.Notifications != nil {
		settings.NotificationsEnabled = *c.Notifications
		updated = true
	}
	if c.Reminder != nil {
		settings.ReminderEnabled = *c.Reminder
		updated = true
	}
	if c.ReminderInterval != nil {
		if *c.ReminderInterval < 1 {
			return fmt.Errorf("reminder interval must be at least 1 minute")
		}
		settings.ReminderIntervalMin = *c.ReminderInterval
		updated = true
	}
	if c.Theme != nil {
		settings.Theme = *c.Theme
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
