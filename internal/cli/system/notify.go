package system

import (
	"fmt"

	"github.com/tasbihapp/tasbih/internal/cli"
	"github.com/tasbihapp/tasbih/internal/constants"
	"github.com/tasbihapp/tasbih/internal/notifier"
)

type NotifyCmd struct {
	Message string `arg:"" optional:"" help:"Notification text to send."`
	DryRun  bool   `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	msg := c.Message
	if msg == "" {
		msg = constants.ReminderMessage
	}

	if c.DryRun {
		fmt.Println("[DryRun] " + msg)
		return nil
	}

	n := notifier.New()
	if err := n.Notify(msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
