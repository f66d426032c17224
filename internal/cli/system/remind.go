package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tasbihapp/tasbih/internal/cli"
	"github.com/tasbihapp/tasbih/internal/constants"
	"github.com/tasbihapp/tasbih/internal/notifier"
	"github.com/tasbihapp/tasbih/internal/reminder"
)

type RemindCmd struct {
	Once bool `help:"Send a single reminder now and exit."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		fmt.Println("Notifications are disabled in settings. Enable them with 'tasbih settings --notifications'.")
		return nil
	}
	if !settings.ReminderEnabled && !c.Once {
		fmt.Println("Reminders are disabled in settings. Enable them with 'tasbih settings --reminder'.")
		return nil
	}

	n := notifier.New()
	r := reminder.New(func() error {
		return n.Notify(constants.ReminderMessage)
	})

	if c.Once {
		r.Fire()
		if !r.Granted() {
			return fmt.Errorf("reminder could not be delivered; is tasbih-tray running?")
		}
		fmt.Println("Reminder sent.")
		return nil
	}

	interval := time.Duration(settings.ReminderIntervalMin) * time.Minute
	r.Start(interval)
	defer r.Stop()

	fmt.Printf("Reminding every %d min. Press Ctrl+C to stop.\n", settings.ReminderIntervalMin)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("\nStopped.")
	return nil
}
