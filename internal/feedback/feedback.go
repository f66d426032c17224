// Package feedback plays terminal stand-ins for the count feedback a phone
// would give: the terminal bell for sound, a brief style flash (handled by
// the TUI) for vibration. Calls are fire-and-forget and gated by settings;
// nothing here ever surfaces an error to counter logic.
package feedback

import (
	"fmt"
	"io"
	"os"

	"github.com/tasbihapp/tasbih/internal/models"
)

type Adapter struct {
	out      io.Writer
	settings func() models.Settings
}

// New returns an adapter writing to stdout. The settings function is
// consulted on every cue so toggles take effect immediately.
func New(settings func() models.Settings) *Adapter {
	return NewWithWriter(os.Stdout, settings)
}

func NewWithWriter(out io.Writer, settings func() models.Settings) *Adapter {
	return &Adapter{
		out:      out,
		settings: settings,
	}
}

// CountTick plays the single-count cue.
func (a *Adapter) CountTick() {
	a.beep(1)
}

// TargetReached plays the celebratory cue.
func (a *Adapter) TargetReached() {
	a.beep(3)
}

// FlashEnabled reports whether the visual flash (the vibration stand-in)
// should run. The flash itself is rendered by the TUI.
func (a *Adapter) FlashEnabled() bool {
	return a.settings().VibrationEnabled
}

func (a *Adapter) beep(n int) {
	if !a.settings().SoundEnabled {
		return
	}
	for i := 0; i < n; i++ {
		fmt.Fprint(a.out, "\a")
	}
}
