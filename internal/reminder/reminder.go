// Package reminder runs the periodic "time for tasbih" notification loop.
package reminder

import (
	"sync"
	"time"

	"github.com/tasbihapp/tasbih/internal/logger"
)

// Reminder owns the single repeating reminder timer. Start always cancels
// the previous timer first, so at most one is ever live. A delivery failure
// is treated as notifications-not-granted: the flag flips and later ticks
// are silently skipped.
type Reminder struct {
	notify func() error

	mu      sync.Mutex
	ticker  *time.Ticker
	done    chan struct{}
	granted bool
}

func New(notify func() error) *Reminder {
	return &Reminder{
		notify:  notify,
		granted: true,
	}
}

// Start begins firing every interval, replacing any previous timer.
func (r *Reminder) Start(interval time.Duration) {
	r.Stop()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ticker = time.NewTicker(interval)
	r.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				r.Fire()
			}
		}
	}(r.ticker, r.done)
}

// Stop cancels the live timer, if any. Safe to call repeatedly.
func (r *Reminder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ticker != nil {
		r.ticker.Stop()
		close(r.done)
		r.ticker = nil
		r.done = nil
	}
}

// Fire sends one reminder now, honoring the granted flag.
func (r *Reminder) Fire() {
	r.mu.Lock()
	granted := r.granted
	r.mu.Unlock()
	if !granted {
		return
	}

	if err := r.notify(); err != nil {
		logger.Warn("Reminder delivery failed, disabling further reminders", "error", err)
		r.mu.Lock()
		r.granted = false
		r.mu.Unlock()
	}
}

// Granted reports whether reminder delivery is still considered permitted.
func (r *Reminder) Granted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.granted
}
