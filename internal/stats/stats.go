// Package stats derives streak, lifetime, and rolling-average figures from
// the counter collection. The derivations are pure functions over a snapshot;
// the engine owns only the set of completion dates.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/tasbihapp/tasbih/internal/constants"
	"github.com/tasbihapp/tasbih/internal/counter"
	"github.com/tasbihapp/tasbih/internal/models"
	"github.com/tasbihapp/tasbih/internal/storage"
)

// Totals are the lifetime aggregates across every counter and session.
type Totals struct {
	TotalLifetimeCount     int
	TotalCompletedSessions int
	TasbihUsage            map[string]int
	MostUsedTasbih         string
	MostUsedCount          int
	EstimatedTimeMinutes   int
}

// Averages are the rolling daily/weekly/monthly counts. Daily is the raw sum
// over the last 24 hours; weekly and monthly are per-day averages over 7 and
// 30 day windows. Live counts belong to all three windows.
type Averages struct {
	Daily   int
	Weekly  int
	Monthly int
}

// CurrentStreakAt walks backward from today one calendar day at a time and
// counts consecutive completion dates. A missing entry for today breaks the
// chain immediately, so an intact run ending yesterday still reports zero.
func CurrentStreakAt(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	parsed := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := time.ParseInLocation(constants.DateFormat, d, today.Location())
		if err != nil {
			continue
		}
		parsed = append(parsed, t)
	}
	sort.Slice(parsed, func(i, j int) bool {
		return parsed[j].Before(parsed[i])
	})

	check := midnight(today)
	streak := 0
	for _, date := range parsed {
		if date.Equal(check) {
			streak++
			check = check.AddDate(0, 0, -1)
		} else if date.Before(check) {
			break
		}
	}
	return streak
}

// TotalsOf scans every counter and session. Counters sharing a name merge in
// the usage view; the most-used entry keeps first-seen order on ties because
// the comparison is strictly greater-than.
func TotalsOf(tasbihs []models.Tasbih) Totals {
	usage := make(map[string]int)
	var order []string
	addUsage := func(name string, n int) {
		if _, ok := usage[name]; !ok {
			order = append(order, name)
		}
		usage[name] += n
	}

	totals := Totals{TasbihUsage: usage}
	for _, tasbih := range tasbihs {
		totals.TotalLifetimeCount += tasbih.CurrentCount
		for _, session := range tasbih.History {
			totals.TotalLifetimeCount += session.Count
			if session.Completed {
				totals.TotalCompletedSessions++
			}
			addUsage(tasbih.Name, session.Count)
		}
		addUsage(tasbih.Name, tasbih.CurrentCount)
	}

	for _, name := range order {
		if usage[name] > totals.MostUsedCount {
			totals.MostUsedCount = usage[name]
			totals.MostUsedTasbih = name
		}
	}

	// Heuristic: one count takes roughly one second.
	totals.EstimatedTimeMinutes = int(math.Round(float64(totals.TotalLifetimeCount) / 60))
	return totals
}

// AveragesAt computes the rolling windows relative to now. Live counts are
// treated as happening now and enter every window.
func AveragesAt(tasbihs []models.Tasbih, now time.Time) Averages {
	const (
		day   = 24 * time.Hour
		week  = 7 * day
		month = 30 * day
	)

	var daily, weekly, monthly int
	for _, tasbih := range tasbihs {
		daily += tasbih.CurrentCount
		weekly += tasbih.CurrentCount
		monthly += tasbih.CurrentCount

		for _, session := range tasbih.History {
			age := now.Sub(session.CompletedAt)
			if age < day {
				daily += session.Count
			}
			if age < week {
				weekly += session.Count
			}
			if age < month {
				monthly += session.Count
			}
		}
	}

	return Averages{
		Daily:   daily,
		Weekly:  int(math.Round(float64(weekly) / 7)),
		Monthly: int(math.Round(float64(monthly) / 30)),
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Engine binds the pure derivations to a storage provider. It recomputes
// every figure from the current collection on each read and owns only the
// completion-date document.
type Engine struct {
	provider storage.Provider
	clock    counter.Clock
}

func New(provider storage.Provider) *Engine {
	return NewWithClock(provider, counter.RealClock{})
}

func NewWithClock(provider storage.Provider, clock counter.Clock) *Engine {
	return &Engine{
		provider: provider,
		clock:    clock,
	}
}

// RecordCompletion marks the calendar day of at as completed. Idempotent per
// day. Wired as the counter store's completion observer.
func (e *Engine) RecordCompletion(at time.Time) error {
	day := at.Format(constants.DateFormat)
	dates, err := e.provider.GetCompletionDates()
	if err != nil {
		return err
	}
	for _, d := range dates {
		if d == day {
			return nil
		}
	}
	return e.provider.SaveCompletionDates(append(dates, day))
}

// RecordCompletionToday records a completion for the current local day.
func (e *Engine) RecordCompletionToday() error {
	return e.RecordCompletion(e.clock.Now())
}

// ResetStreak clears the completion-date set.
func (e *Engine) ResetStreak() error {
	return e.provider.SaveCompletionDates([]string{})
}

// CurrentStreak returns the number of consecutive days, ending today, with
// at least one completed session.
func (e *Engine) CurrentStreak() (int, error) {
	dates, err := e.provider.GetCompletionDates()
	if err != nil {
		return 0, err
	}
	return CurrentStreakAt(dates, e.clock.Now()), nil
}

// Totals returns the lifetime aggregates for the current collection.
func (e *Engine) Totals() (Totals, error) {
	tasbihs, err := e.provider.GetTasbihs()
	if err != nil {
		return Totals{}, err
	}
	return TotalsOf(tasbihs), nil
}

// Averages returns the rolling-window figures for the current collection.
func (e *Engine) Averages() (Averages, error) {
	tasbihs, err := e.provider.GetTasbihs()
	if err != nil {
		return Averages{}, err
	}
	return AveragesAt(tasbihs, e.clock.Now()), nil
}
