package cli

import (
	"fmt"
	"sort"
)

type StatsCmd struct {
	ResetStreak bool `help:"Clear the completion-date history and reset the streak to zero."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if c.ResetStreak {
		if err := ctx.Stats.ResetStreak(); err != nil {
			return err
		}
		fmt.Println("Streak reset.")
		return nil
	}

	streak, err := ctx.Stats.CurrentStreak()
	if err != nil {
		return err
	}
	totals, err := ctx.Stats.Totals()
	if err != nil {
		return err
	}
	averages, err := ctx.Stats.Averages()
	if err != nil {
		return err
	}

	fmt.Printf("Current streak:      %d day(s)\n", streak)
	fmt.Printf("Lifetime count:      %d\n", totals.TotalLifetimeCount)
	fmt.Printf("Completed sessions:  %d\n", totals.TotalCompletedSessions)
	fmt.Printf("Estimated time:      ~%d min\n", totals.EstimatedTimeMinutes)
	if totals.MostUsedTasbih != "" {
		fmt.Printf("Most used:           %s (%d)\n", totals.MostUsedTasbih, totals.MostUsedCount)
	}

	fmt.Printf("\nRolling averages:\n")
	fmt.Printf("  Today:             %d\n", averages.Daily)
	fmt.Printf("  Per day (7d):      %d\n", averages.Weekly)
	fmt.Printf("  Per day (30d):     %d\n", averages.Monthly)

	if len(totals.TasbihUsage) > 0 {
		fmt.Printf("\nUsage by name:\n")
		names := make([]string, 0, len(totals.TasbihUsage))
		for name := range totals.TasbihUsage {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if totals.TasbihUsage[names[i]] != totals.TasbihUsage[names[j]] {
				return totals.TasbihUsage[names[i]] > totals.TasbihUsage[names[j]]
			}
			return names[i] < names[j]
		})
		for _, name := range names {
			fmt.Printf("  %-36s %d\n", name, totals.TasbihUsage[name])
		}
	}
	return nil
}
