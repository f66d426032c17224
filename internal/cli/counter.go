package cli

import (
	"fmt"

	"github.com/tasbihapp/tasbih/internal/counter"
)

type CounterCmd struct {
	Add          CounterAddCmd          `cmd:"" help:"Add a new counter."`
	List         CounterListCmd         `cmd:"" help:"List counters."`
	Edit         CounterEditCmd         `cmd:"" help:"Edit a counter."`
	Delete       CounterDeleteCmd       `cmd:"" help:"Delete a counter."`
	Use          CounterUseCmd          `cmd:"" help:"Make a counter the active one."`
	History      CounterHistoryCmd      `cmd:"" help:"Show a counter's session history."`
	ClearHistory CounterClearHistoryCmd `cmd:"" name:"clear-history" help:"Clear a counter's session history."`
}

type CounterAddCmd struct {
	Name            string `arg:"" help:"Counter name."`
	Target          int    `help:"Target repeat count." default:"33"`
	Arabic          string `help:"Arabic text to display while counting." default:""`
	Transliteration string `help:"Transliteration to display while counting." default:""`
}

func (c *CounterAddCmd) Run(ctx *Context) error {
	tasbih, err := ctx.Counters.Create(c.Name, c.Target, c.Arabic, c.Transliteration)
	if err != nil {
		return err
	}
	fmt.Printf("Added counter %q (target %d), now active.\n", tasbih.Name, tasbih.TargetCount)
	return nil
}

type CounterListCmd struct{}

func (c *CounterListCmd) Run(ctx *Context) error {
	tasbihs, err := ctx.Counters.List()
	if err != nil {
		return err
	}
	if len(tasbihs) == 0 {
		fmt.Println("No counters found. Add one with 'tasbih counter add' or 'tasbih template add'.")
		return nil
	}

	activeID, err := ctx.Store.GetActiveTasbihID()
	if err != nil {
		return err
	}

	for _, t := range tasbihs {
		marker := " "
		if t.ID == activeID {
			marker = "*"
		}
		fmt.Printf("%s %-36s %4d/%-4d  (%d sessions)\n", marker, t.Name, t.CurrentCount, t.TargetCount, len(t.History))
	}
	return nil
}

type CounterEditCmd struct {
	Ref             string  `arg:"" help:"Counter name or id."`
	Name            *string `help:"New display name."`
	Target          *int    `help:"New target repeat count."`
	Arabic          *string `help:"New Arabic text."`
	Transliteration *string `help:"New transliteration."`
}

func (c *CounterEditCmd) Run(ctx *Context) error {
	tasbih, err := ctx.ResolveTasbih(c.Ref)
	if err != nil {
		return err
	}
	if tasbih == nil {
		fmt.Printf("No counter matches %q.\n", c.Ref)
		return nil
	}

	if c.Name == nil && c.Target == nil && c.Arabic == nil && c.Transliteration == nil {
		fmt.Println("No changes specified.")
		return nil
	}

	err = ctx.Counters.Apply(tasbih.ID, counter.Update{
		Name:            c.Name,
		TargetCount:     c.Target,
		Arabic:          c.Arabic,
		Transliteration: c.Transliteration,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Updated counter %q.\n", tasbih.Name)
	return nil
}

type CounterDeleteCmd struct {
	Ref string `arg:"" help:"Counter name or id."`
}

func (c *CounterDeleteCmd) Run(ctx *Context) error {
	tasbih, err := ctx.ResolveTasbih(c.Ref)
	if err != nil {
		return err
	}
	if tasbih == nil {
		fmt.Printf("No counter matches %q.\n", c.Ref)
		return nil
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Counters.Delete(tasbih.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted counter %q.\n", tasbih.Name)
	return nil
}

type CounterUseCmd struct {
	Ref string `arg:"" help:"Counter name or id."`
}

func (c *CounterUseCmd) Run(ctx *Context) error {
	tasbih, err := ctx.ResolveTasbih(c.Ref)
	if err != nil {
		return err
	}
	if tasbih == nil {
		fmt.Printf("No counter matches %q.\n", c.Ref)
		return nil
	}

	if err := ctx.Counters.SetActive(tasbih.ID); err != nil {
		return err
	}
	fmt.Printf("Active counter: %s\n", tasbih.Name)
	return nil
}

type CounterHistoryCmd struct {
	Ref   string `arg:"" optional:"" help:"Counter name or id (default: active counter)."`
	Limit int    `help:"Show at most this many sessions." default:"20"`
}

func (c *CounterHistoryCmd) Run(ctx *Context) error {
	tasbih, err := ctx.ResolveTasbih(c.Ref)
	if err != nil {
		return err
	}
	if tasbih == nil {
		fmt.Println("No counter found.")
		return nil
	}

	if len(tasbih.History) == 0 {
		fmt.Printf("No sessions recorded for %q.\n", tasbih.Name)
		return nil
	}

	fmt.Printf("History for %s (newest first):\n", tasbih.Name)
	for i, session := range tasbih.History {
		if c.Limit > 0 && i >= c.Limit {
			fmt.Printf("... and %d more\n", len(tasbih.History)-c.Limit)
			break
		}
		status := " "
		if session.Completed {
			status = "✓"
		}
		fmt.Printf("  %s %s  %d/%d\n", status, session.CompletedAt.Format("2006-01-02 15:04"), session.Count, session.TargetCount)
	}
	return nil
}

type CounterClearHistoryCmd struct {
	Ref string `arg:"" help:"Counter name or id."`
}

func (c *CounterClearHistoryCmd) Run(ctx *Context) error {
	tasbih, err := ctx.ResolveTasbih(c.Ref)
	if err != nil {
		return err
	}
	if tasbih == nil {
		fmt.Printf("No counter matches %q.\n", c.Ref)
		return nil
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Counters.ClearHistory(tasbih.ID); err != nil {
		return err
	}
	fmt.Printf("Cleared history for %q.\n", tasbih.Name)
	return nil
}
