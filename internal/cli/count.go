package cli

import (
	"fmt"

	"github.com/tasbihapp/tasbih/internal/constants"
	"github.com/tasbihapp/tasbih/internal/logger"
	"github.com/tasbihapp/tasbih/internal/notifier"
)

type CountCmd struct {
	Ref   string `arg:"" optional:"" help:"Counter name or id (default: active counter)."`
	Times int    `help:"Count this many times." default:"1"`
}

func (c *CountCmd) Run(ctx *Context) error {
	tasbih, err := ctx.ResolveTasbih(c.Ref)
	if err != nil {
		return err
	}
	if tasbih == nil {
		fmt.Println("No counter found. Add one with 'tasbih counter add'.")
		return nil
	}

	reachedBefore := tasbih.TargetReached()
	times := c.Times
	if times < 1 {
		times = 1
	}
	for i := 0; i < times; i++ {
		if err := ctx.Counters.Increment(tasbih.ID); err != nil {
			return err
		}
	}

	updated, err := ctx.ResolveTasbih(tasbih.ID)
	if err != nil {
		return err
	}
	if updated == nil {
		return nil
	}

	if updated.TargetReached() && !reachedBefore {
		ctx.Feedback.TargetReached()
		fmt.Printf("%s: %d/%d, target reached!\n", updated.Name, updated.CurrentCount, updated.TargetCount)
		notifyTargetReached(ctx, updated.Name, updated.CurrentCount)
	} else {
		ctx.Feedback.CountTick()
		fmt.Printf("%s: %d/%d\n", updated.Name, updated.CurrentCount, updated.TargetCount)
	}
	return nil
}

type UndoCmd struct {
	Ref string `arg:"" optional:"" help:"Counter name or id (default: active counter)."`
}

func (c *UndoCmd) Run(ctx *Context) error {
	tasbih, err := ctx.ResolveTasbih(c.Ref)
	if err != nil {
		return err
	}
	if tasbih == nil {
		fmt.Println("No counter found.")
		return nil
	}

	if err := ctx.Counters.Decrement(tasbih.ID); err != nil {
		return err
	}

	updated, err := ctx.ResolveTasbih(tasbih.ID)
	if err != nil {
		return err
	}
	if updated != nil {
		fmt.Printf("%s: %d/%d\n", updated.Name, updated.CurrentCount, updated.TargetCount)
	}
	return nil
}

type ResetCmd struct {
	Ref string `arg:"" optional:"" help:"Counter name or id (default: active counter)."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	tasbih, err := ctx.ResolveTasbih(c.Ref)
	if err != nil {
		return err
	}
	if tasbih == nil {
		fmt.Println("No counter found.")
		return nil
	}

	if tasbih.CurrentCount == 0 {
		fmt.Printf("%s is already at zero.\n", tasbih.Name)
		return nil
	}

	completed := tasbih.TargetReached()
	if err := ctx.Counters.Reset(tasbih.ID); err != nil {
		return err
	}

	if completed {
		fmt.Printf("Recorded a completed session for %s (%d/%d).\n", tasbih.Name, tasbih.CurrentCount, tasbih.TargetCount)
	} else {
		fmt.Printf("Recorded a session for %s (%d/%d).\n", tasbih.Name, tasbih.CurrentCount, tasbih.TargetCount)
	}
	return nil
}

// notifyTargetReached sends the target-reached desktop notification when
// notifications are enabled. Delivery failure is logged, never surfaced.
func notifyTargetReached(ctx *Context, name string, count int) {
	if !ctx.Settings().NotificationsEnabled {
		return
	}
	n := notifier.New()
	msg := fmt.Sprintf("%s You've completed %d for %s", constants.TargetReachedTitle, count, name)
	if err := n.Notify(msg); err != nil {
		logger.Warn("Failed to send target-reached notification", "error", err)
	}
}
