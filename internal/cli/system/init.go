package system

import (
	"fmt"
	"os"
	"strings"

	"github.com/tasbihapp/tasbih/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing store before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		storePath := ctx.Store.GetConfigPath()
		// Connection-string backends have nothing on disk to delete.
		if !strings.HasPrefix(storePath, "postgres://") && !strings.HasPrefix(storePath, "postgresql://") {
			if _, err := os.Stat(storePath); err == nil {
				if err := ctx.Store.Close(); err != nil {
					return fmt.Errorf("failed to close existing store: %w", err)
				}
				if err := os.Remove(storePath); err != nil {
					return fmt.Errorf("failed to delete existing store: %w", err)
				}
				fmt.Printf("Deleted existing store at: %s\n", storePath)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to access existing store: %w", err)
			}
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized tasbih storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Add a counter with 'tasbih counter add' or 'tasbih template add'.")
	return nil
}
