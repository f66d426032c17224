package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tasbihapp/tasbih/internal/cli"
	"github.com/tasbihapp/tasbih/internal/keyring"
	"github.com/tasbihapp/tasbih/internal/storage"
)

// KeyringSetCmd stores the Postgres connection string in the OS keyring so it
// never has to appear on the command line or in shell history.
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(cmd.ConnectionString, "postgres://") &&
		!strings.HasPrefix(cmd.ConnectionString, "postgresql://") &&
		!strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if storage.HasEmbeddedCredentials(cmd.ConnectionString) {
		fmt.Println("Warning: connection string contains embedded credentials.")
		fmt.Println("It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("Connection string stored in OS keyring.")
	fmt.Println("You can now use tasbih without the --config flag.")
	return nil
}

// KeyringClearCmd removes the stored connection string from the OS keyring.
type KeyringClearCmd struct{}

func (cmd *KeyringClearCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	fmt.Println("Connection string deleted from OS keyring.")
	return nil
}
