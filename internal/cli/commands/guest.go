package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/cli/auth"
	reposqlite "github.com/kandmgawron/SpellTales/internal/cli/repo/sqlite"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type guestCmd struct{}

func (guestCmd) Name() string        { return "guest" }
func (guestCmd) Description() string { return "Start a local-only guest session" }
func (guestCmd) Usage() string       { return "guest" }

func (guestCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	store, _, err := reposqlite.OpenForUser(cfg.ClientDBPath, auth.GuestEmail)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		return err
	}
	if err := auth.BeginGuest(sessionStore(cfg), store); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Guest session started. Stories are kept on this device only.")
	return nil
}

func init() { RegisterCmd(guestCmd{}) }
