package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/cli/service"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type storiesClearCmd struct{}

func (storiesClearCmd) Name() string { return "stories-clear" }
func (storiesClearCmd) Description() string {
	return "Clear saved stories in the active profile scope (asks account password)"
}
func (storiesClearCmd) Usage() string { return "stories-clear [password]" }

func (storiesClearCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	password := ""
	if len(args) > 0 {
		password = args[0]
	}
	if err := e.requirePassword(ctx, password); err != nil {
		return err
	}

	var scope *string
	active, err := e.profiles.Active()
	if err != nil {
		return err
	}
	if active != nil {
		id := active.ID
		scope = &id
	}

	res, err := e.engine.Clear(ctx, scope)
	if err != nil {
		return err
	}
	if res == service.PersistedLocallyAndRemotely {
		fmt.Fprintln(Out, "Stories cleared")
	} else {
		fmt.Fprintln(Out, "Stories cleared locally (remote copies may remain)")
	}
	return nil
}

func init() { RegisterCmd(storiesClearCmd{}) }
