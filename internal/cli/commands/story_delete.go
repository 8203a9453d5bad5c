package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/cli/service"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type storyDeleteCmd struct{}

func (storyDeleteCmd) Name() string        { return "story-delete" }
func (storyDeleteCmd) Description() string { return "Delete a saved story (asks account password)" }
func (storyDeleteCmd) Usage() string       { return "story-delete <story-id> [password]" }

func (storyDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	password := ""
	if len(args) > 1 {
		password = args[1]
	}
	if err := e.requirePassword(ctx, password); err != nil {
		return err
	}

	records, err := e.engine.Reload(ctx)
	if err != nil {
		return err
	}
	rec, err := findRecord(records, args[0])
	if err != nil {
		return err
	}

	res, err := e.engine.Delete(ctx, rec.ID)
	if err != nil {
		return err
	}
	if res == service.PersistedLocallyAndRemotely {
		fmt.Fprintln(Out, "Story deleted")
	} else {
		fmt.Fprintln(Out, "Story deleted locally (remote copy may remain)")
	}
	return nil
}

func init() { RegisterCmd(storyDeleteCmd{}) }
