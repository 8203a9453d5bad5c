package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/cli/service"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type retryCmd struct{}

func (retryCmd) Name() string        { return "retry" }
func (retryCmd) Description() string { return "Re-generate a saved story from its original parameters" }
func (retryCmd) Usage() string       { return "retry <story-id>" }

func (retryCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	records, err := e.engine.Reload(ctx)
	if err != nil {
		return err
	}
	rec, err := findRecord(records, args[0])
	if err != nil {
		return err
	}

	res, err := e.stories.Retry(ctx, *rec)
	if errors.Is(err, service.ErrRateLimited) {
		fmt.Fprintln(Out, "Too many requests. Please wait a minute and try again.")
		return nil
	}
	if err != nil {
		return err
	}
	printGenerateResult(res)
	return nil
}

func init() { RegisterCmd(retryCmd{}) }
