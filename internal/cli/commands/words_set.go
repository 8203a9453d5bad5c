package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/cli/service"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type wordsSetCmd struct{}

func (wordsSetCmd) Name() string        { return "words-set" }
func (wordsSetCmd) Description() string { return "Replace the spelling practice word list" }
func (wordsSetCmd) Usage() string       { return "words-set <word> [word ...]" }

func (wordsSetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	res, err := e.words.Update(ctx, args)
	if err != nil {
		return err
	}
	if res == service.PersistedLocallyAndRemotely {
		fmt.Fprintf(Out, "Saved %d words\n", len(args))
	} else {
		fmt.Fprintf(Out, "Saved %d words locally\n", len(args))
	}
	return nil
}

func init() { RegisterCmd(wordsSetCmd{}) }
