package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/kandmgawron/SpellTales/internal/config"
)

type wordsCmd struct{}

func (wordsCmd) Name() string        { return "words" }
func (wordsCmd) Description() string { return "Show spelling practice words" }
func (wordsCmd) Usage() string       { return "words" }

func (wordsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	words, err := e.words.Words(ctx)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		fmt.Fprintln(Out, "No spelling words set")
		return nil
	}
	fmt.Fprintln(Out, strings.Join(words, ", "))
	return nil
}

func init() { RegisterCmd(wordsCmd{}) }
