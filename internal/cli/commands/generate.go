package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/cli/service"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type generateCmd struct{}

func (generateCmd) Name() string        { return "generate" }
func (generateCmd) Description() string { return "Generate a story and save it" }
func (generateCmd) Usage() string {
	return "generate --genre <g> --char1 <c> [--char2 <c>] [--kw1 <w>] [--kw2 <w>] [--kw3 <w>]"
}

func (generateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(Out)
	var p model.StoryParams
	fs.StringVar(&p.Genre, "genre", "", "story genre")
	fs.StringVar(&p.Character1, "char1", "", "main character")
	fs.StringVar(&p.Character2, "char2", "", "second character")
	fs.StringVar(&p.Keyword1, "kw1", "", "keyword")
	fs.StringVar(&p.Keyword2, "kw2", "", "keyword")
	fs.StringVar(&p.Keyword3, "kw3", "", "keyword")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if p.Genre == "" || p.Character1 == "" {
		return ErrUsage
	}

	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	res, err := e.stories.Generate(ctx, p)
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

func printGenerateResult(res *service.GenerateResult) {
	rec := res.Record
	if rec.Failed() {
		fmt.Fprintf(Out, "Generation failed (%s): %s\n", rec.FailureKind, rec.Content)
	} else {
		fmt.Fprintf(Out, "%s\n", rec.Content)
	}
	fmt.Fprintf(Out, "\nSaved as %s", rec.ID)
	if res.Persist == service.PersistedLocallyAndRemotely {
		fmt.Fprintln(Out, " (synced)")
	} else {
		fmt.Fprintln(Out, " (local only)")
	}
}

func init() { RegisterCmd(generateCmd{}) }
