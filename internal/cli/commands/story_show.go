package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/kandmgawron/SpellTales/internal/config"
)

type storyShowCmd struct{}

func (storyShowCmd) Name() string        { return "story-show" }
func (storyShowCmd) Description() string { return "Print a saved story" }
func (storyShowCmd) Usage() string       { return "story-show <story-id>" }

func (storyShowCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	fmt.Fprintf(Out, "ID:      %s\n", rec.ID)
	fmt.Fprintf(Out, "Created: %s\n", time.UnixMilli(rec.Timestamp).Format(time.RFC3339))
	fmt.Fprintf(Out, "Genre:   %s\n", rec.Genre)
	if rec.ProfileName != "" {
		fmt.Fprintf(Out, "Profile: %s\n", rec.ProfileName)
	}
	fmt.Fprintf(Out, "Rating:  %s\n", rec.AgeRating)
	if rec.Failed() {
		fmt.Fprintf(Out, "Status:  failed (%s)\n", rec.FailureKind)
	}
	fmt.Fprintf(Out, "\n%s\n", rec.Content)
	return nil
}

func init() { RegisterCmd(storyShowCmd{}) }
