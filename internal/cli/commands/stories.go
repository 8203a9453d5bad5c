package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/cli/service"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type storiesCmd struct{}

func (storiesCmd) Name() string        { return "stories" }
func (storiesCmd) Description() string { return "List saved stories (newest first)" }
func (storiesCmd) Usage() string       { return "stories [--filter all|profile|global]" }

func (storiesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("stories", flag.ContinueOnError)
	fs.SetOutput(Out)
	filter := fs.String("filter", "profile", "all | profile | global")
	if err := fs.Parse(args); err != nil {
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
	active, err := e.profiles.Active()
	if err != nil {
		return err
	}

	switch *filter {
	case "all":
		// без фильтра
	case "global":
		records = service.FilterGlobalOnly(records)
	case "profile":
		if active != nil {
			id := active.ID
			records = service.FilterByProfile(records, &id)
		}
	default:
		return ErrUsage
	}

	if len(records) == 0 {
		fmt.Fprintln(Out, "No saved stories")
		return nil
	}

	viewer, err := e.profiles.EffectiveAgeRating()
	if err != nil {
		return err
	}
	for _, r := range records {
		printStoryLine(r, viewer)
	}
	return nil
}

func printStoryLine(r model.StoryRecord, viewerRating string) {
	ts := time.UnixMilli(r.Timestamp).Format("2006-01-02 15:04")
	status := "ok"
	if r.Failed() {
		status = string(r.FailureKind)
	}
	mark := ""
	// записи со слишком высоким рейтингом видимы, но помечены недоступными
	if !model.CanReload(r.AgeRating, viewerRating) {
		mark = " [locked]"
	}
	profile := r.ProfileName
	if profile == "" {
		profile = "-"
	}
	fmt.Fprintf(Out, "%s  %s  %-10s %-16s %s%s\n",
		shortID(r.ID), ts, status, profile, r.Genre, mark)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() { RegisterCmd(storiesCmd{}) }
