package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/kandmgawron/SpellTales/internal/cli/auth"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show session, active profile and collection size" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	session, err := auth.Current(sessionStore(cfg))
	if err != nil {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	if session.IsGuest() {
		fmt.Fprintln(Out, "Session: guest (local only)")
	} else {
		fmt.Fprintf(Out, "Session: %s\n", session.Email)
		if exp, err := auth.TokenExpiry(session.Token); err == nil && !exp.IsZero() {
			fmt.Fprintf(Out, "Token expires: %s\n", exp.Format(time.RFC3339))
		}
	}

	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	active, err := e.profiles.Active()
	if err != nil {
		return err
	}
	if active != nil {
		fmt.Fprintf(Out, "Active profile: %s (%s)\n", active.Name, active.AgeRating)
	} else {
		fmt.Fprintln(Out, "Active profile: none (all profiles view)")
	}

	records, err := e.store.ListStories()
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Saved stories: %d\n", len(records))
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
