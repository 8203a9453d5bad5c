package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/config"
)

type profilesCmd struct{}

func (profilesCmd) Name() string        { return "profiles" }
func (profilesCmd) Description() string { return "List child profiles" }
func (profilesCmd) Usage() string       { return "profiles" }

func (profilesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	profiles, err := e.profiles.List()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintln(Out, "No profiles")
		return nil
	}
	active, err := e.profiles.Active()
	if err != nil {
		return err
	}
	for _, p := range profiles {
		mark := " "
		if active != nil && active.ID == p.ID {
			mark = "*"
		}
		fmt.Fprintf(Out, "%s %-16s %s\n", mark, p.Name, p.AgeRating)
	}
	return nil
}

func init() { RegisterCmd(profilesCmd{}) }
