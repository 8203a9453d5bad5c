package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/config"
)

type profileAddCmd struct{}

func (profileAddCmd) Name() string        { return "profile-add" }
func (profileAddCmd) Description() string { return "Create a child profile" }
func (profileAddCmd) Usage() string {
	return "profile-add <name> <toddlers|children|young_teens|teens>"
}

func (profileAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}

	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	p, err := e.profiles.Add(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Profile %s created (%s)\n", p.Name, p.AgeRating)
	return nil
}

func init() { RegisterCmd(profileAddCmd{}) }
