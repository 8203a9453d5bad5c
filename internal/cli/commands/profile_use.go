package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/config"
)

type profileUseCmd struct{}

func (profileUseCmd) Name() string        { return "profile-use" }
func (profileUseCmd) Description() string { return "Switch the active profile (no name clears the selection)" }
func (profileUseCmd) Usage() string       { return "profile-use [name]" }

func (profileUseCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	p, err := e.profiles.Use(name)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Fprintln(Out, "Profile selection cleared (all profiles view)")
		return nil
	}
	fmt.Fprintf(Out, "Active profile: %s (%s)\n", p.Name, p.AgeRating)
	return nil
}

func init() { RegisterCmd(profileUseCmd{}) }
