package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/config"
)

type profileDelCmd struct{}

func (profileDelCmd) Name() string        { return "profile-del" }
func (profileDelCmd) Description() string { return "Delete a child profile (asks account password)" }
func (profileDelCmd) Usage() string       { return "profile-del <name> [password]" }

func (profileDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}

	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	password := ""
	if len(args) > 1 {
		password = args[1]
	}
	if err := e.requirePassword(ctx, password); err != nil {
		return err
	}

	if err := e.profiles.Remove(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Profile %s deleted. Its stories stay in the collection.\n", args[0])
	return nil
}

func init() { RegisterCmd(profileDelCmd{}) }
