package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/cli/auth"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "End the current session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if err := auth.End(sessionStore(cfg)); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
