package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/cli/api"
	"github.com/kandmgawron/SpellTales/internal/cli/auth"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and start a session" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]
	client := api.NewClient(cfg, "", nil)
	token, err := client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := auth.Begin(sessionStore(cfg), email, token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Logged in as %s\n", email)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
