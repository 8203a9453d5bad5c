package commands

import (
	"context"
	"fmt"

	"github.com/kandmgawron/SpellTales/internal/cli/api"
	"github.com/kandmgawron/SpellTales/internal/cli/auth"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and start a session" }
func (registerCmd) Usage() string       { return "register <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email, password := args[0], args[1]
	client := api.NewClient(cfg, "", nil)
	token, err := client.Register(ctx, email, password)
	if err != nil {
		return err
	}
	if err := auth.Begin(sessionStore(cfg), email, token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Registered and logged in as %s\n", email)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
