package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/kandmgawron/SpellTales/internal/cli/model"
	"github.com/kandmgawron/SpellTales/internal/config"
)

type ageRatingCmd struct{}

func (ageRatingCmd) Name() string        { return "age-rating" }
func (ageRatingCmd) Description() string { return "Show or set the account age rating" }
func (ageRatingCmd) Usage() string       { return "age-rating [toddlers|children|young_teens|teens]" }

func (ageRatingCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	e, err := newEnv(cfg)
	if err != nil {
		return err
	}
	defer e.close()

	if len(args) == 0 {
		rating, err := e.store.GlobalAgeRating()
		if err != nil {
			return err
		}
		if rating == "" {
			rating = model.AgeToddlers
		}
		fmt.Fprintln(Out, rating)
		return nil
	}

	rating := args[0]
	if !model.ValidAgeRating(rating) {
		return fmt.Errorf("unknown age rating %q (expected one of %s)",
			rating, strings.Join(model.AgeRatings, ", "))
	}
	if err := e.store.SetGlobalAgeRating(rating); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Age rating set to %s\n", rating)
	return nil
}

func init() { RegisterCmd(ageRatingCmd{}) }
