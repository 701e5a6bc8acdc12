package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kobofi/kobo-cli/internal/domain"
)

func goal(name string, target decimal.Decimal, horizon string) domain.SavingsGoal {
	return domain.SavingsGoal{Name: name, TargetAmount: target, Horizon: horizon}
}

func newOnboardCmd(app *app) *cobra.Command {
	var (
		name       string
		goalName   string
		goalTarget string
		horizon    string
	)

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Set a savings goal and create your profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			target, err := decimal.NewFromString(goalTarget)
			if err != nil {
				return fmt.Errorf("parse goal target %q: %w", goalTarget, err)
			}

			if err := app.service.Onboard(cmd.Context(), name, goal(goalName, target, horizon)); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s. %s: %s (%s)\n",
				app.store.Translate("onboarding.done"),
				name,
				goalName,
				app.store.FormatAmount(target),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "your display name")
	cmd.Flags().StringVar(&goalName, "goal", "", "what you are saving for")
	cmd.Flags().StringVar(&goalTarget, "target", "", "goal target amount")
	cmd.Flags().StringVar(&horizon, "horizon", "", "time horizon, e.g. 6m or 2y")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
