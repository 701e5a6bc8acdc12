package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kobofi/kobo-cli/internal/catalog"
	"github.com/kobofi/kobo-cli/internal/money"
)

func newCirclesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "circles",
		Short: "Group savings circles",
	}

	cmd.AddCommand(
		newCirclesListCmd(app),
		newCirclesContributeCmd(app),
	)

	return cmd
}

func newCirclesListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available circles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, circle := range catalog.Circles() {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%d members\t%s %s\n",
					circle.ID,
					circle.Name,
					circle.Members,
					money.Format(circle.Currency, circle.Contribution),
					circle.Frequency,
				)
			}

			return nil
		},
	}
}

func newCirclesContributeCmd(app *app) *cobra.Command {
	var circleID string

	cmd := &cobra.Command{
		Use:   "contribute <amount>",
		Short: "Contribute to a circle from your wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parse amount %q: %w", args[0], err)
			}

			circle, err := app.service.ContributeToCircle(cmd.Context(), circleID, amount)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n",
				app.store.Translate("wallet.circle"),
				app.store.FormatAmount(amount),
				circle.Name,
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&circleID, "circle", "", "circle id (see `kobo circles list`)")
	_ = cmd.MarkFlagRequired("circle")

	return cmd
}
