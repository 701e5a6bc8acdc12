package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kobofi/kobo-cli/internal/domain"
	"github.com/kobofi/kobo-cli/internal/store"
)

func newWalletCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Move money between wallet, savings and investments",
	}

	cmd.AddCommand(
		newWalletTransactionCmd(app, "topup", "Add money to your wallet", domain.TransactionTopUp, "wallet.topup"),
		newWalletTransactionCmd(app, "withdraw", "Withdraw money from your wallet", domain.TransactionWithdraw, "wallet.withdraw"),
		newWalletTransactionCmd(app, "save", "Move wallet money into savings", domain.TransactionSavings, "wallet.save"),
		newWalletTransactionCmd(app, "invest", "Move wallet money into your portfolio", domain.TransactionInvestment, "wallet.invest"),
		newWalletBalanceCmd(app),
	)

	return cmd
}

func newWalletTransactionCmd(app *app, use, short string, kind domain.TransactionKind, labelKey string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <amount>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parse amount %q: %w", args[0], err)
			}

			if err := app.service.Transact(cmd.Context(), amount, kind); err != nil {
				return err
			}

			user, _ := app.store.User()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s: %s\n",
				app.store.Translate(labelKey),
				app.store.FormatAmount(amount),
				app.store.Translate("dashboard.balance"),
				app.store.FormatAmount(user.Balance),
			)

			return nil
		},
	}
}

func newWalletBalanceCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show wallet, savings and portfolio balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			st := store.FromContext(cmd.Context())
			user, ok := st.User()
			if !ok {
				return domain.ErrNotLoggedIn
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\t%s\n", st.Translate("dashboard.balance"), st.FormatAmount(user.Balance))
			_, _ = fmt.Fprintf(out, "%s\t%s\n", st.Translate("dashboard.savings"), st.FormatAmount(user.Savings))
			_, _ = fmt.Fprintf(out, "%s\t%s\n", st.Translate("dashboard.portfolio"), st.FormatAmount(user.PortfolioValue))

			return nil
		},
	}
}
