package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kobofi/kobo-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var (
		name    string
		email   string
		phone   string
		balance string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with an existing profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			opening := decimal.Zero
			if balance != "" {
				parsed, err := decimal.NewFromString(balance)
				if err != nil {
					return fmt.Errorf("parse balance %q: %w", balance, err)
				}
				opening = parsed
			}

			profile := domain.Profile{
				Name:    name,
				Email:   email,
				Phone:   phone,
				Balance: opening,
			}
			if err := app.service.Login(cmd.Context(), profile); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s, %s\n", app.store.Translate("welcome.title"), name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&balance, "balance", "", "opening wallet balance")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the active profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			if err := app.service.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")

			return nil
		},
	}
}
