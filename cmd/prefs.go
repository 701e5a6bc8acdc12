package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kobofi/kobo-cli/internal/domain"
)

func newPrefsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Language and currency preferences",
	}

	cmd.AddCommand(
		newPrefsShowCmd(app),
		newPrefsLanguageCmd(app),
		newPrefsCurrencyCmd(app),
		newPrefsSuggestCmd(app),
	)

	return cmd
}

func newPrefsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active language and currency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			direction := "ltr"
			if app.store.Language().RTL() {
				direction = "rtl"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "language: %s (%s)\ncurrency: %s\n",
				app.store.Language(), direction, app.store.Currency())

			return nil
		},
	}
}

func newPrefsLanguageCmd(app *app) *cobra.Command {
	supported := make([]string, 0, len(domain.SupportedLanguages()))
	for _, lang := range domain.SupportedLanguages() {
		supported = append(supported, string(lang))
	}

	return &cobra.Command{
		Use:   "language <code>",
		Short: "Set the display language (" + strings.Join(supported, ", ") + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			lang := domain.Language(args[0])
			if err := app.service.SetLanguage(cmd.Context(), lang); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", app.store.Translate("welcome.title"), app.direction())

			return nil
		},
	}
}

func newPrefsCurrencyCmd(app *app) *cobra.Command {
	supported := make([]string, 0, len(domain.SupportedCurrencies()))
	for _, currency := range domain.SupportedCurrencies() {
		supported = append(supported, string(currency))
	}

	return &cobra.Command{
		Use:   "currency <code>",
		Short: "Set the display currency (" + strings.Join(supported, ", ") + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			currency := domain.Currency(strings.ToUpper(args[0]))
			if err := app.service.SetCurrency(cmd.Context(), currency); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "currency: %s (%s)\n", currency, app.store.FormatCurrency(0))

			return nil
		},
	}
}

func newPrefsSuggestCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <country>",
		Short: "Suggest a language and currency for a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, suggestion := range domain.CountrySuggestions() {
				if strings.EqualFold(suggestion.Country, args[0]) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: language %s, currency %s\n",
						suggestion.Country, suggestion.Language, suggestion.Currency)
					return nil
				}
			}

			return fmt.Errorf("no suggestion for country %q", args[0])
		},
	}
}
