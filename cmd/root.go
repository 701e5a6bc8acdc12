package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kobofi/kobo-cli/internal/store"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kobo",
		Short:         "Kobo: savings, investing and circles from the terminal",
		Long:          "kobo is a financial wellness companion: onboard with a savings goal, top up and move money between wallet, savings and investments, contribute to circles, take the investor profile quiz and browse bonds, funds and articles.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	// every subcommand runs inside the store's scope; reading the store
	// outside it is a programmer error and panics
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		cmd.SetContext(store.NewContext(cmd.Context(), app.store))
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newOnboardCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWalletCmd(app),
		newCirclesCmd(app),
		newRiskCmd(app),
		newPrefsCmd(app),
		newBrowseCmd(app),
		newNotificationsCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}
