package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the wallet dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			overview := app.service.Overview()

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(overview)
			}

			output, err := app.dashboardRenderer(overview)
			if err != nil {
				return fmt.Errorf("render dashboard: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the overview as JSON")

	return cmd
}
