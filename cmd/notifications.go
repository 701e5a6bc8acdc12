package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Notification counter",
	}

	cmd.AddCommand(
		newNotificationsShowCmd(app),
		newNotificationsReadCmd(app),
	)

	return cmd
}

func newNotificationsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the unread notification count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n",
				app.store.Translate("dashboard.notifications"),
				app.store.UnreadNotifications(),
			)

			return nil
		},
	}
}

func newNotificationsReadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Mark all notifications as read",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			if err := app.service.MarkNotificationsRead(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: 0\n", app.store.Translate("dashboard.notifications"))

			return nil
		},
	}
}
