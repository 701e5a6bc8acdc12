package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kobofi/kobo-cli/internal/catalog"
	"github.com/kobofi/kobo-cli/internal/money"
)

func newBrowseCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse bonds, funds and articles",
	}

	cmd.AddCommand(
		newBrowseBondsCmd(app),
		newBrowseFundsCmd(app),
		newBrowseArticlesCmd(app),
		newBrowseReadCmd(app),
	)

	return cmd
}

func newBrowseBondsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bonds",
		Short: "List available bonds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, bond := range catalog.Bonds() {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%.1f%%\t%dy\tmin %s\n",
					bond.ID,
					bond.Name,
					bond.CouponRate,
					bond.TenorYears,
					money.Format(bond.Currency, bond.MinAmount),
				)
			}

			return nil
		},
	}
}

func newBrowseFundsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "funds",
		Short: "List available funds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, fund := range catalog.Funds() {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%.1f%%\tmin %s\n",
					fund.ID,
					fund.Name,
					app.store.Translate("risk.category."+string(fund.Category)),
					fund.AnnualYield,
					money.Format(fund.Currency, fund.MinAmount),
				)
			}

			return nil
		},
	}
}

func newBrowseArticlesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "articles",
		Short: "List educational articles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, article := range catalog.Articles() {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%d min\n", article.ID, article.Title, article.Topic, article.Minutes)
			}

			return nil
		},
	}
}

func newBrowseReadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <article-id>",
		Short: "Open an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			article, err := app.service.OpenArticle(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d min read)\n", article.Title, article.Minutes)

			return nil
		},
	}
}
