package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kobofi/kobo-cli/internal/adapters/quiz"
	"github.com/kobofi/kobo-cli/internal/domain"
)

func newRiskCmd(app *app) *cobra.Command {
	var answersFlag string

	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Take the investor profile quiz",
		Long:  "Answer six questions scored 1 (conservative) to 3 (aggressive) and get a risk category with a recommended allocation. The result is shown, not saved; retake it any time.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.LoadSession(cmd.Context()); err != nil {
				return err
			}

			if err := app.service.BeginRiskQuiz(cmd.Context()); err != nil {
				return err
			}

			var profile domain.RiskProfile
			if answersFlag != "" {
				answers, err := parseAnswers(answersFlag)
				if err != nil {
					return err
				}
				profile, err = domain.ClassifyRisk(answers)
				if err != nil {
					return err
				}
			} else {
				var err error
				profile, err = quiz.Run(cmd.InOrStdin(), cmd.OutOrStdout(), app.store.Language())
				if err != nil {
					return err
				}
			}

			printRiskProfile(app, cmd, profile)

			return nil
		},
	}

	cmd.Flags().StringVar(&answersFlag, "answers", "", "six comma-separated answers in 1..3, e.g. 1,2,3,1,2,3 (skips the interactive quiz)")

	return cmd
}

func parseAnswers(raw string) ([]int, error) {
	fields := strings.Split(raw, ",")
	answers := make([]int, 0, len(fields))
	for _, field := range fields {
		score, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("parse answer %q: %w", field, err)
		}
		answers = append(answers, score)
	}

	return answers, nil
}

func printRiskProfile(app *app, cmd *cobra.Command, profile domain.RiskProfile) {
	out := cmd.OutOrStdout()

	category := app.store.Translate("risk.category." + string(profile.Category))
	_, _ = fmt.Fprintf(out, "%s: %s (%.1f%%)\n", app.store.Translate("risk.title"), category, profile.Percentage)
	_, _ = fmt.Fprintf(out, "allocation: money market %d%%, bonds %d%%, stocks %d%%\n",
		profile.Allocation.MoneyMarket,
		profile.Allocation.Bonds,
		profile.Allocation.Stocks,
	)

	products := make([]string, 0, len(profile.ProductKeys))
	for _, key := range profile.ProductKeys {
		products = append(products, app.store.Translate(key))
	}
	_, _ = fmt.Fprintf(out, "recommended: %s\n", strings.Join(products, ", "))
}
