package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kobofi/kobo-cli/internal/application"
)

func renderView(overview application.Overview, s styles) string {
	lines := []string{
		s.title.Render(overview.Labels.Title),
		s.header.Render(fmt.Sprintf("language: %s  currency: %s", overview.Language, overview.Currency)),
	}

	if !overview.LoggedIn {
		lines = append(lines, s.empty.Render("Not logged in. Run `kobo onboard` or `kobo login` to get started."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderWallet(overview, s)))

	if overview.Unread > 0 {
		lines = append(lines, s.badge.Render(fmt.Sprintf("%s: %d", overview.Labels.Notifications, overview.Unread)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWallet(overview application.Overview, s styles) string {
	parts := []string{
		s.name.Render(overview.Name),
		amountLine(overview.Labels.Balance, overview.Balance, s),
		amountLine(overview.Labels.Savings, overview.Savings, s),
		amountLine(overview.Labels.Portfolio, overview.Portfolio, s),
	}

	if overview.GoalName != "" {
		parts = append(parts, s.goal.Render(fmt.Sprintf("goal: %s (%s)", overview.GoalName, overview.GoalTarget)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func amountLine(label, amount string, s styles) string {
	style := s.amount
	if strings.HasPrefix(amount, "-") {
		style = s.negative
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render(label+": "),
		style.Render(amount),
	)
}
