// Package quiz drives the six-question investor profile flow in the
// terminal: one answer per question scored 1 to 3, restartable from the
// first question, classified only once the sixth answer lands.
package quiz

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kobofi/kobo-cli/internal/catalog"
	"github.com/kobofi/kobo-cli/internal/domain"
	"github.com/kobofi/kobo-cli/internal/i18n"
)

var (
	ErrQuizAborted         = errors.New("risk quiz aborted")
	ErrUnexpectedQuizModel = errors.New("unexpected final bubbletea model type")
)

type styles struct {
	title    lipgloss.Style
	progress lipgloss.Style
	prompt   lipgloss.Style
	option   lipgloss.Style
	key      lipgloss.Style
	hint     lipgloss.Style
	result   lipgloss.Style
	detail   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		progress: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		option:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		key:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		hint:     lipgloss.NewStyle().Faint(true),
		result:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

type Model struct {
	lang      domain.Language
	questions []catalog.QuizQuestion
	quiz      domain.RiskAssessment
	styles    styles

	result  *domain.RiskProfile
	aborted bool
	err     error
}

func NewModel(lang domain.Language) Model {
	return Model{
		lang:      lang,
		questions: catalog.QuizQuestions(lang),
		styles:    newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "1", "2", "3":
		if m.result != nil {
			return m, nil
		}
		score := int(keyMsg.String()[0] - '0')
		if err := m.quiz.Answer(score); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.quiz.Complete() {
			profile, err := m.quiz.Result()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.result = &profile
			return m, tea.Quit
		}
		return m, nil
	case "r":
		m.quiz.Reset()
		m.result = nil
		return m, nil
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.result != nil {
		return m.resultView(*m.result)
	}

	idx := m.quiz.Answered()
	if idx >= len(m.questions) {
		return ""
	}
	question := m.questions[idx]

	lines := []string{
		m.styles.title.Render(i18n.Translate(m.lang, "risk.title")),
		m.styles.progress.Render(fmt.Sprintf("question %d/%d", idx+1, len(m.questions))),
		"",
		m.styles.prompt.Render(question.Prompt),
	}

	for i, option := range question.Options {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.styles.key.Render(fmt.Sprintf("  %d ", i+1)),
			m.styles.option.Render(option),
		))
	}

	lines = append(lines, "", m.styles.hint.Render("1-3 answer · r restart · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) resultView(profile domain.RiskProfile) string {
	category := i18n.Translate(m.lang, "risk.category."+string(profile.Category))

	products := make([]string, 0, len(profile.ProductKeys))
	for _, key := range profile.ProductKeys {
		products = append(products, i18n.Translate(m.lang, key))
	}

	lines := []string{
		m.styles.title.Render(i18n.Translate(m.lang, "risk.title")),
		"",
		m.styles.result.Render(fmt.Sprintf("%s (%.0f%%)", category, profile.Percentage)),
		m.styles.detail.Render(fmt.Sprintf(
			"money market %d%% · bonds %d%% · stocks %d%%",
			profile.Allocation.MoneyMarket,
			profile.Allocation.Bonds,
			profile.Allocation.Stocks,
		)),
		m.styles.detail.Render(strings.Join(products, ", ")),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run executes the interactive quiz and returns the classification, or
// ErrQuizAborted if the user backed out before the sixth answer.
func Run(input io.Reader, output io.Writer, lang domain.Language) (domain.RiskProfile, error) {
	p := tea.NewProgram(
		NewModel(lang),
		tea.WithInput(input),
		tea.WithOutput(output),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.RiskProfile{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return domain.RiskProfile{}, ErrUnexpectedQuizModel
	}

	switch {
	case m.err != nil:
		return domain.RiskProfile{}, m.err
	case m.aborted || m.result == nil:
		return domain.RiskProfile{}, ErrQuizAborted
	default:
		return *m.result, nil
	}
}
