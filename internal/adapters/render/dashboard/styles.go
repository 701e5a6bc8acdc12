package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	name     lipgloss.Style
	label    lipgloss.Style
	amount   lipgloss.Style
	negative lipgloss.Style
	goal     lipgloss.Style
	badge    lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		amount:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		negative: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		goal:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		badge:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
