package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the huh theme used by interactive prompts.
func Theme() *huh.Theme {
	t := huh.ThemeBase()
	title := lipgloss.NewStyle().Foreground(Primary).Bold(true)
	muted := lipgloss.NewStyle().Foreground(Muted)

	t.Form.Base = t.Form.Base.PaddingLeft(1)
	t.Group.Title = title
	t.Group.Description = muted

	t.Focused.Title = title
	t.Focused.Description = muted
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(Danger).SetString(" !")
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(Danger)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(Primary).SetString("> ")
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(Primary)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(Primary).SetString("[x] ")
	t.Focused.UnselectedPrefix = muted.SetString("[ ] ")
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(Primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(Primary).Background(lipgloss.Color("0"))

	t.Blurred = t.Focused
	t.Blurred.Title = muted
	t.Blurred.MultiSelectSelector = lipgloss.NewStyle().SetString("  ")
	return t
}

// NewForm wraps groups in a form using Theme.
func NewForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(Theme())
}
