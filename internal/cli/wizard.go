package cli

import (
	"fmt"

	"github.com/alexanderramin/juju/internal/cli/formatter"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// jujuHuhTheme returns a huh theme in the formatter palette.
func jujuHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// targetPickerForm asks which project receives the sessions of the project
// being deleted. targets must not be empty; the first is preselected.
func targetPickerForm(deleting *domain.Project, sessionCount int, targets []*domain.Project, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(targets))
	for _, p := range targets {
		options = append(options, huh.NewOption(fmt.Sprintf("%s  %s", p.Name, p.DisplayID()), p.ID))
	}
	*result = targets[0].ID

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Move %d sessions of %q to", sessionCount, deleting.Name)).
				Options(options...).
				Value(result),
		),
	).WithTheme(jujuHuhTheme()).WithShowHelp(false)
}

// confirmForm creates a huh form for a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(jujuHuhTheme()).WithShowHelp(false)
}
