package tui

import "github.com/charmbracelet/lipgloss"

// -------------------- THEME (Lip Gloss) --------------------

var (
	cMuted   = lipgloss.Color("244")
	cText    = lipgloss.Color("252")
	cAccent  = lipgloss.Color("39")
	cAccent2 = lipgloss.Color("45")
	cWarn    = lipgloss.Color("203")
	cOK      = lipgloss.Color("78")

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(cAccent).
			Bold(true)

	titleAccentStyle = lipgloss.NewStyle().
				Foreground(cAccent2).
				Bold(true).
				Underline(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cMuted).
			Padding(0, 1)

	labelStyle        = lipgloss.NewStyle().Foreground(cMuted)
	valueStyle        = lipgloss.NewStyle().Foreground(cText)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(cAccent).Bold(true)

	helpStyle    = lipgloss.NewStyle().Foreground(cMuted)
	errorStyle   = lipgloss.NewStyle().Foreground(cWarn)
	successStyle = lipgloss.NewStyle().Foreground(cOK)

	selectedRowStyle = lipgloss.NewStyle().Foreground(cAccent2).Bold(true)
)

// AdminTitle renders a two-part heading with the second part decorated,
// e.g. AdminTitle("My", "Listings").
func AdminTitle(text1, text2 string) string {
	return titleStyle.Render(text1) + " " + titleAccentStyle.Render(text2)
}
