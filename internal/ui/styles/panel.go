package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns a rounded panel whose border shows focus.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// PanelTitle renders a pane heading.
func PanelTitle(title string, focused bool) string {
	if focused {
		return lipgloss.NewStyle().Foreground(T().Primary).Bold(true).Render(title)
	}
	return T().S().Muted.Render(title)
}
