package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/frequency/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 1)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func metaStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func progressFilledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func progressEmptyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func modeStyle(on bool) lipgloss.Style {
	if on {
		return lipgloss.NewStyle().Foreground(styles.T().Secondary)
	}
	return styles.T().S().Subtle
}
