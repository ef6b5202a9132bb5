package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Header renders the application name in bold, fading from the primary to
// the secondary theme color.
func Header(text string) string {
	return gradient(text, T().Primary, T().Secondary)
}

// gradient colors each grapheme of text along an HCL blend of from and to.
// Colors that are not #rrggbb render the whole text in from.
func gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	for g := uniseg.NewGraphemes(text); g.Next(); {
		clusters = append(clusters, g.Str())
	}

	start, err1 := colorful.Hex(string(from))
	end, err2 := colorful.Hex(string(to))
	if len(clusters) < 2 || err1 != nil || err2 != nil {
		if text == "" {
			return ""
		}
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, c := range clusters {
		col := start.BlendHcl(end, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(col.Hex())).Render(c))
	}
	return b.String()
}
