package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHeader_PreservesWidth(t *testing.T) {
	assert.Equal(t, 9, lipgloss.Width(Header("frequency")))
	assert.Equal(t, 1, lipgloss.Width(Header("x")))
	assert.Empty(t, Header(""))
}

func TestGradient_NonHexFallsBack(t *testing.T) {
	out := gradient("abc", lipgloss.Color("240"), T().Secondary)
	assert.Equal(t, 3, lipgloss.Width(out))
	assert.Contains(t, out, "abc")
}

func TestStylesCached(t *testing.T) {
	assert.Same(t, T().S(), T().S())
}
