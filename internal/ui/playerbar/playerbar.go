// Package playerbar renders the now-playing bar at the bottom of the screen.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/frequency/internal/icons"
	"github.com/llehouerou/frequency/internal/playback"
	"github.com/llehouerou/frequency/internal/ui/render"
)

// Height is the rendered height including borders.
const Height = 3

// minBarWidth is the narrowest progress bar worth drawing.
const minBarWidth = 8

// State holds everything needed to render the player bar.
type State struct {
	Title         string // empty when nothing is current
	PlaylistTitle string
	Local         bool
	Playing       bool
	Position      time.Duration
	Duration      time.Duration
	Volume        float64
	Loop          playback.LoopMode
	Shuffle       bool
}

// NewState reads the player bar state from the service.
func NewState(svc playback.Service) State {
	sess := svc.Session()
	st := State{
		Playing: sess.IsPlaying,
		Volume:  sess.Volume,
		Loop:    sess.LoopMode,
		Shuffle: sess.ShuffleEnabled,
	}
	if pl, ok := svc.ActivePlaylist(); ok {
		st.PlaylistTitle = pl.Title
	}
	if t := svc.CurrentTrack(); t != nil {
		st.Title = t.Title
		st.Local = t.IsLocal
		st.Position = svc.Position()
		st.Duration = svc.Duration()
	}
	return st
}

// Render returns the player bar for the given outer width.
func Render(s State, width int) string {
	inner := max(width-4, 0) // border and padding

	status := icons.State(s.Playing, s.Title != "")
	right := strings.Join([]string{modes(s), renderVolume(s.Volume)}, "  ")

	if s.Title == "" {
		left := status + "  " + metaStyle().Render("Nothing playing")
		return barStyle().Width(width - 2).Render(render.Row(left, right, inner))
	}

	times := metaStyle().Render(render.Duration(s.Position) + " / " + render.Duration(s.Duration))
	fixed := lipgloss.Width(status) + lipgloss.Width(times) + lipgloss.Width(right) + 8

	title := icons.FormatTrack(s.Title, s.Local)
	if s.PlaylistTitle != "" {
		title += " · " + s.PlaylistTitle
	}
	titleWidth := min(lipgloss.Width(title), max(inner-fixed-minBarWidth, 0))
	title = render.Truncate(title, titleWidth)

	barWidth := max(inner-fixed-titleWidth, 0)

	var b strings.Builder
	b.WriteString(status)
	b.WriteString("  ")
	b.WriteString(titleStyle().Render(title))
	b.WriteString("  ")
	b.WriteString(progressBar(s.Position, s.Duration, barWidth))
	b.WriteString("  ")
	b.WriteString(times)
	b.WriteString("  ")
	b.WriteString(right)

	return barStyle().Width(width - 2).Render(b.String())
}

func modes(s State) string {
	loop := icons.RepeatAll()
	if s.Loop == playback.LoopOne {
		loop = icons.RepeatOne()
	}
	return modeStyle(s.Shuffle).Render(icons.Shuffle()) + " " +
		modeStyle(s.Loop != playback.LoopOff).Render(loop)
}
