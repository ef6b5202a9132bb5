package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/frequency/internal/icons"
	"github.com/llehouerou/frequency/internal/keymap"
	"github.com/llehouerou/frequency/internal/playlist"
	"github.com/llehouerou/frequency/internal/ui/playerbar"
	"github.com/llehouerou/frequency/internal/ui/render"
	"github.com/llehouerou/frequency/internal/ui/styles"
)

const (
	headerHeight = 1
	statusHeight = 1
	promptHeight = 3
	minPaneWidth = 24
)

// bodyHeight is the height of the two panes including borders.
func (m Model) bodyHeight() int {
	h := m.height - headerHeight - playerbar.Height - statusHeight
	if m.prompt.Active() {
		h -= promptHeight
	}
	return max(h, 0)
}

// listHeight is the number of rows visible in a pane.
func (m Model) listHeight() int {
	return max(m.bodyHeight()-3, 0) // borders and pane title
}

func (m Model) paneWidths() (left, right int) {
	left = min(max(m.width/3, minPaneWidth), m.width)
	return left, m.width - left
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	parts := []string{m.renderHeader()}
	if m.showHelp {
		parts = append(parts, m.renderHelp())
	} else {
		left, right := m.paneWidths()
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderPlaylists(left),
			m.renderTracks(right),
		))
	}
	if m.prompt.Active() {
		parts = append(parts, m.prompt.View())
	}
	parts = append(parts,
		playerbar.Render(playerbar.NewState(m.svc), m.width),
		m.renderStatus(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	n := len(m.svc.Playlists())
	count := styles.T().S().Muted.Render(fmt.Sprintf("%d playlists", n))
	return render.Row(styles.Header("frequency"), count, m.width)
}

func (m Model) renderStatus() string {
	hint := styles.T().S().Subtle.Render("? help")
	var left string
	switch {
	case m.errorMsg != "":
		left = styles.T().S().Error.Render(render.Truncate(m.errorMsg, m.width-8))
	case m.status != "":
		left = styles.T().S().Muted.Render(render.Truncate(m.status, m.width-8))
	}
	return render.Row(left, hint, m.width)
}

// renderPane draws a bordered pane with a title and pre-rendered rows.
func (m Model) renderPane(title string, rows []string, width int, focused bool) string {
	inner := max(width-2, 0)
	lines := make([]string, 0, m.listHeight()+1)
	lines = append(lines, styles.PanelTitle(render.Truncate(title, inner), focused))
	lines = append(lines, rows...)
	for len(lines) < m.listHeight()+1 {
		lines = append(lines, "")
	}
	return styles.PanelStyle(focused).
		Width(inner).
		Height(max(m.bodyHeight()-2, 0)).
		Render(strings.Join(lines, "\n"))
}

func (m Model) row(text string, width int, selected, focused bool, style lipgloss.Style) string {
	text = render.TruncateAndPad(text, width)
	if selected && focused {
		return styles.T().S().Cursor.Inherit(style).Render(text)
	}
	return style.Render(text)
}

func (m Model) renderPlaylists(width int) string {
	focused := m.focus == FocusPlaylists
	inner := max(width-2, 0)
	pls := m.svc.Playlists()
	activeID := m.svc.Session().ActivePlaylistID

	var rows []string
	if len(pls) == 0 {
		rows = append(rows, styles.T().S().Subtle.Render(render.Truncate("No playlists. Press n to create one.", inner)))
	}
	start, end := m.playlistCursor.VisibleRange(len(pls), m.listHeight())
	for i := start; i < end; i++ {
		pl := pls[i]
		marker := "  "
		style := styles.T().S().Base
		if pl.ID == activeID {
			marker = "● "
			style = styles.T().S().Active
		}
		count := fmt.Sprintf(" %d", pl.Len())
		name := render.Truncate(marker+icons.FormatPlaylist(pl.Title), max(inner-lipgloss.Width(count), 0))
		rows = append(rows, m.row(render.Row(name, count, inner), inner, i == m.playlistCursor.Pos(), focused, style))
	}
	return m.renderPane("Playlists", rows, width, focused)
}

func (m Model) renderTracks(width int) string {
	focused := m.focus == FocusTracks
	inner := max(width-2, 0)
	pl, ok := m.browsed()
	if !ok {
		return m.renderPane("Tracks", nil, width, focused)
	}

	sess := m.svc.Session()
	current := ""
	if sess.ActivePlaylistID == pl.ID {
		current = sess.CurrentTrackID
	}

	var rows []string
	if pl.Len() == 0 {
		rows = append(rows, styles.T().S().Subtle.Render(render.Truncate("Empty. Press a to add a track.", inner)))
	}
	now := time.Now()
	start, end := m.trackCursor.VisibleRange(pl.Len(), m.listHeight())
	for i := start; i < end; i++ {
		rows = append(rows, m.trackRow(pl.Tracks[i], i, inner, now, current, sess.IsPlaying, focused))
	}
	return m.renderPane(pl.Title, rows, width, focused)
}

func (m Model) trackRow(t playlist.Track, i, width int, now time.Time, current string, playing, focused bool) string {
	style := styles.T().S().Base
	prefix := fmt.Sprintf("%3d ", i+1)
	if t.ID == current {
		style = styles.T().S().Playing
		prefix = fmt.Sprintf("%3s ", icons.State(playing, true))
	}
	added := ""
	if width > 40 {
		added = " " + render.Added(t.AddedAt, now)
	}
	title := render.Truncate(prefix+icons.FormatTrack(t.Title, t.IsLocal), max(width-lipgloss.Width(added), 0))
	return m.row(render.Row(title, added, width), width, i == m.trackCursor.Pos(), focused, style)
}

var helpSections = []struct {
	title   string
	context string
}{
	{"Global", keymap.ContextGlobal},
	{"Playback", keymap.ContextPlayback},
	{"Playlists", keymap.ContextPlaylists},
	{"Tracks", keymap.ContextTracks},
}

func (m Model) renderHelp() string {
	var lines []string
	for _, sec := range helpSections {
		lines = append(lines, styles.T().S().Title.Render(sec.title))
		for _, b := range keymap.ByContext(sec.context) {
			lines = append(lines, "  "+render.TruncateAndPad(keyLabels(b.Keys), 18)+b.Description)
		}
		lines = append(lines, "")
	}
	height := max(m.bodyHeight()-2, 0)
	if len(lines) > height {
		lines = lines[:height]
	}
	return styles.PanelStyle(true).
		Width(max(m.width-2, 0)).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// keyLabels joins binding keys for display, naming the space bar once.
func keyLabels(keys []string) string {
	labels := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		if !seen[k] {
			seen[k] = true
			labels = append(labels, k)
		}
	}
	return strings.Join(labels, ", ")
}
