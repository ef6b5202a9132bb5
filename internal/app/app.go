package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/frequency/internal/keymap"
	"github.com/llehouerou/frequency/internal/notify"
	"github.com/llehouerou/frequency/internal/playback"
	"github.com/llehouerou/frequency/internal/playlist"
	"github.com/llehouerou/frequency/internal/ui/cursor"
	"github.com/llehouerou/frequency/internal/ui/textinput"
)

// FocusTarget is the pane receiving navigation keys.
type FocusTarget int

const (
	FocusPlaylists FocusTarget = iota
	FocusTracks
)

// scrollMargin is the number of rows kept visible around the cursor.
const scrollMargin = 2

const defaultVolumeStep = 0.05

// Options configures the model.
type Options struct {
	VolumeStep float64
	Notifier   notify.Notifier // nil disables notifications
}

// Model is the root application model.
type Model struct {
	svc      playback.Service
	sub      *playback.Subscription
	resolver *keymap.Resolver
	tracker  *notify.Tracker

	focus          FocusTarget
	playlistCursor cursor.Cursor
	trackCursor    cursor.Cursor
	prompt         textinput.Model
	showHelp       bool
	ticking        bool

	volumeStep float64
	status     string
	errorMsg   string

	width  int
	height int
}

// New creates the application model over svc.
func New(svc playback.Service, opts Options) Model {
	m := Model{
		svc:            svc,
		sub:            svc.Subscribe(),
		resolver:       keymap.NewResolver(keymap.Bindings),
		playlistCursor: cursor.New(scrollMargin),
		trackCursor:    cursor.New(scrollMargin),
		prompt:         textinput.New(),
		volumeStep:     opts.VolumeStep,
	}
	if m.volumeStep <= 0 {
		m.volumeStep = defaultVolumeStep
	}
	if opts.Notifier != nil {
		m.tracker = notify.NewTracker(opts.Notifier)
	}

	if active, ok := svc.ActivePlaylist(); ok {
		pls := svc.Playlists()
		for i, pl := range pls {
			if pl.ID == active.ID {
				m.playlistCursor.Jump(i, len(pls), m.listHeight())
			}
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(WatchServiceEvents(m.sub), WatchStderr())
}

// browsed returns the playlist under the playlists cursor.
func (m Model) browsed() (playlist.Playlist, bool) {
	pls := m.svc.Playlists()
	pos := m.playlistCursor.Pos()
	if pos < 0 || pos >= len(pls) {
		return playlist.Playlist{}, false
	}
	return pls[pos], true
}

// selectedTrack returns the track under the tracks cursor.
func (m Model) selectedTrack() (playlist.Playlist, playlist.Track, bool) {
	pl, ok := m.browsed()
	if !ok {
		return pl, playlist.Track{}, false
	}
	pos := m.trackCursor.Pos()
	if pos < 0 || pos >= pl.Len() {
		return pl, playlist.Track{}, false
	}
	return pl, pl.Tracks[pos], true
}

func (m Model) focusContext() string {
	if m.focus == FocusTracks {
		return keymap.ContextTracks
	}
	return keymap.ContextPlaylists
}

// clampCursors keeps both cursors inside lists that may have shrunk.
func (m *Model) clampCursors() {
	m.playlistCursor.Clamp(len(m.svc.Playlists()), m.listHeight())
	pl, _ := m.browsed()
	m.trackCursor.Clamp(pl.Len(), m.listHeight())
}

func (m *Model) setError(text string) {
	m.errorMsg = text
	m.status = ""
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.errorMsg = ""
}
