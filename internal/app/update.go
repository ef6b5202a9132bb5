package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/frequency/internal/errmsg"
	"github.com/llehouerou/frequency/internal/playback"
	"github.com/llehouerou/frequency/internal/ui/textinput"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampCursors()
		return m, nil

	case tea.KeyMsg:
		if m.prompt.Active() {
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd
		}
		cmd := m.handleKey(msg)
		return m, cmd

	case textinput.Result:
		cmd := m.handlePromptResult(msg)
		return m, cmd

	case TrackResolvedMsg:
		m.handleTrackResolved(msg)
		return m, nil

	case TickMsg:
		if m.svc.State() != playback.StatePlaying {
			m.ticking = false
			return m, nil
		}
		return m, TickCmd()

	case ServiceClosedMsg:
		return m, nil

	case StderrMsg:
		m.setError(string(msg))
		return m, WatchStderr()

	case NotifyFailedMsg:
		log.Debug().Err(msg.Err).Msg("notification failed")
		return m, nil
	}

	if cmd, ok := m.handleServiceEvent(msg); ok {
		return m, tea.Batch(cmd, WatchServiceEvents(m.sub))
	}

	// Cursor blink and other input internals.
	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleServiceEvent reacts to playback service events. ok is false for
// messages that are not service events.
func (m *Model) handleServiceEvent(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	switch msg := msg.(type) {
	case StateChangedMsg:
		if msg.Current == playback.StatePlaying {
			return m.startTicking(), true
		}
		return nil, true

	case TrackChangedMsg:
		if msg.Current == nil || msg.Restarted || m.tracker == nil {
			return nil, true
		}
		title := ""
		if pl, err := m.svc.Playlist(msg.PlaylistID); err == nil {
			title = pl.Title
		}
		return notifyCmd(m.tracker, *msg.Current, title), true

	case PlaylistsChangedMsg:
		m.clampCursors()
		return nil, true

	case ModeChangedMsg, VolumeChangedMsg:
		return nil, true

	case PlaybackErrorMsg:
		subject := msg.URL
		if t := m.svc.CurrentTrack(); t != nil && t.URL == msg.URL {
			subject = t.Title
		}
		m.setError(errmsg.FormatWith(errmsg.OpPlaybackStart, subject, msg.Err))
		return nil, true
	}
	return nil, false
}
