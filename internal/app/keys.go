package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/frequency/internal/errmsg"
	"github.com/llehouerou/frequency/internal/keymap"
	"github.com/llehouerou/frequency/internal/playback"
)

// handleKey dispatches a key press through the resolver.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	action := m.resolver.Resolve(m.focusContext(), msg.String())
	if action == "" {
		return nil
	}
	if m.showHelp && action != keymap.ActionHelp && action != keymap.ActionQuit {
		m.showHelp = false
		return nil
	}

	switch action {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionSwitchFocus:
		if m.focus == FocusPlaylists {
			m.focus = FocusTracks
		} else {
			m.focus = FocusPlaylists
		}
		return nil
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return nil
	}

	if cmd, ok := m.handlePlaybackAction(action); ok {
		return cmd
	}
	if m.focus == FocusTracks {
		return m.handleTracksAction(action)
	}
	return m.handlePlaylistsAction(action)
}

func (m *Model) handlePlaybackAction(action keymap.Action) (tea.Cmd, bool) {
	switch action {
	case keymap.ActionPlayPause:
		m.svc.Toggle()
	case keymap.ActionNextTrack:
		m.svc.Next()
	case keymap.ActionPrevTrack:
		m.svc.Prev()
	case keymap.ActionVolumeUp:
		m.svc.SetVolume(m.svc.Session().Volume + m.volumeStep)
	case keymap.ActionVolumeDown:
		m.svc.SetVolume(m.svc.Session().Volume - m.volumeStep)
	case keymap.ActionCycleRepeat:
		m.setStatus("Loop: " + m.svc.ToggleLoop().String())
	case keymap.ActionToggleShuffle:
		if m.svc.ToggleShuffle() {
			m.setStatus("Shuffle on")
		} else {
			m.setStatus("Shuffle off")
		}
	default:
		return nil, false
	}
	return m.startTicking(), true
}

func (m *Model) handlePlaylistsAction(action keymap.Action) tea.Cmd {
	pls := m.svc.Playlists()
	if m.playlistCursor.Apply(action, len(pls), m.listHeight()) {
		m.trackCursor.Jump(0, 0, m.listHeight())
		return nil
	}

	if action == keymap.ActionNewPlaylist {
		return m.openPrompt("New playlist", "", promptContext{kind: promptNewPlaylist})
	}

	pl, ok := m.browsed()
	if !ok {
		return nil
	}
	switch action {
	case keymap.ActionSelect:
		if err := m.svc.SelectPlaylist(pl.ID); err != nil {
			m.fail(errmsg.OpPlaylistSelect, pl.Title, err)
			return nil
		}
		m.focus = FocusTracks
	case keymap.ActionRename:
		return m.openPrompt("Rename playlist", pl.Title, promptContext{kind: promptRenamePlaylist, playlistID: pl.ID})
	case keymap.ActionDelete:
		if err := m.svc.DeletePlaylist(pl.ID); err != nil {
			m.fail(errmsg.OpPlaylistDelete, pl.Title, err)
			return nil
		}
		m.setStatus("Deleted " + pl.Title)
		m.clampCursors()
	}
	return nil
}

func (m *Model) handleTracksAction(action keymap.Action) tea.Cmd {
	pl, ok := m.browsed()
	if !ok {
		return nil
	}
	if m.trackCursor.Apply(action, pl.Len(), m.listHeight()) {
		return nil
	}

	if action == keymap.ActionAddTrack {
		return m.openPrompt("Add track (path or URL) to "+pl.Title, "", promptContext{kind: promptAddTrack, playlistID: pl.ID})
	}

	_, track, ok := m.selectedTrack()
	if !ok {
		return nil
	}
	pos := m.trackCursor.Pos()

	switch action {
	case keymap.ActionSelect:
		if err := m.svc.Play(track.ID, pl.ID); err != nil {
			m.fail(errmsg.OpPlaybackStart, track.Title, err)
			return nil
		}
		return m.startTicking()
	case keymap.ActionRename:
		return m.openPrompt("Rename track", track.Title, promptContext{kind: promptRenameTrack, playlistID: pl.ID, trackID: track.ID})
	case keymap.ActionDelete:
		if err := m.svc.RemoveTrack(pl.ID, track.ID); err != nil {
			m.fail(errmsg.OpTrackRemove, track.Title, err)
			return nil
		}
		m.clampCursors()
	case keymap.ActionMoveItemUp, keymap.ActionMoveItemDown:
		to := pos + 1
		if action == keymap.ActionMoveItemUp {
			to = pos - 1
		}
		if to < 0 || to >= pl.Len() {
			return nil
		}
		if err := m.svc.MoveTrack(pl.ID, pos, to); err != nil {
			m.fail(errmsg.OpTrackMove, track.Title, err)
			return nil
		}
		m.trackCursor.Jump(to, pl.Len(), m.listHeight())
	}
	return nil
}

// fail shows a user-facing error and logs it.
func (m *Model) fail(op errmsg.Op, subject string, err error) {
	log.Warn().Err(err).Str("op", string(op)).Str("subject", subject).Msg("operation failed")
	m.setError(errmsg.FormatWith(op, subject, err))
}

// startTicking begins progress updates if playback is running.
func (m *Model) startTicking() tea.Cmd {
	if m.ticking || m.svc.State() != playback.StatePlaying {
		return nil
	}
	m.ticking = true
	return TickCmd()
}
