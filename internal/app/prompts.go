package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/frequency/internal/errmsg"
	"github.com/llehouerou/frequency/internal/ui/textinput"
)

type promptKind int

const (
	promptNewPlaylist promptKind = iota
	promptRenamePlaylist
	promptRenameTrack
	promptAddTrack
)

// defaultPlaylistTitle names playlists created with an empty title.
const defaultPlaylistTitle = "New Playlist"

// promptContext travels with an open prompt and comes back in its Result.
type promptContext struct {
	kind       promptKind
	playlistID string
	trackID    string
}

func (m *Model) openPrompt(title, initial string, ctx promptContext) tea.Cmd {
	return m.prompt.Start(title, initial, ctx, m.width)
}

// handlePromptResult applies a confirmed prompt.
func (m *Model) handlePromptResult(r textinput.Result) tea.Cmd {
	ctx, ok := r.Context.(promptContext)
	if !ok || r.Canceled {
		return nil
	}

	switch ctx.kind {
	case promptNewPlaylist:
		title := r.Text
		if title == "" {
			title = defaultPlaylistTitle
		}
		pl := m.svc.CreatePlaylist(title)
		pls := m.svc.Playlists()
		for i := range pls {
			if pls[i].ID == pl.ID {
				m.playlistCursor.Jump(i, len(pls), m.listHeight())
			}
		}
		m.trackCursor.Jump(0, 0, m.listHeight())
		m.setStatus("Created " + pl.Title)

	case promptRenamePlaylist:
		if r.Text == "" {
			return nil
		}
		if err := m.svc.RenamePlaylist(ctx.playlistID, r.Text); err != nil {
			m.fail(errmsg.OpPlaylistRename, r.Text, err)
		}

	case promptRenameTrack:
		if r.Text == "" {
			return nil
		}
		if err := m.svc.RenameTrack(ctx.playlistID, ctx.trackID, r.Text); err != nil {
			m.fail(errmsg.OpTrackRename, r.Text, err)
		}

	case promptAddTrack:
		if r.Text == "" {
			return nil
		}
		return resolveTrackCmd(ctx.playlistID, r.Text)
	}
	return nil
}

// handleTrackResolved adds a resolved track to its playlist.
func (m *Model) handleTrackResolved(msg TrackResolvedMsg) {
	if msg.Err != nil {
		m.fail(errmsg.OpTrackAdd, msg.Input, msg.Err)
		return
	}
	if err := m.svc.AddTrack(msg.PlaylistID, msg.Track); err != nil {
		m.fail(errmsg.OpTrackAdd, msg.Track.Title, err)
		return
	}
	m.setStatus("Added " + msg.Track.Title)
	if pl, ok := m.browsed(); ok && pl.ID == msg.PlaylistID {
		m.trackCursor.Jump(pl.Len()-1, pl.Len(), m.listHeight())
	}
}
