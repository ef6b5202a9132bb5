package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/frequency/internal/notify"
	"github.com/llehouerou/frequency/internal/playback"
	"github.com/llehouerou/frequency/internal/playlist"
	"github.com/llehouerou/frequency/internal/stderr"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchServiceEvents waits for the next event on any subscription channel.
// Re-issue it after each event.
func WatchServiceEvents(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.PlaylistsChanged:
			return PlaylistsChangedMsg(e)
		case e := <-sub.ModeChanged:
			return ModeChangedMsg(e)
		case e := <-sub.VolumeChanged:
			return VolumeChangedMsg(e)
		case e := <-sub.Error:
			return PlaybackErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// waitForChannel creates a command that waits for a value from a channel
// and converts it to a message. ok is false once the channel is closed.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchStderr returns a command that waits for captured backend output.
func WatchStderr() tea.Cmd {
	return waitForChannel(stderr.Messages, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg(line)
	})
}

// resolveTrackCmd builds a track from input off the update loop, since
// local files are opened to read their tags.
func resolveTrackCmd(playlistID, input string) tea.Cmd {
	return func() tea.Msg {
		track, err := playlist.FromInput(input)
		return TrackResolvedMsg{PlaylistID: playlistID, Input: input, Track: track, Err: err}
	}
}

// notifyCmd sends a now-playing notification over D-Bus.
func notifyCmd(tracker *notify.Tracker, track playlist.Track, playlistTitle string) tea.Cmd {
	return func() tea.Msg {
		if err := tracker.TrackStarted(track, playlistTitle); err != nil {
			return NotifyFailedMsg{Err: err}
		}
		return nil
	}
}
