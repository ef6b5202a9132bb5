package playback

import "github.com/llehouerou/frequency/internal/playlist"

// StateChange is emitted when the derived transport state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a different track becomes current, or when the
// current track is restarted from the beginning.
//
// Emitted by:
//   - Play, Next, Prev, Resume: when navigation resolves a track
//   - sink finished events: when a track ends and advances or repeats
//   - RemoveTrack: when the current track is removed and a successor is picked
//
// Current is nil when playback was cleared (removed track, deleted playlist,
// selected playlist). The app handles track-related side effects
// (notifications, MPRIS metadata) in response to this event.
type TrackChange struct {
	Previous   *playlist.Track
	Current    *playlist.Track
	PlaylistID string
	Restarted  bool
}

// PlaylistsChange is emitted when playlists or their tracks change, or when
// another playlist becomes active.
type PlaylistsChange struct {
	Playlists []playlist.Playlist
	ActiveID  string
}

// ModeChange is emitted when loop or shuffle mode changes.
type ModeChange struct {
	Loop    LoopMode
	Shuffle bool
}

// VolumeChange is emitted when the volume changes.
type VolumeChange struct {
	Volume float64
}

// ErrorEvent is emitted when the sink reports a failure for the current track.
type ErrorEvent struct {
	Operation string // e.g. "play"
	URL       string
	Err       error
}
