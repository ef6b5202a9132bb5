package playback

import (
	"slices"

	"github.com/llehouerou/frequency/internal/player"
	"github.com/llehouerou/frequency/internal/playlist"
)

// Session is the runtime playback state. There is one per process, owned by
// the service; callers only ever see copies.
type Session struct {
	ActivePlaylistID string
	CurrentTrackID   string // empty when no track is current
	IsPlaying        bool
	Volume           float64
	LoopMode         LoopMode
	ShuffleEnabled   bool
	ShuffleQueue     []string // permutation of the active playlist ids, nil when shuffle is off
}

// NewSession creates a paused session with no current track from restored settings.
func NewSession(st Settings) Session {
	return Session{
		Volume:         player.Clamp(st.Volume),
		LoopMode:       st.Loop,
		ShuffleEnabled: st.Shuffle,
	}
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	s.ShuffleQueue = slices.Clone(s.ShuffleQueue)
	return s
}

// Settings extracts the persisted subset of the session.
func (s Session) Settings() Settings {
	return Settings{Volume: s.Volume, Loop: s.LoopMode, Shuffle: s.ShuffleEnabled}
}

// State derives the transport state.
func (s Session) State() State {
	switch {
	case s.CurrentTrackID == "":
		return StateStopped
	case s.IsPlaying:
		return StatePlaying
	default:
		return StatePaused
	}
}

// Ordering returns the traversal order over pl: the shuffle queue when
// shuffle is on and the queue is non-empty, else the playlist order.
func (s Session) Ordering(pl playlist.Playlist) []string {
	if s.ShuffleEnabled && len(s.ShuffleQueue) > 0 {
		return slices.Clone(s.ShuffleQueue)
	}
	return pl.IDs()
}
