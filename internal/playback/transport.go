package playback

import (
	"fmt"
	"slices"

	"github.com/llehouerou/frequency/internal/playlist"
	"github.com/llehouerou/frequency/internal/playlists"
	"github.com/llehouerou/frequency/internal/shuffle"
)

// Transport holds the transition functions of the playback state machine.
// Every function takes the session by value and returns the next one; pl is
// the playlist the transition operates on (the active one unless stated).
//
// The returned started flag reports that a track must be (re)started from
// position zero, even when the current track id did not change.
type Transport struct {
	gen *shuffle.Generator
}

// NewTransport creates a transport drawing shuffle queues from gen.
func NewTransport(gen *shuffle.Generator) *Transport {
	if gen == nil {
		gen = shuffle.New(nil)
	}
	return &Transport{gen: gen}
}

// Regenerate rebuilds the shuffle queue for pl, or drops it when shuffle is off.
func (t *Transport) Regenerate(s Session, pl playlist.Playlist) Session {
	if !s.ShuffleEnabled {
		s.ShuffleQueue = nil
		return s
	}
	s.ShuffleQueue = t.gen.Generate(pl.IDs())
	return s
}

// Select makes pl active without starting playback.
func (t *Transport) Select(s Session, pl playlist.Playlist) Session {
	if s.ActivePlaylistID == pl.ID {
		return s
	}
	s.ActivePlaylistID = pl.ID
	s.CurrentTrackID = ""
	s.IsPlaying = false
	return t.Regenerate(s, pl)
}

// Play makes trackID of pl current and playing, switching the active
// playlist when needed.
func (t *Transport) Play(s Session, trackID string, pl playlist.Playlist) (Session, error) {
	if !pl.Has(trackID) {
		return s, fmt.Errorf("play %q: %w", trackID, playlists.ErrTrackNotFound)
	}
	if s.ActivePlaylistID != pl.ID {
		s.ActivePlaylistID = pl.ID
		s = t.Regenerate(s, pl)
	}
	s.CurrentTrackID = trackID
	s.IsPlaying = true
	return s, nil
}

// Pause clears the playing flag and nothing else.
func (t *Transport) Pause(s Session) Session {
	s.IsPlaying = false
	return s
}

// Resume continues the current track, or starts the first track of the
// ordering when none is current.
func (t *Transport) Resume(s Session, pl playlist.Playlist) (Session, bool) {
	if s.CurrentTrackID != "" && pl.Has(s.CurrentTrackID) {
		s.IsPlaying = true
		return s, false
	}
	order := s.Ordering(pl)
	if len(order) == 0 {
		s.IsPlaying = false
		return s, false
	}
	s.CurrentTrackID = order[0]
	s.IsPlaying = true
	return s, true
}

// Next advances along the ordering. Past the end it wraps only under
// LoopAll; otherwise playback stops and the current track is kept.
func (t *Transport) Next(s Session, pl playlist.Playlist) (Session, bool) {
	order := s.Ordering(pl)
	if len(order) == 0 {
		s.IsPlaying = false
		return s, false
	}

	i := slices.Index(order, s.CurrentTrackID) + 1
	if i >= len(order) {
		if s.LoopMode != LoopAll {
			s.IsPlaying = false
			return s, false
		}
		i = 0
	}

	s.CurrentTrackID = order[i]
	s.IsPlaying = true
	return s, true
}

// Prev steps back along the ordering. Underflow always wraps to the last
// element, whatever the loop mode.
func (t *Transport) Prev(s Session, pl playlist.Playlist) (Session, bool) {
	order := s.Ordering(pl)
	if len(order) == 0 {
		s.IsPlaying = false
		return s, false
	}

	i := slices.Index(order, s.CurrentTrackID) - 1
	if i < 0 {
		i = len(order) - 1
	}

	s.CurrentTrackID = order[i]
	s.IsPlaying = true
	return s, true
}

// Ended reacts to the natural end of the current track: LoopOne restarts it,
// anything else advances like Next.
func (t *Transport) Ended(s Session, pl playlist.Playlist) (Session, bool) {
	if s.LoopMode == LoopOne && s.CurrentTrackID != "" && pl.Has(s.CurrentTrackID) {
		s.IsPlaying = true
		return s, true
	}
	return t.Next(s, pl)
}

// SetShuffle switches shuffle without touching the current track.
func (t *Transport) SetShuffle(s Session, enabled bool, pl playlist.Playlist) Session {
	if s.ShuffleEnabled == enabled {
		return s
	}
	s.ShuffleEnabled = enabled
	return t.Regenerate(s, pl)
}

// SetLoop switches the loop mode without touching the current track.
func (t *Transport) SetLoop(s Session, m LoopMode) Session {
	s.LoopMode = m
	return s
}

// successorAfterRemoval picks the track that replaces removed in the
// ordering: the one that takes its position, wrapping to the first only under
// LoopAll. Empty means none.
func successorAfterRemoval(s Session, pl playlist.Playlist, removed string) string {
	order := s.Ordering(pl)
	i := slices.Index(order, removed)
	if i < 0 {
		return ""
	}
	rest := slices.Delete(order, i, i+1)
	switch {
	case len(rest) == 0:
		return ""
	case i < len(rest):
		return rest[i]
	case s.LoopMode == LoopAll:
		return rest[0]
	default:
		return ""
	}
}
