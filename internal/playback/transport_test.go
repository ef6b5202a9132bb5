package playback

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/frequency/internal/playlist"
	"github.com/llehouerou/frequency/internal/playlists"
	"github.com/llehouerou/frequency/internal/shuffle"
)

// scripted returns pre-recorded draws, then zeros.
type scripted struct {
	draws []int
}

func (s *scripted) IntN(n int) int {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % n
}

func makePlaylist(id string, trackIDs ...string) playlist.Playlist {
	pl := playlist.Playlist{ID: id, Title: id, Tracks: []playlist.Track{}}
	for _, tid := range trackIDs {
		pl.Tracks = append(pl.Tracks, playlist.Track{ID: tid, Title: tid, URL: "file:///music/" + tid + ".mp3"})
	}
	return pl
}

func abcPlaylist() playlist.Playlist { return makePlaylist("p1", "a", "b", "c") }

func TestTransport_NextStopsAtEnd(t *testing.T) {
	tr := NewTransport(nil)
	pl := abcPlaylist()

	s, err := tr.Play(NewSession(DefaultSettings()), "a", pl)
	require.NoError(t, err)

	s, _ = tr.Next(s, pl)
	s, _ = tr.Next(s, pl)
	assert.Equal(t, "c", s.CurrentTrackID)
	assert.True(t, s.IsPlaying)

	s, started := tr.Next(s, pl)
	assert.False(t, started)
	assert.False(t, s.IsPlaying)
	assert.Equal(t, "c", s.CurrentTrackID)
}

func TestTransport_LoopAllWrapsFromLast(t *testing.T) {
	tr := NewTransport(nil)
	pl := abcPlaylist()
	s := NewSession(Settings{Volume: 1, Loop: LoopAll})

	s, err := tr.Play(s, "c", pl)
	require.NoError(t, err)
	s, started := tr.Next(s, pl)

	assert.True(t, started)
	assert.Equal(t, "a", s.CurrentTrackID)
	assert.True(t, s.IsPlaying)
}

func TestTransport_PrevWrapsInShuffleQueue(t *testing.T) {
	// Fisher-Yates over [a b c] with draws j=2 then j=0 yields [b a c].
	tr := NewTransport(shuffle.New(&scripted{draws: []int{2, 0}}))
	pl := abcPlaylist()
	s := NewSession(DefaultSettings())
	s.ActivePlaylistID = pl.ID

	s = tr.SetShuffle(s, true, pl)
	require.Equal(t, []string{"b", "a", "c"}, s.ShuffleQueue)

	s, err := tr.Play(s, "b", pl)
	require.NoError(t, err)
	s, _ = tr.Prev(s, pl)

	assert.Equal(t, "c", s.CurrentTrackID)
	assert.True(t, s.IsPlaying)
}

func TestTransport_LoopOffStopsAfterNthNext(t *testing.T) {
	tr := NewTransport(nil)
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("t%d", i)
			}
			pl := makePlaylist("p", ids...)

			s, err := tr.Play(NewSession(DefaultSettings()), ids[0], pl)
			require.NoError(t, err)

			for i := 1; i < n; i++ {
				s, _ = tr.Next(s, pl)
				require.True(t, s.IsPlaying, "stopped early after %d next()", i)
				require.Equal(t, ids[i], s.CurrentTrackID)
			}
			s, _ = tr.Next(s, pl)
			assert.False(t, s.IsPlaying, "should stop after next() #%d", n)
			assert.Equal(t, ids[n-1], s.CurrentTrackID)
		})
	}
}

func TestTransport_LoopAllCyclesEveryTrack(t *testing.T) {
	for _, shuffled := range []bool{false, true} {
		t.Run(fmt.Sprintf("shuffle=%v", shuffled), func(t *testing.T) {
			tr := NewTransport(nil)
			pl := makePlaylist("p", "a", "b", "c", "d", "e")
			s := NewSession(Settings{Volume: 1, Loop: LoopAll})
			s.ActivePlaylistID = pl.ID
			s = tr.SetShuffle(s, shuffled, pl)

			order := s.Ordering(pl)
			s, err := tr.Play(s, order[0], pl)
			require.NoError(t, err)

			for round := range 3 {
				seen := map[string]bool{s.CurrentTrackID: true}
				for range len(order) - 1 {
					s, _ = tr.Next(s, pl)
					require.True(t, s.IsPlaying)
					seen[s.CurrentTrackID] = true
				}
				assert.Len(t, seen, len(order), "round %d did not cover every track", round)
				s, _ = tr.Next(s, pl)
				assert.Equal(t, order[0], s.CurrentTrackID, "round %d should wrap to the start", round)
			}
		})
	}
}

func TestTransport_PrevFromFirstAlwaysWraps(t *testing.T) {
	pl := abcPlaylist()
	for _, loop := range []LoopMode{LoopOff, LoopAll, LoopOne} {
		for _, shuffled := range []bool{false, true} {
			t.Run(fmt.Sprintf("%v/shuffle=%v", loop, shuffled), func(t *testing.T) {
				tr := NewTransport(nil)
				s := NewSession(Settings{Volume: 1, Loop: loop})
				s.ActivePlaylistID = pl.ID
				s = tr.SetShuffle(s, shuffled, pl)
				order := s.Ordering(pl)

				s, err := tr.Play(s, order[0], pl)
				require.NoError(t, err)
				s, started := tr.Prev(s, pl)

				assert.True(t, started)
				assert.True(t, s.IsPlaying)
				assert.Equal(t, order[len(order)-1], s.CurrentTrackID)
			})
		}
	}
}

func TestTransport_PrevWithoutCurrentWrapsToLast(t *testing.T) {
	tr := NewTransport(nil)
	pl := abcPlaylist()
	s := NewSession(DefaultSettings())
	s.ActivePlaylistID = pl.ID

	s, _ = tr.Prev(s, pl)
	assert.Equal(t, "c", s.CurrentTrackID)
}

func TestTransport_NextWithoutCurrentStartsFirst(t *testing.T) {
	tr := NewTransport(nil)
	pl := abcPlaylist()
	s := NewSession(DefaultSettings())
	s.ActivePlaylistID = pl.ID
	s.CurrentTrackID = "deleted"

	s, started := tr.Next(s, pl)
	assert.True(t, started)
	assert.Equal(t, "a", s.CurrentTrackID)
}

func TestTransport_EndedLoopOneRestartsSameTrack(t *testing.T) {
	tr := NewTransport(nil)
	pl := abcPlaylist()
	s := NewSession(Settings{Volume: 1, Loop: LoopOne})

	s, err := tr.Play(s, "b", pl)
	require.NoError(t, err)
	for range 5 {
		var started bool
		s, started = tr.Ended(s, pl)
		assert.True(t, started)
		assert.Equal(t, "b", s.CurrentTrackID)
		assert.True(t, s.IsPlaying)
	}
}

func TestTransport_EndedDelegatesToNext(t *testing.T) {
	tr := NewTransport(nil)
	pl := abcPlaylist()

	s, err := tr.Play(NewSession(DefaultSettings()), "a", pl)
	require.NoError(t, err)
	s, started := tr.Ended(s, pl)

	assert.True(t, started)
	assert.Equal(t, "b", s.CurrentTrackID)
}

func TestTransport_EmptyPlaylistIsNoop(t *testing.T) {
	tr := NewTransport(nil)
	pl := makePlaylist("empty")
	s := NewSession(Settings{Volume: 1, Loop: LoopAll})
	s.ActivePlaylistID = pl.ID

	ops := map[string]func(Session) (Session, bool){
		"next":   func(s Session) (Session, bool) { return tr.Next(s, pl) },
		"prev":   func(s Session) (Session, bool) { return tr.Prev(s, pl) },
		"resume": func(s Session) (Session, bool) { return tr.Resume(s, pl) },
		"ended":  func(s Session) (Session, bool) { return tr.Ended(s, pl) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			got, started := op(s)
			assert.False(t, started)
			assert.False(t, got.IsPlaying)
			assert.Empty(t, got.CurrentTrackID)
		})
	}
}

func TestTransport_PauseOnlyClearsPlaying(t *testing.T) {
	tr := NewTransport(nil)
	pl := abcPlaylist()
	s := NewSession(Settings{Volume: 0.4, Loop: LoopAll, Shuffle: true})
	s.ActivePlaylistID = pl.ID
	s = tr.Regenerate(s, pl)
	s, err := tr.Play(s, "b", pl)
	require.NoError(t, err)

	paused := tr.Pause(s)
	want := s.Clone()
	want.IsPlaying = false
	assert.Equal(t, want, paused)
}

func TestTransport_ModeChangesKeepCurrentTrack(t *testing.T) {
	tr := NewTransport(nil)
	pl := abcPlaylist()
	s, err := tr.Play(NewSession(DefaultSettings()), "b", pl)
	require.NoError(t, err)

	s = tr.SetShuffle(s, true, pl)
	s = tr.SetLoop(s, LoopOne)
	s = tr.SetShuffle(s, false, pl)

	assert.Equal(t, "b", s.CurrentTrackID)
	assert.True(t, s.IsPlaying)
	assert.Nil(t, s.ShuffleQueue)
}

func TestTransport_PlayUnknownTrack(t *testing.T) {
	tr := NewTransport(nil)
	s := NewSession(DefaultSettings())

	got, err := tr.Play(s, "zz", abcPlaylist())
	assert.True(t, errors.Is(err, playlists.ErrTrackNotFound))
	assert.Equal(t, s, got)
}

func TestTransport_PlayOtherPlaylistRegeneratesQueue(t *testing.T) {
	tr := NewTransport(nil)
	first := abcPlaylist()
	second := makePlaylist("p2", "x", "y")

	s := NewSession(Settings{Volume: 1, Shuffle: true})
	s.ActivePlaylistID = first.ID
	s = tr.Regenerate(s, first)

	s, err := tr.Play(s, "y", second)
	require.NoError(t, err)

	assert.Equal(t, "p2", s.ActivePlaylistID)
	assert.True(t, shuffle.IsPermutation(s.ShuffleQueue, second.IDs()))
}

func TestTransport_SelectClearsCurrent(t *testing.T) {
	tr := NewTransport(nil)
	first := abcPlaylist()
	second := makePlaylist("p2", "x")

	s, err := tr.Play(NewSession(DefaultSettings()), "a", first)
	require.NoError(t, err)

	same := tr.Select(s, first)
	assert.Equal(t, s, same, "selecting the active playlist is a no-op")

	s = tr.Select(s, second)
	assert.Equal(t, "p2", s.ActivePlaylistID)
	assert.Empty(t, s.CurrentTrackID)
	assert.False(t, s.IsPlaying)
}

func TestTransport_ResumeWithoutCurrentStartsFirstInOrdering(t *testing.T) {
	tr := NewTransport(shuffle.New(&scripted{draws: []int{2, 0}}))
	pl := abcPlaylist()
	s := NewSession(DefaultSettings())
	s.ActivePlaylistID = pl.ID
	s = tr.SetShuffle(s, true, pl)

	s, started := tr.Resume(s, pl)
	assert.True(t, started)
	assert.Equal(t, "b", s.CurrentTrackID)
}

func TestSuccessorAfterRemoval(t *testing.T) {
	pl := abcPlaylist()
	tests := []struct {
		name    string
		loop    LoopMode
		removed string
		want    string
	}{
		{"middle takes next", LoopOff, "b", "c"},
		{"first takes next", LoopOff, "a", "b"},
		{"last stops without loop", LoopOff, "c", ""},
		{"last wraps with loop all", LoopAll, "c", "a"},
		{"last stops with loop one", LoopOne, "c", ""},
		{"unknown", LoopAll, "zz", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(Settings{Volume: 1, Loop: tt.loop})
			assert.Equal(t, tt.want, successorAfterRemoval(s, pl, tt.removed))
		})
	}

	single := makePlaylist("p", "only")
	s := NewSession(Settings{Volume: 1, Loop: LoopAll})
	assert.Empty(t, successorAfterRemoval(s, single, "only"))
}
