// Package playlists owns the collection of playlists and is the single source
// of truth for which tracks exist and in what order.
package playlists

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llehouerou/frequency/internal/playlist"
)

var (
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrTrackNotFound    = errors.New("track not found")
	ErrDuplicateTrack   = errors.New("track already in playlist")
	ErrInvalidTrack     = errors.New("track has no id")
	ErrInvalidOrder     = errors.New("order is not a permutation of the playlist tracks")
)

// Store holds playlists in insertion order. Track ids are unique within a
// playlist only; the same id may appear in several playlists. It is not safe
// for concurrent use; the playback service serializes access.
type Store struct {
	playlists []playlist.Playlist
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Replace swaps the whole collection, e.g. after loading from persistence.
// Tracks with an empty or duplicate id are dropped.
func (s *Store) Replace(pls []playlist.Playlist) {
	s.playlists = make([]playlist.Playlist, 0, len(pls))
	seen := make(map[string]bool, len(pls))
	for _, pl := range pls {
		if pl.ID == "" || seen[pl.ID] {
			continue
		}
		seen[pl.ID] = true
		s.playlists = append(s.playlists, sanitize(pl))
	}
}

func sanitize(pl playlist.Playlist) playlist.Playlist {
	tracks := make([]playlist.Track, 0, len(pl.Tracks))
	seen := make(map[string]bool, len(pl.Tracks))
	for _, t := range pl.Tracks {
		if t.ID == "" || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		tracks = append(tracks, t)
	}
	pl.Tracks = tracks
	return pl
}

// Create appends a new empty playlist and returns it.
func (s *Store) Create(title string) playlist.Playlist {
	pl := playlist.New(strings.TrimSpace(title))
	s.playlists = append(s.playlists, pl)
	return pl.Clone()
}

// Rename changes a playlist title.
func (s *Store) Rename(id, title string) error {
	pl, err := s.find(id)
	if err != nil {
		return err
	}
	pl.Title = strings.TrimSpace(title)
	return nil
}

// Delete removes a playlist and all of its tracks.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("delete %q: %w", id, ErrPlaylistNotFound)
	}
	s.playlists = append(s.playlists[:i], s.playlists[i+1:]...)
	return nil
}

// Get returns a copy of the playlist with the given id.
func (s *Store) Get(id string) (playlist.Playlist, bool) {
	i := s.index(id)
	if i < 0 {
		return playlist.Playlist{}, false
	}
	return s.playlists[i].Clone(), true
}

// List returns copies of all playlists in order.
func (s *Store) List() []playlist.Playlist {
	result := make([]playlist.Playlist, len(s.playlists))
	for i, pl := range s.playlists {
		result[i] = pl.Clone()
	}
	return result
}

// First returns the first playlist, if any.
func (s *Store) First() (playlist.Playlist, bool) {
	if len(s.playlists) == 0 {
		return playlist.Playlist{}, false
	}
	return s.playlists[0].Clone(), true
}

// Len returns the number of playlists.
func (s *Store) Len() int {
	return len(s.playlists)
}

func (s *Store) index(id string) int {
	for i := range s.playlists {
		if s.playlists[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) find(id string) (*playlist.Playlist, error) {
	i := s.index(id)
	if i < 0 {
		return nil, fmt.Errorf("playlist %q: %w", id, ErrPlaylistNotFound)
	}
	return &s.playlists[i], nil
}
