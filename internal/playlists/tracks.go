package playlists

import (
	"fmt"
	"strings"

	"github.com/llehouerou/frequency/internal/playlist"
)

// AddTrack appends a track to a playlist. The track is copied; a missing
// AddedAt is stamped with the current time.
func (s *Store) AddTrack(playlistID string, track playlist.Track) error {
	pl, err := s.find(playlistID)
	if err != nil {
		return err
	}
	if track.ID == "" {
		return ErrInvalidTrack
	}
	if pl.Has(track.ID) {
		return fmt.Errorf("add %q to %q: %w", track.ID, playlistID, ErrDuplicateTrack)
	}
	if track.AddedAt == "" {
		track.AddedAt = playlist.Now()
	}
	pl.Add(track)
	return nil
}

// RemoveTrack removes a track from a playlist.
func (s *Store) RemoveTrack(playlistID, trackID string) error {
	pl, err := s.find(playlistID)
	if err != nil {
		return err
	}
	if !pl.Remove(pl.IndexOf(trackID)) {
		return fmt.Errorf("remove %q from %q: %w", trackID, playlistID, ErrTrackNotFound)
	}
	return nil
}

// RenameTrack changes the title of a track.
func (s *Store) RenameTrack(playlistID, trackID, title string) error {
	pl, err := s.find(playlistID)
	if err != nil {
		return err
	}
	i := pl.IndexOf(trackID)
	if i < 0 {
		return fmt.Errorf("rename %q in %q: %w", trackID, playlistID, ErrTrackNotFound)
	}
	pl.Tracks[i].Title = strings.TrimSpace(title)
	return nil
}

// Reorder rearranges the tracks of a playlist to match order, which must be
// a permutation of the current track ids. The playlist is left unchanged on
// rejection.
func (s *Store) Reorder(playlistID string, order []string) error {
	pl, err := s.find(playlistID)
	if err != nil {
		return err
	}
	if len(order) != len(pl.Tracks) {
		return fmt.Errorf("reorder %q: got %d ids for %d tracks: %w",
			playlistID, len(order), len(pl.Tracks), ErrInvalidOrder)
	}

	byID := make(map[string]playlist.Track, len(pl.Tracks))
	for _, t := range pl.Tracks {
		byID[t.ID] = t
	}
	reordered := make([]playlist.Track, 0, len(order))
	for _, id := range order {
		t, ok := byID[id]
		if !ok {
			return fmt.Errorf("reorder %q: unknown or repeated id %q: %w", playlistID, id, ErrInvalidOrder)
		}
		delete(byID, id)
		reordered = append(reordered, t)
	}
	pl.Tracks = reordered
	return nil
}

// Move moves the track at index from to index to, expressed as a reorder.
func (s *Store) Move(playlistID string, from, to int) error {
	pl, ok := s.Get(playlistID)
	if !ok {
		return fmt.Errorf("move in %q: %w", playlistID, ErrPlaylistNotFound)
	}
	if !pl.Move(from, to) {
		return fmt.Errorf("move %d->%d in %q: %w", from, to, playlistID, ErrTrackNotFound)
	}
	return s.Reorder(playlistID, pl.IDs())
}
