// Package playlist defines the track and playlist records shared by the store,
// the playback engine and the persistence layer.
package playlist

import (
	"time"

	"github.com/google/uuid"
)

// Track is a single playable audio entry.
type Track struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`     // remote URL, file path/URL or data: URL
	AddedAt string `json:"addedAt"` // RFC 3339
	IsLocal bool   `json:"isLocal"`
}

// Playlist holds an ordered collection of tracks. Position in Tracks is the
// only ordering key.
type Playlist struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Tracks []Track `json:"tracks"`
}

// NewID returns a new unique identifier for a playlist or track.
func NewID() string {
	return uuid.NewString()
}

// New creates an empty playlist with a fresh id.
func New(title string) Playlist {
	return Playlist{
		ID:     NewID(),
		Title:  title,
		Tracks: make([]Track, 0),
	}
}

// Now returns the current time formatted for Track.AddedAt.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Len returns the number of tracks.
func (p Playlist) Len() int {
	return len(p.Tracks)
}

// IDs returns the track ids in playlist order.
func (p Playlist) IDs() []string {
	ids := make([]string, len(p.Tracks))
	for i, t := range p.Tracks {
		ids[i] = t.ID
	}
	return ids
}

// IndexOf returns the position of the track with the given id, or -1.
func (p Playlist) IndexOf(trackID string) int {
	for i, t := range p.Tracks {
		if t.ID == trackID {
			return i
		}
	}
	return -1
}

// Has reports whether the playlist contains a track with the given id.
func (p Playlist) Has(trackID string) bool {
	return p.IndexOf(trackID) >= 0
}

// Track returns the track with the given id, or nil if absent.
// The returned pointer refers to a copy.
func (p Playlist) Track(trackID string) *Track {
	i := p.IndexOf(trackID)
	if i < 0 {
		return nil
	}
	t := p.Tracks[i]
	return &t
}

// Clone returns a deep copy of the playlist.
func (p Playlist) Clone() Playlist {
	tracks := make([]Track, len(p.Tracks))
	copy(tracks, p.Tracks)
	p.Tracks = tracks
	return p
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	p.Tracks = append(p.Tracks, tracks...)
}

// Remove removes the track at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.Tracks) {
		return false
	}
	p.Tracks = append(p.Tracks[:index], p.Tracks[index+1:]...)
	return true
}

// Move moves the track at fromIndex to toIndex.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(p.Tracks) {
		return false
	}
	if toIndex < 0 || toIndex >= len(p.Tracks) {
		return false
	}
	if fromIndex == toIndex {
		return true
	}

	track := p.Tracks[fromIndex]
	p.Tracks = append(p.Tracks[:fromIndex], p.Tracks[fromIndex+1:]...)
	p.Tracks = append(p.Tracks[:toIndex], append([]Track{track}, p.Tracks[toIndex:]...)...)
	return true
}
