package playback

import (
	"context"
	"time"

	"github.com/llehouerou/frequency/internal/playlist"
)

// Service defines the playback service contract.
type Service interface {
	// Playlist management
	CreatePlaylist(title string) playlist.Playlist
	DeletePlaylist(id string) error
	SelectPlaylist(id string) error
	RenamePlaylist(id, title string) error

	// Track management
	AddTrack(playlistID string, track playlist.Track) error
	RemoveTrack(playlistID, trackID string) error
	ReorderTracks(playlistID string, order []string) error
	MoveTrack(playlistID string, from, to int) error
	RenameTrack(playlistID, trackID, title string) error

	// Playback control
	Play(trackID, playlistID string) error // empty playlistID means the active one
	Pause()
	Resume()
	Toggle()
	Next()
	Prev()
	SetVolume(v float64)

	// Mode control
	ToggleLoop() LoopMode
	SetLoopMode(m LoopMode)
	ToggleShuffle() bool
	SetShuffle(enabled bool)

	// State queries
	Session() Session
	State() State
	Playlists() []playlist.Playlist
	Playlist(id string) (playlist.Playlist, error)
	ActivePlaylist() (playlist.Playlist, bool)
	CurrentTrack() *playlist.Track
	Ordering() []string
	Position() time.Duration
	Duration() time.Duration

	// CheckInvariants reports a broken session invariant as an ErrInvariant.
	CheckInvariants() error

	// Run consumes sink events until ctx is done or the service is closed.
	Run(ctx context.Context) error

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}

// Persister stores playlists and settings. SavePlaylists may defer the write.
type Persister interface {
	SavePlaylists(pls []playlist.Playlist)
	SaveSettings(st Settings) error
}
