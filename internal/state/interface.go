// internal/state/interface.go
package state

import (
	"github.com/llehouerou/frequency/internal/playback"
	"github.com/llehouerou/frequency/internal/playlist"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	playback.Persister
	LoadPlaylists() ([]playlist.Playlist, error)
	LoadSettings() (playback.Settings, error)
	Flush() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
