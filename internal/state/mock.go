// internal/state/mock.go
package state

import (
	"sync"

	"github.com/llehouerou/frequency/internal/playback"
	"github.com/llehouerou/frequency/internal/playlist"
)

// Mock is a test double for Manager.
type Mock struct {
	mu        sync.Mutex
	playlists []playlist.Playlist
	settings  playback.Settings
	saves     int
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{settings: playback.DefaultSettings()}
}

func (m *Mock) LoadPlaylists() ([]playlist.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clonePlaylists(m.playlists), nil
}

func (m *Mock) SavePlaylists(pls []playlist.Playlist) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playlists = clonePlaylists(pls)
	m.saves++
}

func (m *Mock) LoadSettings() (playback.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *Mock) SaveSettings(st playback.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = st
	return nil
}

func (m *Mock) Flush() error { return nil }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPlaylists(pls []playlist.Playlist) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playlists = clonePlaylists(pls)
}

func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
