package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/frequency/internal/playlist"
)

const (
	appName      = "frequency"
	dbFileName   = "frequency.db"
	saveDebounce = 500 * time.Millisecond

	// DefaultLegacyTitle names the playlist created from the legacy single-playlist format.
	DefaultLegacyTitle = "Default Frequency"
)

// Storage keys.
const (
	keyPlaylists    = "frequency_playlists"
	keyLegacyTracks = "frequency_tracks"
	keyVolume       = "frequency_volume"
	keyLoop         = "frequency_loop"
	keyShuffle      = "frequency_shuffle"
)

type Manager struct {
	db          *sql.DB
	legacyTitle string

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   []playlist.Playlist
	hasSave   bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLegacyTitle overrides the title of the playlist migrated from the legacy format.
func WithLegacyTitle(title string) Option {
	return func(m *Manager) {
		if title != "" {
			m.legacyTitle = title
		}
	}
}

// Open opens the database at path, or at the XDG data location when path is
// empty, creating the schema as needed.
func Open(path string, opts ...Option) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps :memory: databases coherent and serializes writers.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	m := &Manager{db: db, legacyTitle: DefaultLegacyTitle}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// DefaultPath returns the XDG data location of the database.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// SavePlaylists schedules a write of pls. Rapid successive saves collapse into one.
func (m *Manager) SavePlaylists(pls []playlist.Playlist) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = clonePlaylists(pls)
	m.hasSave = true

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		if err := m.Flush(); err != nil {
			log.Error().Err(err).Msg("saving playlists")
		}
	})
}

// Flush writes any pending playlists immediately.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	pending, ok := m.pending, m.hasSave
	m.pending, m.hasSave = nil, false
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	if !ok {
		return nil
	}
	return savePlaylists(m.db, pending)
}

func (m *Manager) Close() error {
	if err := m.Flush(); err != nil {
		log.Error().Err(err).Msg("flushing playlists on close")
	}
	return m.db.Close()
}

func clonePlaylists(pls []playlist.Playlist) []playlist.Playlist {
	out := make([]playlist.Playlist, len(pls))
	for i, pl := range pls {
		out[i] = pl.Clone()
	}
	return out
}
