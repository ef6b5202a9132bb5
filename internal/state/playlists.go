package state

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	dbutil "github.com/llehouerou/frequency/internal/db"
	"github.com/llehouerou/frequency/internal/playlist"
)

// LoadPlaylists returns the stored playlists. A legacy single-playlist entry
// is migrated into a new playlist and removed. Corrupt data yields an empty
// set rather than an error.
func (m *Manager) LoadPlaylists() ([]playlist.Playlist, error) {
	raw, ok, err := dbutil.Get(m.db, keyPlaylists)
	if err != nil {
		return nil, fmt.Errorf("load playlists: %w", err)
	}

	pls := []playlist.Playlist{}
	if ok {
		if err := json.Unmarshal([]byte(raw), &pls); err != nil {
			log.Warn().Err(err).Str("key", keyPlaylists).Msg("corrupt playlists, starting empty")
			pls = []playlist.Playlist{}
		}
	}
	pls = normalize(pls)

	legacy, ok, err := dbutil.Get(m.db, keyLegacyTracks)
	if err != nil {
		return nil, fmt.Errorf("load legacy tracks: %w", err)
	}
	if !ok {
		return pls, nil
	}
	return m.migrateLegacy(pls, legacy)
}

func (m *Manager) migrateLegacy(pls []playlist.Playlist, raw string) ([]playlist.Playlist, error) {
	var tracks []playlist.Track
	if err := json.Unmarshal([]byte(raw), &tracks); err != nil {
		log.Warn().Err(err).Str("key", keyLegacyTracks).Msg("corrupt legacy tracks, leaving them in place")
		return pls, nil
	}

	migrated := playlist.New(m.legacyTitle)
	for _, t := range tracks {
		if t.ID == "" {
			t.ID = playlist.NewID()
		}
		if t.AddedAt == "" {
			t.AddedAt = playlist.Now()
		}
		migrated.Add(t)
	}
	pls = append(pls, migrated)

	data, err := json.Marshal(pls)
	if err != nil {
		return nil, fmt.Errorf("encode playlists: %w", err)
	}
	err = dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if err := dbutil.Set(tx, keyPlaylists, string(data)); err != nil {
			return err
		}
		return dbutil.Delete(tx, keyLegacyTracks)
	})
	if err != nil {
		return nil, fmt.Errorf("migrate legacy tracks: %w", err)
	}

	log.Info().
		Int("tracks", migrated.Len()).
		Str("playlist", migrated.Title).
		Msg("migrated legacy playlist")
	return pls, nil
}

func savePlaylists(db *sql.DB, pls []playlist.Playlist) error {
	data, err := json.Marshal(normalize(pls))
	if err != nil {
		return fmt.Errorf("encode playlists: %w", err)
	}
	return dbutil.Set(db, keyPlaylists, string(data))
}

// normalize turns null track lists into empty ones so the JSON form is stable.
func normalize(pls []playlist.Playlist) []playlist.Playlist {
	if pls == nil {
		return []playlist.Playlist{}
	}
	for i := range pls {
		if pls[i].Tracks == nil {
			pls[i].Tracks = []playlist.Track{}
		}
	}
	return pls
}
