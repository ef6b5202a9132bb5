package state

import (
	"database/sql"
	"math"
	"strconv"

	"github.com/rs/zerolog/log"

	dbutil "github.com/llehouerou/frequency/internal/db"
	"github.com/llehouerou/frequency/internal/playback"
)

// LoadSettings returns the persisted volume, loop mode and shuffle flag.
// Missing or malformed fields fall back to their defaults individually.
func (m *Manager) LoadSettings() (playback.Settings, error) {
	st := playback.DefaultSettings()

	if raw, ok, err := dbutil.Get(m.db, keyVolume); err != nil {
		return st, err
	} else if ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) {
			log.Warn().Str("key", keyVolume).Str("value", raw).Msg("ignoring malformed volume")
		} else {
			st.Volume = min(max(v, 0), 1)
		}
	}

	if raw, ok, err := dbutil.Get(m.db, keyLoop); err != nil {
		return st, err
	} else if ok {
		mode, err := playback.ParseLoopMode(raw)
		if err != nil {
			log.Warn().Err(err).Str("key", keyLoop).Msg("ignoring malformed loop mode")
		} else {
			st.Loop = mode
		}
	}

	if raw, ok, err := dbutil.Get(m.db, keyShuffle); err != nil {
		return st, err
	} else if ok {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			log.Warn().Str("key", keyShuffle).Str("value", raw).Msg("ignoring malformed shuffle flag")
		} else {
			st.Shuffle = on
		}
	}

	return st, nil
}

// SaveSettings persists st immediately.
func (m *Manager) SaveSettings(st playback.Settings) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if err := dbutil.Set(tx, keyVolume, strconv.FormatFloat(st.Volume, 'f', -1, 64)); err != nil {
			return err
		}
		if err := dbutil.Set(tx, keyLoop, st.Loop.String()); err != nil {
			return err
		}
		return dbutil.Set(tx, keyShuffle, strconv.FormatBool(st.Shuffle))
	})
}
