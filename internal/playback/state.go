// internal/playback/state.go
package playback

import (
	"errors"
	"fmt"
	"strings"
)

// State is the transport state derived from the session.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// LoopMode governs what happens at the end of a track or playlist.
type LoopMode int

const (
	LoopOff LoopMode = iota // stop after the last track
	LoopAll                 // wrap to the first track
	LoopOne                 // repeat the current track
)

var ErrInvalidLoopMode = errors.New("invalid loop mode")

// String returns the persisted name of the mode.
func (m LoopMode) String() string {
	switch m {
	case LoopOff:
		return "off"
	case LoopAll:
		return "all"
	case LoopOne:
		return "one"
	default:
		return "unknown"
	}
}

// Next cycles Off -> All -> One -> Off.
func (m LoopMode) Next() LoopMode {
	switch m {
	case LoopOff:
		return LoopAll
	case LoopAll:
		return LoopOne
	default:
		return LoopOff
	}
}

// ParseLoopMode parses "off", "all" or "one", case-insensitively.
func ParseLoopMode(s string) (LoopMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return LoopOff, nil
	case "all":
		return LoopAll, nil
	case "one":
		return LoopOne, nil
	default:
		return LoopOff, fmt.Errorf("%w: %q", ErrInvalidLoopMode, s)
	}
}

// Settings is the part of the session that survives restarts.
type Settings struct {
	Volume  float64
	Loop    LoopMode
	Shuffle bool
}

// DefaultSettings returns full volume, loop off and shuffle off.
func DefaultSettings() Settings {
	return Settings{Volume: 1, Loop: LoopOff}
}
