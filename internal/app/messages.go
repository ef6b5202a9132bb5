// Package app implements the terminal interface over the playback service.
package app

import (
	"time"

	"github.com/llehouerou/frequency/internal/playback"
	"github.com/llehouerou/frequency/internal/playlist"
)

// TickMsg refreshes the progress bar while a track plays.
type TickMsg time.Time

// Service events, re-wrapped so Update can switch on them.
type (
	StateChangedMsg     playback.StateChange
	TrackChangedMsg     playback.TrackChange
	PlaylistsChangedMsg playback.PlaylistsChange
	ModeChangedMsg      playback.ModeChange
	VolumeChangedMsg    playback.VolumeChange
	PlaybackErrorMsg    playback.ErrorEvent
)

// ServiceClosedMsg is sent once the service shuts down.
type ServiceClosedMsg struct{}

// StderrMsg carries a line captured from the audio backend.
type StderrMsg string

// TrackResolvedMsg is sent when user input has been turned into a track.
type TrackResolvedMsg struct {
	PlaylistID string
	Input      string
	Track      playlist.Track
	Err        error
}

// NotifyFailedMsg reports a desktop notification that could not be sent.
type NotifyFailedMsg struct {
	Err error
}
