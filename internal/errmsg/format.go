// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
	"os"

	"github.com/llehouerou/frequency/internal/player"
	"github.com/llehouerou/frequency/internal/playlist"
	"github.com/llehouerou/frequency/internal/playlists"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playlist operations
	OpPlaylistCreate Op = "create playlist"
	OpPlaylistRename Op = "rename playlist"
	OpPlaylistDelete Op = "delete playlist"
	OpPlaylistSelect Op = "select playlist"

	// Track operations
	OpTrackAdd    Op = "add track"
	OpTrackRemove Op = "remove track"
	OpTrackRename Op = "rename track"
	OpTrackMove   Op = "move track"

	// Playback operations
	OpPlaybackStart Op = "start playback"

	OpInitialize Op = "start frequency"
)

// reasons maps known errors to short explanations.
var reasons = []struct {
	err  error
	text string
}{
	{playlists.ErrPlaylistNotFound, "playlist no longer exists"},
	{playlists.ErrTrackNotFound, "track no longer exists"},
	{playlists.ErrDuplicateTrack, "track is already in this playlist"},
	{playlists.ErrInvalidTrack, "track has no id"},
	{playlists.ErrInvalidOrder, "new order does not match the playlist"},
	{playlist.ErrEmptyLocation, "no path or url given"},
	{playlist.ErrNotAudioFile, "not an mp3, wav, flac or ogg file"},
	{player.ErrUnsupportedFormat, "unsupported audio format"},
	{player.ErrUnsupportedScheme, "unsupported address"},
	{player.ErrResourceTooLarge, "file is too large to stream"},
	{player.ErrMalformedDataURL, "embedded audio is corrupt"},
	{os.ErrNotExist, "file not found"},
	{os.ErrPermission, "permission denied"},
}

// Reason returns a short explanation of err, falling back to its message.
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.text
		}
	}
	return err.Error()
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, Reason(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %s", op, context, Reason(err))
}
