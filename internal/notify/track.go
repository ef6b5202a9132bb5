package notify

import (
	"sync"

	"github.com/llehouerou/frequency/internal/mpris"
	"github.com/llehouerou/frequency/internal/playlist"
)

// trackTimeout is how long a now-playing notification stays up, in ms.
const trackTimeout = 4000

// NowPlaying builds the notification shown when track starts. Cover art
// next to a local file becomes the icon.
func NowPlaying(track playlist.Track, playlistTitle string, replaces uint32) Notification {
	return Notification{
		Title:      track.Title,
		Body:       playlistTitle,
		Icon:       mpris.FindAlbumArt(track.URL),
		Timeout:    trackTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}

// Tracker sends now-playing notifications, replacing the previous one.
// Safe for concurrent use.
type Tracker struct {
	notifier Notifier

	mu     sync.Mutex
	lastID uint32
}

// NewTracker wraps notifier.
func NewTracker(notifier Notifier) *Tracker {
	return &Tracker{notifier: notifier}
}

// TrackStarted notifies that track began playing.
func (t *Tracker) TrackStarted(track playlist.Track, playlistTitle string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, err := t.notifier.Notify(NowPlaying(track, playlistTitle, t.lastID))
	if err != nil {
		return err
	}
	if id != 0 {
		t.lastID = id
	}
	return nil
}
