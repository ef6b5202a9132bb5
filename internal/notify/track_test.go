package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/frequency/internal/playlist"
)

type recordingNotifier struct {
	sent []Notification
	id   uint32
	err  error
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	r.id++
	return r.id, nil
}

func (r *recordingNotifier) Close(_ uint32) error { return nil }

func TestNowPlaying(t *testing.T) {
	dir := t.TempDir()
	cover := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(cover, []byte("png"), 0o600))

	n := NowPlaying(playlist.Track{Title: "Song", URL: "file://" + filepath.Join(dir, "song.mp3")}, "Mix", 7)
	assert.Equal(t, "Song", n.Title)
	assert.Equal(t, "Mix", n.Body)
	assert.Equal(t, cover, n.Icon)
	assert.Equal(t, uint32(7), n.ReplacesID)
	assert.Equal(t, UrgencyLow, n.Urgency)

	remote := NowPlaying(playlist.Track{Title: "Stream", URL: "https://example.com/a.mp3"}, "Mix", 0)
	assert.Empty(t, remote.Icon)
}

func TestTracker_ReplacesPrevious(t *testing.T) {
	rec := &recordingNotifier{}
	tr := NewTracker(rec)

	require.NoError(t, tr.TrackStarted(playlist.Track{Title: "One"}, "Mix"))
	require.NoError(t, tr.TrackStarted(playlist.Track{Title: "Two"}, "Mix"))

	require.Len(t, rec.sent, 2)
	assert.Equal(t, uint32(0), rec.sent[0].ReplacesID)
	assert.Equal(t, uint32(1), rec.sent[1].ReplacesID)
}

func TestTracker_Error(t *testing.T) {
	tr := NewTracker(&recordingNotifier{err: errors.New("bus gone")})
	assert.Error(t, tr.TrackStarted(playlist.Track{Title: "One"}, "Mix"))
}
