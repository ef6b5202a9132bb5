//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/frequency/internal/playback"
)

const (
	busName  = "frequency"
	identity = "Frequency"
)

var (
	uriSchemes = []string{"file", "http", "https", "data"}
	mimeTypes  = []string{"audio/mpeg", "audio/wav", "audio/flac", "audio/ogg"}
)

var statusOf = map[playback.State]types.PlaybackStatus{
	playback.StateStopped: types.PlaybackStatusStopped,
	playback.StatePlaying: types.PlaybackStatusPlaying,
	playback.StatePaused:  types.PlaybackStatusPaused,
}

var loopStatusOf = map[playback.LoopMode]types.LoopStatus{
	playback.LoopOff: types.LoopStatusNone,
	playback.LoopAll: types.LoopStatusPlaylist,
	playback.LoopOne: types.LoopStatusTrack,
}

// Adapter publishes the playback service as an MPRIS media player.
type Adapter struct {
	server *server.Server
}

// New registers the player on the session bus. The bus is served on its own
// goroutine until Close.
func New(service playback.Service) (*Adapter, error) {
	srv := server.NewServer(busName, root{}, &playerAdapter{service: service})
	go func() {
		if err := srv.Listen(); err != nil {
			log.Warn().Err(err).Str("bus", busName).Msg("mpris server stopped")
		}
	}()
	return &Adapter{server: srv}, nil
}

func (a *Adapter) Close() error {
	return a.server.Stop()
}

// root is the org.mpris.MediaPlayer2 interface. The player cannot be raised
// or quit remotely.
type root struct{}

func (root) Raise() error                { return nil }
func (root) Quit() error                 { return nil }
func (root) CanQuit() (bool, error)      { return false, nil }
func (root) CanRaise() (bool, error)     { return false, nil }
func (root) HasTrackList() (bool, error) { return false, nil }
func (root) Identity() (string, error)   { return identity, nil }

func (root) SupportedMimeTypes() ([]string, error) { return mimeTypes, nil }

//nolint:revive // name fixed by the MPRIS interface
func (root) SupportedUriSchemes() ([]string, error) { return uriSchemes, nil }

// playerAdapter is org.mpris.MediaPlayer2.Player with the optional loop and
// shuffle properties.
type playerAdapter struct {
	service playback.Service
}

// Transport.

func (p *playerAdapter) Play() error      { p.service.Resume(); return nil }
func (p *playerAdapter) Pause() error     { p.service.Pause(); return nil }
func (p *playerAdapter) PlayPause() error { p.service.Toggle(); return nil }
func (p *playerAdapter) Next() error      { p.service.Next(); return nil }
func (p *playerAdapter) Previous() error  { p.service.Prev(); return nil }

// Stop pauses: a session with a current track is never stopped.
func (p *playerAdapter) Stop() error { p.service.Pause(); return nil }

// Seeking and opening URIs are not supported.

func (p *playerAdapter) Seek(types.Microseconds) error                { return nil }
func (p *playerAdapter) SetPosition(string, types.Microseconds) error { return nil }

//nolint:revive // name fixed by the MPRIS interface
func (p *playerAdapter) OpenUri(string) error { return nil }

// Properties.

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if st, ok := statusOf[p.service.State()]; ok {
		return st, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	track := p.service.CurrentTrack()
	if track == nil {
		return types.Metadata{}, nil
	}
	meta := types.Metadata{
		TrackId: trackObjectPath(track.ID),
		Title:   track.Title,
		Length:  types.Microseconds(p.service.Duration().Microseconds()),
	}
	if art := FindAlbumArt(track.URL); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta, nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.Position().Microseconds(), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.service.Session().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.service.SetVolume(v)
	return nil
}

func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if ls, ok := loopStatusOf[p.service.Session().LoopMode]; ok {
		return ls, nil
	}
	return types.LoopStatusNone, nil
}

func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	for mode, ls := range loopStatusOf {
		if ls == status {
			p.service.SetLoopMode(mode)
			return nil
		}
	}
	return fmt.Errorf("unknown loop status %q", status)
}

func (p *playerAdapter) Shuffle() (bool, error) {
	return p.service.Session().ShuffleEnabled, nil
}

func (p *playerAdapter) SetShuffle(on bool) error {
	p.service.SetShuffle(on)
	return nil
}

// Rate is fixed at normal speed.

func (p *playerAdapter) Rate() (float64, error)        { return 1, nil }
func (p *playerAdapter) SetRate(float64) error         { return nil }
func (p *playerAdapter) MinimumRate() (float64, error) { return 1, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1, nil }

// Capabilities.

func (p *playerAdapter) hasTracks() bool { return len(p.service.Ordering()) > 0 }

func (p *playerAdapter) CanGoNext() (bool, error)     { return p.hasTracks(), nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.hasTracks(), nil }
func (p *playerAdapter) CanPlay() (bool, error)       { return p.hasTracks(), nil }
func (p *playerAdapter) CanPause() (bool, error)      { return true, nil }
func (p *playerAdapter) CanSeek() (bool, error)       { return false, nil }
func (p *playerAdapter) CanControl() (bool, error)    { return true, nil }

// trackObjectPath maps a track id, which may contain characters D-Bus object
// paths reject, to a stable path.
func trackObjectPath(id string) dbus.ObjectPath {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return dbus.ObjectPath(fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64()))
}
