package player

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	return speakerErr
}

// Player is the beep-backed audio sink.
type Player struct {
	mu      sync.Mutex
	opener  Opener
	events  chan Event
	ctx     context.Context
	cancel  context.CancelFunc
	desired Desired
	current *loadedTrack
	loading uint64 // token of the in-flight load, 0 when idle
	failed  uint64 // token whose load failed, retried only under a new token
	closed  bool
}

type loadedTrack struct {
	token    uint64
	url      string
	res      *Resource
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	drained  bool
}

// New creates a player. A nil opener uses NewOpener(nil).
func New(opener Opener) *Player {
	if opener == nil {
		opener = NewOpener(nil)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Player{
		opener: opener,
		events: make(chan Event, 16),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Apply drives the output towards d. Loading a new resource happens in the
// background.
func (p *Player) Apply(d Desired) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.desired = d

	switch {
	case d.URL == "":
		p.unload()
	case p.current != nil && p.current.token == d.Token && p.current.url == d.URL:
		p.applyControls()
	case p.current != nil && p.current.url == d.URL:
		p.restart(d.Token)
	case p.loading == d.Token, p.failed == d.Token:
		// already on its way, or waiting for a new token after a failure
	default:
		p.unload()
		p.loading = d.Token
		go p.load(d.Token, d.URL)
	}
}

func (p *Player) Events() <-chan Event { return p.events }

// Close stops output and discards any pending load.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.cancel()
	p.unload()
	return nil
}

// Position returns the playback position of the loaded track.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return 0
	}
	speaker.Lock()
	pos := p.current.format.SampleRate.D(p.current.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the length of the loaded track.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return 0
	}
	return p.current.format.SampleRate.D(p.current.streamer.Len())
}

func (p *Player) load(token uint64, url string) {
	res, err := p.opener(p.ctx, url)
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	if err == nil {
		streamer, format, err = decode(res)
		if err != nil {
			res.Reader.Close()
		}
	}
	if err == nil {
		if err = initSpeaker(); err != nil {
			err = fmt.Errorf("init speaker: %w", err)
			streamer.Close()
			res.Reader.Close()
		}
	}

	p.mu.Lock()
	if p.closed || p.loading != token {
		p.mu.Unlock()
		if err == nil {
			streamer.Close()
			res.Reader.Close()
		}
		log.Debug().Uint64("token", token).Str("url", url).Msg("discarding stale load")
		return
	}
	p.loading = 0

	if err != nil {
		p.failed = token
		p.mu.Unlock()
		log.Warn().Err(err).Str("url", url).Msg("load failed")
		p.emit(Event{Kind: EventFailed, Token: token, URL: url, Err: err})
		return
	}

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer)
	}
	ctrl := &beep.Ctrl{Streamer: resampled, Paused: !p.desired.Playing}
	vol := &effects.Volume{Streamer: ctrl, Base: 2}
	vol.Volume, vol.Silent = levelToVolume(p.desired.Volume)

	p.current = &loadedTrack{
		token:    token,
		url:      url,
		res:      res,
		streamer: streamer,
		format:   format,
		ctrl:     ctrl,
		volume:   vol,
	}
	p.play(p.current)
	p.mu.Unlock()

	log.Debug().Uint64("token", token).Str("url", url).Msg("track loaded")
}

// play queues t on the speaker. Called with p.mu held.
func (p *Player) play(t *loadedTrack) {
	t.drained = false
	speaker.Play(beep.Seq(t.volume, beep.Callback(func() {
		// The callback runs on the speaker goroutine with the speaker lock held.
		go p.finished(t)
	})))
}

func (p *Player) finished(t *loadedTrack) {
	p.mu.Lock()
	if p.closed || p.current != t || t.drained {
		p.mu.Unlock()
		return
	}
	t.drained = true
	ev := Event{Kind: EventFinished, Token: t.token, URL: t.url}
	p.mu.Unlock()

	p.emit(ev)
}

// restart rewinds the loaded track under a new token. Called with p.mu held.
func (p *Player) restart(token uint64) {
	t := p.current
	t.token = token
	p.loading = 0

	speaker.Lock()
	err := t.streamer.Seek(0)
	speaker.Unlock()
	if err != nil {
		url := t.url
		p.unload()
		p.failed = token
		go p.emit(Event{Kind: EventFailed, Token: token, URL: url, Err: fmt.Errorf("rewind: %w", err)})
		return
	}

	p.applyControls()
	if t.drained {
		p.play(t)
	}
}

// applyControls pushes pause and volume to the loaded track. Called with p.mu held.
func (p *Player) applyControls() {
	t := p.current
	if t == nil {
		return
	}
	speaker.Lock()
	t.ctrl.Paused = !p.desired.Playing
	t.volume.Volume, t.volume.Silent = levelToVolume(p.desired.Volume)
	speaker.Unlock()
}

// unload stops output and releases the loaded track. Called with p.mu held.
func (p *Player) unload() {
	p.loading = 0
	t := p.current
	if t == nil {
		return
	}
	p.current = nil
	speaker.Clear()
	t.streamer.Close()
	t.res.Reader.Close()
}

func (p *Player) emit(e Event) {
	select {
	case p.events <- e:
	case <-p.ctx.Done():
	}
}
