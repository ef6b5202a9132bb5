// internal/playback/service_impl.go
package playback

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/frequency/internal/player"
	"github.com/llehouerou/frequency/internal/playlist"
	"github.com/llehouerou/frequency/internal/playlists"
	"github.com/llehouerou/frequency/internal/shuffle"
)

// ErrInvariant marks a session that contradicts the playlists it refers to.
var ErrInvariant = errors.New("session invariant violated")

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

// Option configures a service.
type Option func(*serviceImpl)

// WithPersister saves playlists and settings after every mutation.
func WithPersister(p Persister) Option {
	return func(s *serviceImpl) { s.persister = p }
}

// WithShuffleSource draws shuffle queues from src.
func WithShuffleSource(src shuffle.Source) Option {
	return func(s *serviceImpl) { s.transport = NewTransport(shuffle.New(src)) }
}

// WithSettings restores volume, loop and shuffle.
func WithSettings(st Settings) Option {
	return func(s *serviceImpl) { s.session = NewSession(st) }
}

type serviceImpl struct {
	mu sync.Mutex

	sink      player.Sink
	store     *playlists.Store
	transport *Transport
	persister Persister
	session   Session

	token   uint64 // identifies the sink request for the current track
	drained bool   // the sink finished or failed the current token

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// snapshot is the observable state before a mutation.
type snapshot struct {
	session Session
	track   *playlist.Track
}

// New creates a playback service over store, driving sink. The first
// playlist, if any, becomes active; playback starts paused with no track.
func New(sink player.Sink, store *playlists.Store, opts ...Option) Service {
	s := &serviceImpl{
		sink:      sink,
		store:     store,
		transport: NewTransport(nil),
		session:   NewSession(DefaultSettings()),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reconcile()
	s.push()
	return s
}

// Playlist management

func (s *serviceImpl) CreatePlaylist(title string) playlist.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	pl := s.store.Create(title)
	s.commit(before, true, false)
	return pl
}

func (s *serviceImpl) DeletePlaylist(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	if err := s.store.Delete(id); err != nil {
		return err
	}
	if id == s.session.ActivePlaylistID {
		s.session.ActivePlaylistID = ""
		s.session.CurrentTrackID = ""
		s.session.IsPlaying = false
		s.session.ShuffleQueue = nil
	}
	s.commit(before, true, false)
	return nil
}

func (s *serviceImpl) SelectPlaylist(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pl, ok := s.store.Get(id)
	if !ok {
		return fmt.Errorf("select %q: %w", id, playlists.ErrPlaylistNotFound)
	}
	before := s.begin()
	s.session = s.transport.Select(s.session, pl)
	s.commit(before, false, false)
	return nil
}

func (s *serviceImpl) RenamePlaylist(id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	if err := s.store.Rename(id, title); err != nil {
		return err
	}
	s.commit(before, true, false)
	return nil
}

// Track management

func (s *serviceImpl) AddTrack(playlistID string, track playlist.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	if err := s.store.AddTrack(playlistID, track); err != nil {
		return err
	}
	s.commit(before, true, false)
	return nil
}

func (s *serviceImpl) RemoveTrack(playlistID, trackID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()

	removesCurrent := playlistID == s.session.ActivePlaylistID && trackID == s.session.CurrentTrackID
	var successor string
	if removesCurrent {
		pl, _ := s.store.Get(playlistID)
		successor = successorAfterRemoval(s.session, pl, trackID)
	}

	if err := s.store.RemoveTrack(playlistID, trackID); err != nil {
		return err
	}
	if removesCurrent {
		s.session.CurrentTrackID = successor
		if successor == "" {
			s.session.IsPlaying = false
		}
	}
	s.commit(before, true, false)
	return nil
}

func (s *serviceImpl) ReorderTracks(playlistID string, order []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	if err := s.store.Reorder(playlistID, order); err != nil {
		return err
	}
	s.commit(before, true, false)
	return nil
}

func (s *serviceImpl) MoveTrack(playlistID string, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	if err := s.store.Move(playlistID, from, to); err != nil {
		return err
	}
	s.commit(before, true, false)
	return nil
}

func (s *serviceImpl) RenameTrack(playlistID, trackID, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	if err := s.store.RenameTrack(playlistID, trackID, title); err != nil {
		return err
	}
	s.commit(before, true, false)
	return nil
}

// Playback control

func (s *serviceImpl) Play(trackID, playlistID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if playlistID == "" {
		playlistID = s.session.ActivePlaylistID
	}
	pl, ok := s.store.Get(playlistID)
	if !ok {
		return fmt.Errorf("play %q: %w", playlistID, playlists.ErrPlaylistNotFound)
	}

	before := s.begin()
	sess, err := s.transport.Play(s.session, trackID, pl)
	if err != nil {
		return err
	}
	s.session = sess
	// Playing the current track again restarts it only once the sink is done with it.
	s.commit(before, false, s.drained)
	return nil
}

func (s *serviceImpl) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	s.session = s.transport.Pause(s.session)
	s.commit(before, false, false)
}

func (s *serviceImpl) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	var started bool
	s.session, started = s.transport.Resume(s.session, s.activeLocked())
	s.commit(before, false, started)
}

func (s *serviceImpl) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	var started bool
	if s.session.IsPlaying {
		s.session = s.transport.Pause(s.session)
	} else {
		s.session, started = s.transport.Resume(s.session, s.activeLocked())
	}
	s.commit(before, false, started)
}

func (s *serviceImpl) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	var started bool
	s.session, started = s.transport.Next(s.session, s.activeLocked())
	s.commit(before, false, started)
}

func (s *serviceImpl) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	var started bool
	s.session, started = s.transport.Prev(s.session, s.activeLocked())
	s.commit(before, false, started)
}

func (s *serviceImpl) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	s.session.Volume = player.Clamp(v)
	s.commit(before, false, false)
}

// Mode control

func (s *serviceImpl) ToggleLoop() LoopMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	s.session = s.transport.SetLoop(s.session, s.session.LoopMode.Next())
	s.commit(before, false, false)
	return s.session.LoopMode
}

func (s *serviceImpl) SetLoopMode(m LoopMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	s.session = s.transport.SetLoop(s.session, m)
	s.commit(before, false, false)
}

func (s *serviceImpl) ToggleShuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	s.session = s.transport.SetShuffle(s.session, !s.session.ShuffleEnabled, s.activeLocked())
	s.commit(before, false, false)
	return s.session.ShuffleEnabled
}

func (s *serviceImpl) SetShuffle(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.begin()
	s.session = s.transport.SetShuffle(s.session, enabled, s.activeLocked())
	s.commit(before, false, false)
}

// State queries

func (s *serviceImpl) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

func (s *serviceImpl) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.State()
}

func (s *serviceImpl) Playlists() []playlist.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List()
}

func (s *serviceImpl) Playlist(id string) (playlist.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pl, ok := s.store.Get(id)
	if !ok {
		return playlist.Playlist{}, fmt.Errorf("playlist %q: %w", id, playlists.ErrPlaylistNotFound)
	}
	return pl, nil
}

func (s *serviceImpl) ActivePlaylist() (playlist.Playlist, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(s.session.ActivePlaylistID)
}

// CurrentTrack returns a copy of the current track, or nil if none.
func (s *serviceImpl) CurrentTrack() *playlist.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTrackLocked()
}

// Ordering returns the traversal order of the active playlist.
func (s *serviceImpl) Ordering() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Ordering(s.activeLocked())
}

func (s *serviceImpl) Position() time.Duration {
	if p, ok := s.sink.(player.Progress); ok {
		return p.Position()
	}
	return 0
}

func (s *serviceImpl) Duration() time.Duration {
	if p, ok := s.sink.(player.Progress); ok {
		return p.Duration()
	}
	return 0
}

func (s *serviceImpl) CheckInvariants() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkLocked()
}

// Event loop

func (s *serviceImpl) Run(ctx context.Context) error {
	events := s.sink.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case e := <-events:
			s.handleSinkEvent(e)
		}
	}
}

func (s *serviceImpl) handleSinkEvent(e player.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if e.Token != s.token {
		log.Debug().
			Stringer("kind", e.Kind).
			Uint64("token", e.Token).
			Uint64("current", s.token).
			Msg("ignoring stale sink event")
		return
	}

	switch e.Kind {
	case player.EventFinished:
		s.drained = true
		before := s.begin()
		var started bool
		s.session, started = s.transport.Ended(s.session, s.activeLocked())
		s.commit(before, false, started)
	case player.EventFailed:
		s.drained = true
		log.Warn().Err(e.Err).Str("url", e.URL).Msg("playback failed")
		s.emitError(ErrorEvent{Operation: "play", URL: e.URL, Err: e.Err})
	}
}

// Event subscription

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down the service and its sink.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return s.sink.Close()
}

// Internals. Everything below is called with s.mu held.

func (s *serviceImpl) begin() snapshot {
	return snapshot{session: s.session.Clone(), track: s.currentTrackLocked()}
}

// commit finishes a mutation: it repairs dangling references, drives the
// sink, notifies subscribers and persists what changed. restart forces the
// current track to start again from zero.
func (s *serviceImpl) commit(before snapshot, playlistsChanged, restart bool) {
	s.reconcile()

	cur := s.session
	prev := before.session

	activeChanged := cur.ActivePlaylistID != prev.ActivePlaylistID
	// Track ids are only unique within a playlist: the same id in another
	// playlist is another track.
	trackChanged := cur.CurrentTrackID != prev.CurrentTrackID ||
		(cur.CurrentTrackID != "" && activeChanged)
	resumedDrained := cur.IsPlaying && !prev.IsPlaying && s.drained
	restarted := cur.CurrentTrackID != "" && !trackChanged && (restart || resumedDrained)
	if cur.CurrentTrackID != "" && (trackChanged || restarted) {
		s.token++
		s.drained = false
	}
	s.push()

	modeChanged := cur.LoopMode != prev.LoopMode || cur.ShuffleEnabled != prev.ShuffleEnabled
	volumeChanged := cur.Volume != prev.Volume

	if state := cur.State(); state != prev.State() {
		s.emit(func(sub *Subscription) { sub.sendState(StateChange{Previous: prev.State(), Current: state}) })
	}
	if trackChanged || restarted {
		e := TrackChange{
			Previous:   before.track,
			Current:    s.currentTrackLocked(),
			PlaylistID: cur.ActivePlaylistID,
			Restarted:  restarted,
		}
		s.emit(func(sub *Subscription) { sub.sendTrack(e) })
	}
	if playlistsChanged || activeChanged {
		pls := s.store.List()
		s.emit(func(sub *Subscription) {
			sub.sendPlaylists(PlaylistsChange{Playlists: clonePlaylists(pls), ActiveID: cur.ActivePlaylistID})
		})
	}
	if modeChanged {
		e := ModeChange{Loop: cur.LoopMode, Shuffle: cur.ShuffleEnabled}
		s.emit(func(sub *Subscription) { sub.sendMode(e) })
	}
	if volumeChanged {
		e := VolumeChange{Volume: cur.Volume}
		s.emit(func(sub *Subscription) { sub.sendVolume(e) })
	}

	if s.persister == nil {
		return
	}
	if playlistsChanged {
		s.persister.SavePlaylists(s.store.List())
	}
	if modeChanged || volumeChanged {
		if err := s.persister.SaveSettings(cur.Settings()); err != nil {
			log.Warn().Err(err).Msg("saving settings")
		}
	}
}

// reconcile restores the session invariants after the store changed.
func (s *serviceImpl) reconcile() {
	sess := &s.session

	if _, ok := s.store.Get(sess.ActivePlaylistID); !ok {
		sess.ActivePlaylistID = ""
		sess.CurrentTrackID = ""
		sess.ShuffleQueue = nil
		if first, ok := s.store.First(); ok {
			sess.ActivePlaylistID = first.ID
		}
	}
	active := s.activeLocked()

	if sess.CurrentTrackID != "" && !active.Has(sess.CurrentTrackID) {
		sess.CurrentTrackID = ""
	}
	if sess.CurrentTrackID == "" {
		sess.IsPlaying = false
	}

	switch {
	case !sess.ShuffleEnabled:
		sess.ShuffleQueue = nil
	case !shuffle.IsPermutation(sess.ShuffleQueue, active.IDs()):
		*sess = s.transport.Regenerate(*sess, active)
	}

	sess.Volume = player.Clamp(sess.Volume)
}

func (s *serviceImpl) checkLocked() error {
	sess := s.session
	active, ok := s.store.Get(sess.ActivePlaylistID)
	switch {
	case sess.ActivePlaylistID != "" && !ok:
		return fmt.Errorf("%w: active playlist %q does not exist", ErrInvariant, sess.ActivePlaylistID)
	case sess.ActivePlaylistID == "" && s.store.Len() > 0:
		return fmt.Errorf("%w: no active playlist while %d exist", ErrInvariant, s.store.Len())
	case sess.CurrentTrackID != "" && !active.Has(sess.CurrentTrackID):
		return fmt.Errorf("%w: current track %q not in active playlist", ErrInvariant, sess.CurrentTrackID)
	case sess.IsPlaying && sess.CurrentTrackID == "":
		return fmt.Errorf("%w: playing without a current track", ErrInvariant)
	case sess.ShuffleEnabled && !shuffle.IsPermutation(sess.ShuffleQueue, active.IDs()):
		return fmt.Errorf("%w: shuffle queue is not a permutation of the active playlist", ErrInvariant)
	case !sess.ShuffleEnabled && sess.ShuffleQueue != nil:
		return fmt.Errorf("%w: shuffle queue kept while shuffle is off", ErrInvariant)
	case sess.Volume < 0 || sess.Volume > 1:
		return fmt.Errorf("%w: volume %v out of range", ErrInvariant, sess.Volume)
	}
	return nil
}

// push sends the desired output to the sink.
func (s *serviceImpl) push() {
	d := player.Desired{Volume: s.session.Volume, Token: s.token}
	if t := s.currentTrackLocked(); t != nil {
		d.URL = t.URL
		d.Playing = s.session.IsPlaying
	}
	s.sink.Apply(d)
}

func (s *serviceImpl) activeLocked() playlist.Playlist {
	pl, _ := s.store.Get(s.session.ActivePlaylistID)
	return pl
}

func (s *serviceImpl) currentTrackLocked() *playlist.Track {
	if s.session.CurrentTrackID == "" {
		return nil
	}
	return s.activeLocked().Track(s.session.CurrentTrackID)
}

func (s *serviceImpl) emit(fn func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

func (s *serviceImpl) emitError(e ErrorEvent) {
	s.emit(func(sub *Subscription) { sub.sendError(e) })
}

func clonePlaylists(pls []playlist.Playlist) []playlist.Playlist {
	out := slices.Clone(pls)
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out
}
