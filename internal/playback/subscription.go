package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateChanged     <-chan StateChange
	TrackChanged     <-chan TrackChange
	PlaylistsChanged <-chan PlaylistsChange
	ModeChanged      <-chan ModeChange
	VolumeChanged    <-chan VolumeChange
	Error            <-chan ErrorEvent
	Done             <-chan struct{}

	// Internal write channels
	stateCh     chan StateChange
	trackCh     chan TrackChange
	playlistsCh chan PlaylistsChange
	modeCh      chan ModeChange
	volumeCh    chan VolumeChange
	errorCh     chan ErrorEvent
	doneCh      chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:     make(chan StateChange, eventBufferSize),
		trackCh:     make(chan TrackChange, eventBufferSize),
		playlistsCh: make(chan PlaylistsChange, eventBufferSize),
		modeCh:      make(chan ModeChange, eventBufferSize),
		volumeCh:    make(chan VolumeChange, eventBufferSize),
		errorCh:     make(chan ErrorEvent, eventBufferSize),
		doneCh:      make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.PlaylistsChanged = s.playlistsCh
	s.ModeChanged = s.modeCh
	s.VolumeChanged = s.volumeCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// send delivers e on ch without blocking, dropping it when the buffer is full.
func send[T any](ch chan T, e T) {
	select {
	case ch <- e:
	default:
	}
}

func (s *Subscription) sendState(e StateChange)         { send(s.stateCh, e) }
func (s *Subscription) sendTrack(e TrackChange)         { send(s.trackCh, e) }
func (s *Subscription) sendPlaylists(e PlaylistsChange) { send(s.playlistsCh, e) }
func (s *Subscription) sendMode(e ModeChange)           { send(s.modeCh, e) }
func (s *Subscription) sendVolume(e VolumeChange)       { send(s.volumeCh, e) }
func (s *Subscription) sendError(e ErrorEvent)          { send(s.errorCh, e) }
