// internal/player/interface.go
package player

import "time"

// Desired is the output state the playback engine wants from the sink.
//
// Token identifies one request to start a resource from position zero. It
// changes whenever the engine switches track or restarts the current one, so
// the sink can tell a restart of the same URL apart from a no-op, and so
// events from a superseded load can be recognized as stale.
type Desired struct {
	URL     string
	Volume  float64
	Playing bool
	Token   uint64
}

// EventKind distinguishes sink events.
type EventKind int

const (
	EventFinished EventKind = iota // natural end of track
	EventFailed                    // load, decode or device failure
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventFinished:
		return "Finished"
	case EventFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Event is sent by the sink back to the engine.
type Event struct {
	Kind  EventKind
	Token uint64
	URL   string
	Err   error
}

// Sink is the audio output driven by the playback engine.
//
// Apply must be idempotent and must not block on I/O: loading happens in the
// background and failures come back as EventFailed. EventFinished is sent
// exactly once per natural end of a track. The Events channel is never
// closed; consumers stop reading when their own context ends.
type Sink interface {
	Apply(d Desired)
	Events() <-chan Event
	Close() error
}

// Progress is implemented by sinks that can report the playback position.
type Progress interface {
	Position() time.Duration
	Duration() time.Duration
}

// Verify implementations at compile time.
var (
	_ Sink     = (*Player)(nil)
	_ Progress = (*Player)(nil)
	_ Sink     = (*Mock)(nil)
	_ Progress = (*Mock)(nil)
)
